package notifier

import (
	"fmt"
	"net/http"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/ranking"
)

// Credentials are OAuth1 user-context keys for the Twitter API
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// CredentialsFromEnv reads the keys from
// TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN and
// TWITTER_ACCESS_SECRET.
func CredentialsFromEnv() Credentials {
	return Credentials{
		APIKey:       os.Getenv("TWITTER_API_KEY"),
		APISecret:    os.Getenv("TWITTER_API_SECRET"),
		AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
	}
}

func (c Credentials) complete() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// TwitterNotifier posts standings to Twitter
type TwitterNotifier struct {
	client *twitter.Client
	top    int
}

// NewTwitterNotifier creates a Twitter notifier using environment variables
func NewTwitterNotifier(top int) (*TwitterNotifier, error) {
	return NewTwitterNotifierWithCredentials(CredentialsFromEnv(), top)
}

// NewTwitterNotifierWithCredentials creates a Twitter notifier with explicit keys
func NewTwitterNotifierWithCredentials(creds Credentials, top int) (*TwitterNotifier, error) {
	if !creds.complete() {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	return newTwitterNotifier(config.Client(oauth1.NoContext, token), top), nil
}

func newTwitterNotifier(httpClient *http.Client, top int) *TwitterNotifier {
	return &TwitterNotifier{
		client: twitter.NewClient(httpClient),
		top:    top,
	}
}

// Notify posts the standings as a single tweet
func (n *TwitterNotifier) Notify(players []ranking.RankedPlayer) error {
	post := FormatStandings(players, n.top)

	tweet, _, err := n.client.Statuses.Update(post, nil)
	if err != nil {
		logger.IncrCounter("notifier.twitter_errors")
		return fmt.Errorf("failed to post standings: %w", err)
	}

	logger.IncrCounter("notifier.twitter_posts")
	logger.Info("Posted standings", logger.Fields{
		"tweet_id": tweet.IDStr,
		"players":  len(players),
	})
	return nil
}

package notifier

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/ranking"
)

func samplePlayers() []ranking.RankedPlayer {
	return []ranking.RankedPlayer{
		{Name: "Alex Johnson", Points: 25, Stats: league.PlayerStats{GamesPlayed: 3, AverageScore: 40}, Rank: "Rank #1", Position: 1},
		{Name: "Mia Rodriguez", Points: 18, Stats: league.PlayerStats{GamesPlayed: 3, AverageScore: 41.3}, Rank: "Rank #2", Position: 2},
		{Name: "Hiroshi Tanaka", Points: 13, Stats: league.PlayerStats{GamesPlayed: 2, AverageScore: 41.3}, Rank: "Rank #2", Position: 2},
		{Name: "Sam Lee", Points: 3, Stats: league.PlayerStats{GamesPlayed: 1, AverageScore: 47}, Rank: "Rank #3", Position: 3},
		{Name: "Jo Park", Points: 1, Stats: league.PlayerStats{GamesPlayed: 1, AverageScore: 52}, Rank: "Rank #4", Position: 4},
		{Name: "Newcomer", Rank: ranking.Unranked},
	}
}

func TestFormatStandings(t *testing.T) {
	post := FormatStandings(samplePlayers(), 0)

	contains := []string{
		"PWGA Standings",
		"🥇 Alex Johnson · 40.0 avg · 25 pts",
		"🥈 Mia Rodriguez · 41.3 avg · 18 pts",
		"🥈 Hiroshi Tanaka",
		"🥉 Sam Lee",
		"4. Jo Park · 52.0 avg · 1 pts",
		"#PWGA",
	}
	for _, s := range contains {
		if !strings.Contains(post, s) {
			t.Errorf("post missing %q:\n%s", s, post)
		}
	}

	if strings.Contains(post, "Newcomer") {
		t.Error("unranked players should not be announced")
	}
	if n := utf8.RuneCountInString(post); n > MaxLength {
		t.Errorf("post has %d characters, limit is %d", n, MaxLength)
	}
}

func TestFormatStandings_TopN(t *testing.T) {
	post := FormatStandings(samplePlayers(), 2)

	if !strings.Contains(post, "Mia Rodriguez") {
		t.Error("expected second player")
	}
	if strings.Contains(post, "Hiroshi Tanaka") {
		t.Error("expected only two players")
	}
}

func TestFormatStandings_NoRankedPlayers(t *testing.T) {
	post := FormatStandings([]ranking.RankedPlayer{{Name: "Newcomer", Rank: ranking.Unranked}}, 5)

	if !strings.Contains(post, noStandings) {
		t.Errorf("expected placeholder text, got:\n%s", post)
	}
}

func TestFormatStandings_LengthLimit(t *testing.T) {
	var players []ranking.RankedPlayer
	for i := 1; i <= 20; i++ {
		players = append(players, ranking.RankedPlayer{
			Name:     strings.Repeat("Wiimote", 4),
			Points:   100,
			Position: i,
			Rank:     "Rank",
		})
	}

	post := FormatStandings(players, 20)

	if n := utf8.RuneCountInString(post); n > MaxLength {
		t.Errorf("post has %d characters, limit is %d", n, MaxLength)
	}
	if !strings.HasSuffix(post, standingsFooter) {
		t.Error("footer should survive when lines are dropped")
	}
	if !strings.Contains(post, "🥇") {
		t.Error("expected at least the leader")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate should keep short strings, got %q", got)
	}

	got := truncate("⛳⛳⛳⛳⛳", 3)
	if got != "⛳⛳…" {
		t.Errorf("truncate = %q, expected %q", got, "⛳⛳…")
	}
}

func TestDryRunNotifier(t *testing.T) {
	var out bytes.Buffer
	n := NewDryRunNotifier(&out, 3)

	if err := n.Notify(samplePlayers()); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "--- Post ---") {
		t.Error("expected post header")
	}
	if !strings.Contains(got, "Alex Johnson") {
		t.Error("expected leader in output")
	}
	if !strings.Contains(got, "(Length: ") {
		t.Error("expected length line")
	}
}

func TestNewTwitterNotifierWithCredentials_Missing(t *testing.T) {
	_, err := NewTwitterNotifierWithCredentials(Credentials{APIKey: "key"}, 5)
	if err == nil {
		t.Error("expected error for incomplete credentials")
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "k")
	t.Setenv("TWITTER_API_SECRET", "s")
	t.Setenv("TWITTER_ACCESS_TOKEN", "t")
	t.Setenv("TWITTER_ACCESS_SECRET", "a")

	creds := CredentialsFromEnv()
	if !creds.complete() {
		t.Errorf("expected complete credentials, got %+v", creds)
	}

	if _, err := NewTwitterNotifier(5); err != nil {
		t.Errorf("NewTwitterNotifier failed: %v", err)
	}
}

// redirectTransport sends every request to a test server
type redirectTransport struct {
	target *url.URL
}

func (rt redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func TestTwitterNotifier_Notify(t *testing.T) {
	var posted string
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		posted = r.PostForm.Get("status")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "id_str": "42", "text": "ok"}`))
	}))
	defer server.Close()

	target, _ := url.Parse(server.URL)
	n := newTwitterNotifier(&http.Client{Transport: redirectTransport{target: target}}, 3)

	if err := n.Notify(samplePlayers()); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if path != "/1.1/statuses/update.json" {
		t.Errorf("unexpected API path %q", path)
	}
	if posted != FormatStandings(samplePlayers(), 3) {
		t.Errorf("unexpected status text:\n%s", posted)
	}
}

func TestTwitterNotifier_NotifyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"code":187,"message":"Status is a duplicate."}]}`))
	}))
	defer server.Close()

	target, _ := url.Parse(server.URL)
	n := newTwitterNotifier(&http.Client{Transport: redirectTransport{target: target}}, 3)

	if err := n.Notify(samplePlayers()); err == nil {
		t.Fatal("expected error for rejected tweet")
	}
}

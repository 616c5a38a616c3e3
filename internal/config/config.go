// Package config loads settings for the pwga command from flags, PWGA_*
// environment variables and an optional pwga.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/ranking"
	"github.com/pwga/pwga-league/internal/sheet"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment and config file
const (
	KeyPlayersURL   = "players_url"
	KeyScoresURL    = "scores_url"
	KeySourceFormat = "source_format"
	KeyPolicy       = "policy"
	KeyNumbering    = "numbering"
	KeyHTTPTimeout  = "http_timeout"
	KeyAddr         = "addr"
	KeyLogLevel     = "log_level"

	EnvPrefix  = "PWGA"
	configName = "pwga"

	DefaultAddr = ":8080"
)

// Config is the resolved configuration
type Config struct {
	PlayersURL   string        `mapstructure:"players_url"`
	ScoresURL    string        `mapstructure:"scores_url"`
	SourceFormat string        `mapstructure:"source_format"`
	Policy       string        `mapstructure:"policy"`
	Numbering    string        `mapstructure:"numbering"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
	Addr         string        `mapstructure:"addr"`
	LogLevel     string        `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment binding set.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPlayersURL, sheet.DefaultPlayersURL)
	v.SetDefault(KeyScoresURL, sheet.DefaultScoresURL)
	v.SetDefault(KeySourceFormat, string(sheet.FormatCSV))
	v.SetDefault(KeyPolicy, string(ranking.PolicyAverage))
	v.SetDefault(KeyNumbering, string(ranking.NumberingDense))
	v.SetDefault(KeyHTTPTimeout, sheet.Timeout.String())
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and decodes v. An empty configFile searches
// the working directory and ~/.config/pwga for pwga.yaml and tolerates its
// absence; an explicit file must exist.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pwga")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", logger.Fields{"path": v.ConfigFileUsed()})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PlayersURL) == "" {
		return fmt.Errorf("%s must not be empty", KeyPlayersURL)
	}
	if strings.TrimSpace(c.ScoresURL) == "" {
		return fmt.Errorf("%s must not be empty", KeyScoresURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyHTTPTimeout)
	}
	if _, err := c.SheetFormat(); err != nil {
		return err
	}
	if _, err := c.RankOptions(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// SheetFormat returns the configured source format.
func (c *Config) SheetFormat() (sheet.Format, error) {
	return sheet.ParseFormat(c.SourceFormat)
}

// RankOptions returns the configured ranking policy and numbering.
func (c *Config) RankOptions() (ranking.Options, error) {
	policy, err := ranking.ParsePolicy(c.Policy)
	if err != nil {
		return ranking.Options{}, err
	}
	numbering, err := ranking.ParseNumbering(c.Numbering)
	if err != nil {
		return ranking.Options{}, err
	}
	return ranking.Options{Policy: policy, Numbering: numbering}, nil
}

// Level returns the configured log level.
func (c *Config) Level() (logger.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// NewLoader wires a sheet loader for the configured sources.
func (c *Config) NewLoader() (*sheet.Loader, error) {
	format, err := c.SheetFormat()
	if err != nil {
		return nil, err
	}
	client := sheet.New(format, c.HTTPTimeout)
	return sheet.NewLoader(client, c.PlayersURL, c.ScoresURL), nil
}

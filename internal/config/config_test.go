package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/ranking"
	"github.com/pwga/pwga-league/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a directory without a pwga.yaml
func inEmptyDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, sheet.DefaultPlayersURL, cfg.PlayersURL)
	assert.Equal(t, sheet.DefaultScoresURL, cfg.ScoresURL)
	assert.Equal(t, "csv", cfg.SourceFormat)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, DefaultAddr, cfg.Addr)

	opts, err := cfg.RankOptions()
	require.NoError(t, err)
	assert.Equal(t, ranking.PolicyAverage, opts.Policy)
	assert.Equal(t, ranking.NumberingDense, opts.Numbering)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelInfo, level)
}

func TestLoad_Environment(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("PWGA_POLICY", "points")
	t.Setenv("PWGA_NUMBERING", "competition")
	t.Setenv("PWGA_SOURCE_FORMAT", "html")
	t.Setenv("PWGA_HTTP_TIMEOUT", "5s")
	t.Setenv("PWGA_SCORES_URL", "https://example.test/scores")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	opts, err := cfg.RankOptions()
	require.NoError(t, err)
	assert.Equal(t, ranking.Options{Policy: ranking.PolicyPoints, Numbering: ranking.NumberingCompetition}, opts)

	format, err := cfg.SheetFormat()
	require.NoError(t, err)
	assert.Equal(t, sheet.FormatHTML, format)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://example.test/scores", cfg.ScoresURL)
}

func TestLoad_ConfigFile(t *testing.T) {
	inEmptyDir(t)

	path := filepath.Join(t.TempDir(), "league.yaml")
	content := []byte("policy: points\naddr: \":9090\"\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "points", cfg.Policy)
	assert.Equal(t, ":9090", cfg.Addr)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelDebug, level)
}

func TestLoad_SearchPath(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.WriteFile("pwga.yaml", []byte("numbering: competition\n"), 0o600))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "competition", cfg.Numbering)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.WriteFile("pwga.yaml", []byte("policy: points\n"), 0o600))
	t.Setenv("PWGA_POLICY", "average")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "average", cfg.Policy)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inEmptyDir(t)

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"policy", "PWGA_POLICY", "fastest"},
		{"numbering", "PWGA_NUMBERING", "roman"},
		{"format", "PWGA_SOURCE_FORMAT", "xlsx"},
		{"log level", "PWGA_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inEmptyDir(t)
			t.Setenv(tt.env, tt.val)

			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{PlayersURL: "", ScoresURL: "https://example.test/scores"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{PlayersURL: "https://example.test/players", ScoresURL: "https://example.test/scores", HTTPTimeout: -time.Second}
	assert.Error(t, cfg.Validate())

	cfg = &Config{PlayersURL: "https://example.test/players", ScoresURL: "https://example.test/scores"}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_NewLoader(t *testing.T) {
	cfg := &Config{PlayersURL: "p", ScoresURL: "s", SourceFormat: "html"}
	loader, err := cfg.NewLoader()
	require.NoError(t, err)
	assert.NotNil(t, loader)

	cfg.SourceFormat = "pdf"
	_, err = cfg.NewLoader()
	assert.Error(t, err)
}

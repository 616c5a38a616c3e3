package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pwga/pwga-league/internal/config"
	"github.com/pwga/pwga-league/internal/logger"
	"github.com/pwga/pwga-league/internal/sheet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is reported by --version
var Version = "dev"

// flagKeys maps persistent flags to config keys
var flagKeys = map[string]string{
	"players-url":   config.KeyPlayersURL,
	"scores-url":    config.KeyScoresURL,
	"source-format": config.KeySourceFormat,
	"policy":        config.KeyPolicy,
	"numbering":     config.KeyNumbering,
	"http-timeout":  config.KeyHTTPTimeout,
	"log-level":     config.KeyLogLevel,
}

// app carries state shared by every subcommand of one invocation
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	format     string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "pwga",
		Short: "Standings, score cards and events for the PWGA Wii golf league",
		Long: `A CLI tool for the Professional Wii Golf Association league.
Reads player sign-ups and match results from the league's published Google
Sheets and computes the leaderboard, score cards and player statistics.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.reportMetrics,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: ./pwga.yaml or ~/.config/pwga/pwga.yaml)")
	flags.String("players-url", sheet.DefaultPlayersURL, "Published players sheet URL")
	flags.String("scores-url", sheet.DefaultScoresURL, "Published scores sheet URL")
	flags.String("source-format", string(sheet.FormatCSV), "Sheet format: csv or html")
	flags.String("policy", "average", "Ranking policy: average or points")
	flags.String("numbering", "dense", "Rank numbering after ties: dense or competition")
	flags.Duration("http-timeout", sheet.Timeout, "Timeout for each sheet request")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&a.format, "format", "text", "Output format: text or json")
	flags.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging")

	for flag, key := range flagKeys {
		// Lookup cannot fail for flags registered above
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(
		newPlayersCmd(a),
		newPlayerCmd(a),
		newScoresCmd(a),
		newEventsCmd(a),
		newCalendarCmd(a),
		newAnnounceCmd(a),
		newServeCmd(a),
	)

	return cmd
}

// setup resolves configuration and the logger before any subcommand runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if _, err := parseOutputFormat(a.format); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	if a.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Players sheet: %s\n", cfg.PlayersURL)
		fmt.Fprintf(cmd.ErrOrStderr(), "Scores sheet: %s\n", cfg.ScoresURL)
	}
	return nil
}

// reportMetrics prints the metrics recorded during the command under --verbose
func (a *app) reportMetrics(cmd *cobra.Command, args []string) error {
	if !a.verbose {
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Metrics:")
	return logger.MetricsSnapshot().WriteText(cmd.ErrOrStderr())
}

// output returns the validated output format
func (a *app) output() OutputFormat {
	format, _ := parseOutputFormat(a.format)
	return format
}

// loader wires a sheet loader from the resolved configuration
func (a *app) loader() (*sheet.Loader, error) {
	return a.cfg.NewLoader()
}

// Run executes the CLI with the given arguments and streams, returning the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// Execute runs the CLI
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pwga/pwga-league/internal/api"
	"github.com/pwga/pwga-league/internal/calendar"
	"github.com/pwga/pwga-league/internal/config"
	"github.com/pwga/pwga-league/internal/events"
	"github.com/pwga/pwga-league/internal/league"
	"github.com/pwga/pwga-league/internal/notifier"
	"github.com/pwga/pwga-league/internal/ranking"
	"github.com/spf13/cobra"
)

func newPlayersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.RankOptions()
			if err != nil {
				return err
			}
			loader, err := a.loader()
			if err != nil {
				return err
			}

			standings, err := loader.Standings(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("loading standings: %w", err)
			}

			if a.verbose {
				agg := standings.Aggregate
				fmt.Fprintf(cmd.ErrOrStderr(), "Matches: %d valid, %d skipped\n", agg.Matches, agg.Skipped)
				for _, name := range ranking.Unmatched(agg, standings.Profiles) {
					fmt.Fprintf(cmd.ErrOrStderr(), "No approved profile for: %s\n", name)
				}
			}

			return WritePlayers(cmd.OutOrStdout(), &PlayersResult{
				GeneratedAt: time.Now().UTC(),
				Policy:      opts.Policy,
				Numbering:   opts.Numbering,
				Players:     standings.Players,
				Count:       len(standings.Players),
			}, a.output(), a.verbose)
		},
	}
}

func newPlayerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show one player's profile and statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.RankOptions()
			if err != nil {
				return err
			}
			loader, err := a.loader()
			if err != nil {
				return err
			}

			players, err := loader.RankedPlayers(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("loading standings: %w", err)
			}

			player, ok := ranking.FindByID(players, args[0])
			if !ok {
				return fmt.Errorf("player not found: %s", args[0])
			}
			return WritePlayer(cmd.OutOrStdout(), player, a.output())
		},
	}
}

func newScoresCmd(a *app) *cobra.Command {
	var sortFlag, playerFlag string
	var listPlayers bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show match score cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := league.ParseCardOrder(sortFlag)
			if err != nil {
				return err
			}
			loader, err := a.loader()
			if err != nil {
				return err
			}

			cards, err := loader.ScoreCards(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading score cards: %w", err)
			}

			if listPlayers {
				names := league.PlayersInCards(cards)
				return WriteScorePlayers(cmd.OutOrStdout(), &ScorePlayersResult{
					Players: names,
					Count:   len(names),
				}, a.output())
			}

			cards = league.CardsWithPlayer(cards, playerFlag)
			league.SortScoreCards(cards, order)

			return WriteScores(cmd.OutOrStdout(), &ScoresResult{
				GeneratedAt: time.Now().UTC(),
				Sort:        order,
				Player:      playerFlag,
				Scores:      cards,
				Count:       len(cards),
			}, a.output(), a.verbose)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "date", "Sort order: date (newest first) or score (lowest winning score first)")
	cmd.Flags().StringVar(&playerFlag, "player", "", "Only show cards including this player")
	cmd.Flags().BoolVar(&listPlayers, "list-players", false, "List the players appearing on any card instead of the cards")
	return cmd
}

func newEventsCmd(a *app) *cobra.Command {
	var tabFlag, sortFlag string
	var withinDays int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List league events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := events.ParseTab(tabFlag)
			if err != nil {
				return err
			}
			order, err := parseSortOrder(sortFlag)
			if err != nil {
				return err
			}

			listed := events.Default().Tab(tab)
			if withinDays > 0 {
				now := time.Now()
				filtered := make([]*events.Event, 0, len(listed))
				for _, evt := range listed {
					if evt.StartsWithin(now, withinDays) {
						filtered = append(filtered, evt)
					}
				}
				listed = filtered
			}
			sortEvents(listed, order)

			return WriteEvents(cmd.OutOrStdout(), &EventsResult{
				Tab:    tab,
				Events: listed,
				Count:  len(listed),
			}, a.output(), a.verbose)
		},
	}

	cmd.Flags().StringVar(&tabFlag, "tab", "upcoming", "Events to list: upcoming, past or all")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort order: date or title (default: catalog order)")
	cmd.Flags().IntVar(&withinDays, "within", 0, "Only list events starting within N days")
	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	var tabFlag, outputFlag string

	cmd := &cobra.Command{
		Use:   "calendar [event-id]",
		Short: "Export events as an iCalendar file",
		Long: `Export one event, by ID or slug, as an iCalendar file. Without an
event ID every event on --tab is exported into one calendar.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := events.Default()

			var ics string
			if len(args) == 1 {
				evt, ok := catalog.Find(args[0])
				if !ok {
					return fmt.Errorf("event not found: %s", args[0])
				}
				ics = calendar.GenerateICS(evt)
			} else {
				tab, err := events.ParseTab(tabFlag)
				if err != nil {
					return err
				}
				listed := catalog.Tab(tab)
				if len(listed) == 0 {
					return fmt.Errorf("no %s events", tab)
				}
				ics = calendar.GenerateBulkICS(listed, fmt.Sprintf("PWGA Events - %s", tab))
			}

			if outputFlag == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), ics)
				return err
			}
			if err := os.WriteFile(outputFlag, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			if a.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outputFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tabFlag, "tab", "upcoming", "Events to export when no ID is given: upcoming, past or all")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newAnnounceCmd(a *app) *cobra.Command {
	var top int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Post the current standings to Twitter",
		Long: `Post the top of the leaderboard to Twitter. Credentials are read from
TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN and
TWITTER_ACCESS_SECRET. Use --dry-run to print the post instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n notifier.Notifier
			if dryRun {
				n = notifier.NewDryRunNotifier(cmd.OutOrStdout(), top)
			} else {
				tn, err := notifier.NewTwitterNotifier(top)
				if err != nil {
					return err
				}
				n = tn
			}

			opts, err := a.cfg.RankOptions()
			if err != nil {
				return err
			}
			loader, err := a.loader()
			if err != nil {
				return err
			}

			players, err := loader.RankedPlayers(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("loading standings: %w", err)
			}

			return n.Notify(players)
		},
	}

	cmd.Flags().IntVar(&top, "top", notifier.DefaultTop, "Number of players to announce")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the post instead of publishing it")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard, score cards and events as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.RankOptions()
			if err != nil {
				return err
			}
			loader, err := a.loader()
			if err != nil {
				return err
			}

			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			router := api.NewRouter(api.NewHandler(loader, events.Default(), opts))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, a.cfg.Addr, router)
		},
	}

	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	_ = a.v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

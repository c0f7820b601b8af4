package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hoopscore/internal/config"
	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
	"github.com/pfrederiksen/hoopscore/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

// Source fetches schedules and box scores
type Source interface {
	RecentGames(ctx context.Context, team, season string, n int) ([]*game.Game, error)
	BoxScore(ctx context.Context, url string) (*game.BoxScore, error)
	GameBoxScore(ctx context.Context, g *game.Game) (*game.BoxScore, error)
}

// app holds what every command needs once flags and config are resolved
type app struct {
	cfg    config.Config
	format OutputFormat
	source Source
}

// current is set by the root command's pre-run hook
var current *app

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hoopscore",
		Short: "NBA results, box scores and fantasy scores from basketball-reference.com",
		Long: `A CLI tool to browse recent NBA games and box scores from basketball-reference.com.
Every player and team line is scored with a custom fantasy-basketball formula.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Path to JSON5 config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newTeamsCmd(),
		newGamesCmd(),
		newBoxScoreCmd(),
		newScoreCmd(),
		newBrowseCmd(),
	)

	return cmd
}

// setup loads config, configures logging and builds the scraper
func setup(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	logger.Debug("loaded config", logger.Fields{
		"path":     flagConfig,
		"base_url": cfg.BaseURL,
		"team":     cfg.DefaultTeam,
		"season":   cfg.DefaultSeason,
	})

	current = &app{
		cfg:    cfg,
		format: format,
		source: scraper.New(cfg.ScraperOptions()),
	}
	return nil
}

// teardown reports fetch metrics in verbose mode
func teardown(cmd *cobra.Command, args []string) {
	if flagVerbose {
		logger.Debug("metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}
}

// resolveTeam picks the flag value or the configured default
func (a *app) resolveTeam(flag string) (game.Team, error) {
	if flag == "" {
		flag = a.cfg.DefaultTeam
	}
	return game.LookupTeam(flag)
}

func (a *app) resolveSeason(flag string) string {
	if flag == "" {
		return a.cfg.DefaultSeason
	}
	return flag
}

func (a *app) resolveCount(flag int) int {
	if flag <= 0 {
		return a.cfg.DefaultCount
	}
	return flag
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}

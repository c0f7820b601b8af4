package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hoopscore/internal/fantasy"
	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
	"github.com/pfrederiksen/hoopscore/internal/notifier"
)

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List NBA teams and their abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTeams(cmd.OutOrStdout(), game.AllTeams(), current.format)
		},
	}
}

var (
	flagTeam   string
	flagSeason string
	flagCount  int
)

// addScheduleFlags registers the flags shared by games and browse
func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTeam, "team", "", "Team abbreviation or name (default from config)")
	cmd.Flags().StringVar(&flagSeason, "season", "", "Season end year, e.g. 2025 (default from config)")
	cmd.Flags().IntVar(&flagCount, "count", 0, "Number of recent games (default from config)")
}

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List a team's most recent completed games",
		Args:  cobra.NoArgs,
		RunE:  runGames,
	}
	addScheduleFlags(cmd)
	return cmd
}

func runGames(cmd *cobra.Command, args []string) error {
	result, err := fetchGames(cmd, flagTeam)
	if err != nil {
		return err
	}
	return writeGames(cmd.OutOrStdout(), result, current.format)
}

// fetchGames resolves schedule flags and fetches the recent games for team
func fetchGames(cmd *cobra.Command, teamQuery string) (*GamesResult, error) {
	team, err := current.resolveTeam(teamQuery)
	if err != nil {
		return nil, err
	}
	season := current.resolveSeason(flagSeason)
	count := current.resolveCount(flagCount)

	logger.Info("fetching recent games", logger.Fields{
		"team":   team.Abbr,
		"season": season,
		"count":  count,
	})

	games, err := current.source.RecentGames(cmd.Context(), team.Abbr, season, count)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	return &GamesResult{Team: team, Season: season, Games: games}, nil
}

var (
	flagPlayers bool
	flagSort    string
	flagNotify  string
)

func newBoxScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxscore <url>",
		Short: "Show a box score with fantasy scores",
		Args:  cobra.ExactArgs(1),
		RunE:  runBoxScore,
	}

	cmd.Flags().BoolVar(&flagPlayers, "players", false, "Include per-player lines")
	cmd.Flags().StringVar(&flagSort, "sort", string(SortByFantasy), "Player sort: fantasy, points, minutes, name or page")
	cmd.Flags().StringVar(&flagNotify, "notify", "", "Post a summary: dry-run, twitter or telegram")

	return cmd
}

func runBoxScore(cmd *cobra.Command, args []string) error {
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}

	// Build the notifier first so missing credentials fail before any fetch
	var n notifier.Notifier
	if flagNotify != "" {
		n, err = notifier.New(flagNotify, cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("initializing notifier: %w", err)
		}
	}

	box, err := current.source.BoxScore(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching box score: %w", err)
	}

	if err := writeBoxScore(cmd.OutOrStdout(), box, current.format, flagPlayers, order); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if n != nil {
		if err := n.Notify(cmd.Context(), box); err != nil {
			return fmt.Errorf("sending notification: %w", err)
		}
	}
	return nil
}

var (
	flagPts, flagReb, flagAst, flagStl, flagBlk, flagTov, flagFg3m int
	flagTechs, flagFlagrants                                      int
	flagName                                                      string
	flagInput                                                     string
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the fantasy score for a stat line",
		Long: `Compute the fantasy score for a single stat line given as flags, or for every
line in a JSON array read from --input (use - for stdin). Each JSON object takes
pts, reb, ast, stl, blk, tov, fg3m and optional techs, flagrants and name.`,
		Args: cobra.NoArgs,
		RunE: runScore,
	}

	cmd.Flags().IntVar(&flagPts, "pts", 0, "Points")
	cmd.Flags().IntVar(&flagReb, "reb", 0, "Rebounds")
	cmd.Flags().IntVar(&flagAst, "ast", 0, "Assists")
	cmd.Flags().IntVar(&flagStl, "stl", 0, "Steals")
	cmd.Flags().IntVar(&flagBlk, "blk", 0, "Blocks")
	cmd.Flags().IntVar(&flagTov, "tov", 0, "Turnovers")
	cmd.Flags().IntVar(&flagFg3m, "fg3m", 0, "Three-pointers made")
	cmd.Flags().IntVar(&flagTechs, "techs", 0, "Technical fouls")
	cmd.Flags().IntVar(&flagFlagrants, "flagrants", 0, "Flagrant fouls")
	cmd.Flags().StringVar(&flagName, "name", "", "Label for the line")
	cmd.Flags().StringVar(&flagInput, "input", "", "JSON file of stat lines, - for stdin")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	var rows []ScoreRow

	if flagInput != "" {
		r := cmd.InOrStdin()
		if flagInput != "-" {
			f, err := os.Open(flagInput)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()
			r = f
		}

		var err error
		rows, err = readScoreRows(r)
		if err != nil {
			return err
		}
	} else {
		line := fantasy.NewBoxScoreLine(flagPts, flagReb, flagAst, flagStl, flagBlk, flagTov, flagFg3m,
			fantasy.WithTechnicals(flagTechs), fantasy.WithFlagrants(flagFlagrants))
		rows = []ScoreRow{{Name: flagName, Line: line, Breakdown: fantasy.Explain(line)}}
	}

	return writeScores(cmd.OutOrStdout(), rows, current.format, flagVerbose)
}

// scoreInput is one JSON stat line with an optional label
type scoreInput struct {
	Name string `json:"name"`
	fantasy.Stats
}

// readScoreRows decodes and scores a JSON array of stat lines
func readScoreRows(r io.Reader) ([]ScoreRow, error) {
	var inputs []scoreInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}

	rows := make([]ScoreRow, 0, len(inputs))
	for i, in := range inputs {
		line, err := fantasy.LineFromStats(in.Stats)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, ScoreRow{Name: in.Name, Line: line, Breakdown: fantasy.Explain(line)})
	}
	return rows, nil
}

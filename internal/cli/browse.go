package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
	"github.com/pfrederiksen/hoopscore/internal/scraper"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively pick a recent game and view its box score",
		Long: `Lists a team's recent games and prompts for one to open. Enter a game number
to view its box score, t to switch teams, or q to quit.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	addScheduleFlags(cmd)
	cmd.Flags().StringVar(&flagSort, "sort", string(SortByFantasy), "Player sort: fantasy, points, minutes, name or page")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	result, err := fetchGames(cmd, flagTeam)
	if err != nil {
		return err
	}

	for {
		if err := writeGames(out, result, FormatText); err != nil {
			return err
		}

		if len(result.Games) == 0 {
			fmt.Fprint(out, "t to change team, q to quit: ")
		} else {
			fmt.Fprintf(out, "Select a game (1-%d), t to change team, q to quit: ", len(result.Games))
		}
		input, ok := readLine(in)
		if !ok {
			fmt.Fprintln(out)
			return in.Err()
		}

		switch {
		case input == "q":
			return nil

		case input == "t":
			fmt.Fprint(out, "Team: ")
			query, ok := readLine(in)
			if !ok {
				fmt.Fprintln(out)
				return in.Err()
			}
			next, err := fetchGames(cmd, query)
			if err != nil {
				fmt.Fprintf(out, "❌ %v\n", err)
				continue
			}
			result = next

		default:
			idx, err := strconv.Atoi(input)
			if err != nil || idx < 1 || idx > len(result.Games) {
				fmt.Fprintf(out, "❌ Invalid selection: %q\n", input)
				continue
			}
			showGame(cmd, out, result.Games[idx-1], order)
		}
	}
}

// showGame prints the detail view for one game, reporting fetch problems inline
func showGame(cmd *cobra.Command, out io.Writer, g *game.Game, order SortOrder) {
	box, err := current.source.GameBoxScore(cmd.Context(), g)
	if errors.Is(err, scraper.ErrNoBoxScoreLink) {
		fmt.Fprintln(out, "❌ No box score available.")
		return
	}
	if err != nil {
		logger.Error("fetching box score failed", logger.Fields{"game": g.Summary()}, err)
		fmt.Fprintf(out, "❌ Failed to load box score: %v\n", err)
		return
	}

	fmt.Fprintln(out)
	if err := writeBoxScore(out, box, FormatText, true, order); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
	}
	fmt.Fprintln(out)
}

func readLine(s *bufio.Scanner) (string, bool) {
	if !s.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(s.Text())), true
}

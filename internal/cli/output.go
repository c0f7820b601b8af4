package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pfrederiksen/hoopscore/internal/fantasy"
	"github.com/pfrederiksen/hoopscore/internal/game"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// GamesResult is the output of the games command
type GamesResult struct {
	Team   game.Team    `json:"team"`
	Season string       `json:"season"`
	Games  []*game.Game `json:"games"`
}

// ScoreRow is one scored line in the output of the score command
type ScoreRow struct {
	Name      string               `json:"name,omitempty"`
	Line      fantasy.BoxScoreLine `json:"line"`
	Breakdown fantasy.Breakdown    `json:"breakdown"`
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// writeTeams lists every franchise
func writeTeams(w io.Writer, teams []game.Team, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, teams)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Team", "Abbr"})
	for _, team := range teams {
		t.AppendRow(table.Row{team.Name, team.Abbr})
	}
	t.Render()
	return nil
}

// writeGames outputs a numbered list of game summaries
func writeGames(w io.Writer, result *GamesResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if len(result.Games) == 0 {
		fmt.Fprintln(w, "No completed games found.")
		return nil
	}

	fmt.Fprintf(w, "%s (%s) - %s season\n", result.Team.Name, result.Team.Abbr, result.Season)
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Game", "Box Score"})
	for i, g := range result.Games {
		box := "yes"
		if !g.HasBoxScore() {
			box = "-"
		}
		t.AppendRow(table.Row{i + 1, g.Summary(), box})
	}
	t.Render()
	return nil
}

// writeBoxScore outputs both teams' totals side by side, then optional player tables
func writeBoxScore(w io.Writer, box *game.BoxScore, format OutputFormat, players bool, order SortOrder) error {
	if format == FormatJSON {
		if !players {
			trimmed := *box
			trimmed.Teams = make([]*game.TeamBox, len(box.Teams))
			for i, tb := range box.Teams {
				c := *tb
				c.Players = nil
				trimmed.Teams[i] = &c
			}
			box = &trimmed
		}
		return writeJSON(w, box)
	}

	fmt.Fprintf(w, "📊 Box Score: %s\n", box.URL)
	if box.Title != "" {
		fmt.Fprintf(w, "🏀 %s\n", box.Title)
	}

	t := newTable(w)
	header := table.Row{"Stat"}
	for _, tb := range box.Teams {
		header = append(header, tb.Team+" Totals")
	}
	t.AppendHeader(header)

	for _, label := range game.TotalsLabels {
		row := table.Row{label}
		for _, tb := range box.Teams {
			row = append(row, tb.Total(label))
		}
		t.AppendRow(row)
	}

	t.AppendSeparator()
	fantasyRow := table.Row{"Fantasy"}
	for _, tb := range box.Teams {
		fantasyRow = append(fantasyRow, tb.Fantasy.String())
	}
	t.AppendRow(fantasyRow)

	alignRight := make([]table.ColumnConfig, 0, len(box.Teams))
	for i := range box.Teams {
		alignRight = append(alignRight, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	t.SetColumnConfigs(alignRight)
	t.Render()

	if !players {
		return nil
	}

	for _, tb := range box.Teams {
		fmt.Fprintf(w, "\n%s\n", tb.Team)
		writePlayers(w, tb.Players, order)
	}
	return nil
}

// writePlayers renders one team's player lines
func writePlayers(w io.Writer, players []*game.PlayerLine, order SortOrder) {
	sorted := make([]*game.PlayerLine, len(players))
	copy(sorted, players)
	sortPlayers(sorted, order)

	t := newTable(w)
	t.AppendHeader(table.Row{"Player", "MP", "PTS", "TRB", "AST", "STL", "BLK", "TOV", "3P", "Fantasy"})
	for _, p := range sorted {
		name := p.Name
		if p.Starter {
			name += " *"
		}
		if !p.Played() {
			t.AppendRow(table.Row{name, p.DidNotPlay, "", "", "", "", "", "", "", ""})
			continue
		}
		l := p.Line
		t.AppendRow(table.Row{name, p.Minutes, l.Points, l.Rebounds, l.Assists, l.Steals, l.Blocks, l.Turnovers, l.ThreesMade, p.Fantasy.String()})
	}
	t.Render()
}

// writeScores outputs scored stat lines with their breakdown
func writeScores(w io.Writer, rows []ScoreRow, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, rows)
	}

	t := newTable(w)
	header := table.Row{"Name", "PTS", "REB", "AST", "STL", "BLK", "TOV", "3PM", "TECH", "FLAG"}
	if verbose {
		header = append(header, "Base", "Cats", "Cat Bonus", "Pts Bonus")
	}
	header = append(header, "Fantasy")
	t.AppendHeader(header)

	for _, r := range rows {
		l := r.Line
		row := table.Row{r.Name, l.Points, l.Rebounds, l.Assists, l.Steals, l.Blocks, l.Turnovers, l.ThreesMade, l.Technicals, l.Flagrants}
		if verbose {
			b := r.Breakdown
			row = append(row, b.Base, b.CategoriesHit, b.CategoryBonus, b.MilestoneBonus)
		}
		row = append(row, r.Breakdown.Total.String())
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

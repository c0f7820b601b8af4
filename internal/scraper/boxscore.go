package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/hoopscore/internal/fantasy"
	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
)

// Matches full-game basic tables only, e.g. "box-TOR-game-basic", not the per-quarter ones
var basicTableID = regexp.MustCompile(`^box-([A-Za-z]+)-game-basic$`)

// parseBoxScore extracts team totals and player lines from a box score page
func parseBoxScore(r io.Reader, sourceURL string) (*game.BoxScore, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	box := &game.BoxScore{
		URL:   sourceURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Teams: make([]*game.TeamBox, 0, 2),
	}

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		id, _ := table.Attr("id")
		m := basicTableID.FindStringSubmatch(id)
		if m == nil {
			return
		}

		team := strings.ToUpper(m[1])
		tb, err := parseTeamTable(table, team)
		if err != nil {
			logger.Warn("skipping team table", logger.Fields{"table": id, "error": err.Error()})
			return
		}
		box.Teams = append(box.Teams, tb)
	})

	if len(box.Teams) != 2 {
		return nil, fmt.Errorf("%w (found %d)", ErrIncompleteBoxScore, len(box.Teams))
	}

	return box, nil
}

// parseTeamTable reads one team's basic box score table
func parseTeamTable(table *goquery.Selection, team string) (*game.TeamBox, error) {
	footer := table.Find("tfoot tr").First()
	if footer.Length() == 0 {
		return nil, fmt.Errorf("no totals row")
	}

	totals := make([]string, 0, len(game.TotalsLabels))
	footer.Find("td").Each(func(i int, td *goquery.Selection) {
		totals = append(totals, strings.TrimSpace(td.Text()))
	})

	line, err := statLine(footer)
	if err != nil {
		return nil, fmt.Errorf("parsing totals: %w", err)
	}

	tb := &game.TeamBox{
		Team:    team,
		Totals:  totals,
		Line:    line,
		Fantasy: fantasy.Compute(line),
		Players: make([]*game.PlayerLine, 0),
	}

	// Starters come first, the "Reserves" header row separates them from the bench
	starter := true
	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		if row.HasClass("thead") {
			starter = false
			return
		}

		name := strings.TrimSpace(row.Find(`th[data-stat="player"]`).First().Text())
		if name == "" {
			return
		}

		p := &game.PlayerLine{Name: name, Starter: starter}

		if reason := row.Find(`td[data-stat="reason"]`); reason.Length() > 0 {
			p.DidNotPlay = strings.TrimSpace(reason.Text())
			tb.Players = append(tb.Players, p)
			return
		}

		line, err := statLine(row)
		if err != nil {
			logger.Warn("skipping player row", logger.Fields{
				"team":   team,
				"player": name,
				"error":  err.Error(),
			})
			return
		}

		p.Minutes = cellText(row, "mp")
		p.Line = line
		p.Fantasy = fantasy.Compute(line)
		tb.Players = append(tb.Players, p)
	})

	return tb, nil
}

// statLine reads the scored counters from a row by their data-stat markers.
// Box scores do not list technical or flagrant fouls, so those stay zero.
func statLine(row *goquery.Selection) (fantasy.BoxScoreLine, error) {
	stats := []string{"pts", "trb", "ast", "stl", "blk", "tov", "fg3"}
	vals := make([]int, len(stats))

	for i, stat := range stats {
		n, err := fantasy.ParseStat(cellText(row, stat))
		if err != nil {
			return fantasy.BoxScoreLine{}, fmt.Errorf("%s: %w", stat, err)
		}
		vals[i] = n
	}

	return fantasy.NewBoxScoreLine(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]), nil
}

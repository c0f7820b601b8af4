package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/hoopscore/internal/fantasy"
)

// TotalsLabels are the columns of a team totals row, in page order
var TotalsLabels = []string{
	"MIN", "FG", "FGA", "FG%", "3P", "3PA", "3P%", "FT", "FTA", "FT%",
	"ORB", "DRB", "TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

// PlayerLine is one player's row in a box score
type PlayerLine struct {
	Name       string               `json:"name"`
	Starter    bool                 `json:"starter"`
	Minutes    string               `json:"minutes,omitempty"`
	Line       fantasy.BoxScoreLine `json:"line"`
	Fantasy    fantasy.Score        `json:"fantasy"`
	DidNotPlay string               `json:"did_not_play,omitempty"`
}

// Played reports whether the player logged stats
func (p *PlayerLine) Played() bool {
	return p.DidNotPlay == ""
}

// TeamBox is one team's half of a box score
type TeamBox struct {
	Team    string               `json:"team"`
	Totals  []string             `json:"totals"`
	Line    fantasy.BoxScoreLine `json:"line"`
	Fantasy fantasy.Score        `json:"fantasy"`
	Players []*PlayerLine        `json:"players,omitempty"`
}

// Total returns the totals cell for a label, or "" if the row is short
func (t *TeamBox) Total(label string) string {
	for i, l := range TotalsLabels {
		if l == label && i < len(t.Totals) {
			return t.Totals[i]
		}
	}
	return ""
}

// BoxScore is a parsed box score page
type BoxScore struct {
	URL   string     `json:"url"`
	Title string     `json:"title"`
	Teams []*TeamBox `json:"teams"`
}

// Matchup returns the page title without the site suffix
func (b *BoxScore) Matchup() string {
	if i := strings.Index(b.Title, " | "); i >= 0 {
		return strings.TrimSpace(b.Title[:i])
	}
	return b.Title
}

// Scoreline renders the final score as "SAS 125 - TOR 118"
func (b *BoxScore) Scoreline() string {
	parts := make([]string, 0, len(b.Teams))
	for _, t := range b.Teams {
		parts = append(parts, fmt.Sprintf("%s %s", t.Team, t.Total("PTS")))
	}
	return strings.Join(parts, " - ")
}

// Performer pairs a player line with the team it belongs to
type Performer struct {
	Team   string
	Player *PlayerLine
}

// TopPerformers returns up to n players who played, ordered by fantasy score.
// Ties keep page order.
func (b *BoxScore) TopPerformers(n int) []Performer {
	all := make([]Performer, 0)
	for _, t := range b.Teams {
		for _, p := range t.Players {
			if p.Played() {
				all = append(all, Performer{Team: t.Team, Player: p})
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Player.Fantasy > all[j].Player.Fantasy
	})

	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

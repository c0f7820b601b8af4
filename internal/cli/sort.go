package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pfrederiksen/hoopscore/internal/game"
)

// SortOrder represents the available player sorting options
type SortOrder string

const (
	SortByFantasy SortOrder = "fantasy"
	SortByPoints  SortOrder = "points"
	SortByMinutes SortOrder = "minutes"
	SortByName    SortOrder = "name"
	// SortByPage keeps the order the players appear on the page
	SortByPage SortOrder = "page"
)

// parseSortOrder validates a --sort value
func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortByFantasy, SortByPoints, SortByMinutes, SortByName, SortByPage:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort: %s (must be fantasy, points, minutes, name or page)", s)
	}
}

// sortPlayers sorts player lines in place. Players who did not play always sort last.
func sortPlayers(players []*game.PlayerLine, order SortOrder) {
	if order == SortByPage {
		return
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Played() != b.Played() {
			return a.Played()
		}

		switch order {
		case SortByFantasy:
			if a.Fantasy != b.Fantasy {
				return a.Fantasy > b.Fantasy
			}
		case SortByPoints:
			if a.Line.Points != b.Line.Points {
				return a.Line.Points > b.Line.Points
			}
		case SortByMinutes:
			ma, mb := minutesPlayed(a.Minutes), minutesPlayed(b.Minutes)
			if ma != mb {
				return ma > mb
			}
		}

		// Fall back to name so equal keys have a stable order
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// minutesPlayed converts "34:12" into seconds. Unparseable values count as zero.
func minutesPlayed(mp string) int {
	parts := strings.SplitN(mp, ":", 2)
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	secs := 0
	if len(parts) == 2 {
		secs, _ = strconv.Atoi(parts[1])
	}
	return mins*60 + secs
}

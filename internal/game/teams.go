package game

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTeam is used when no team is configured
const DefaultTeam = "TOR"

// Teams maps franchise names to basketball-reference abbreviations
var Teams = map[string]string{
	"Atlanta Hawks":          "ATL",
	"Boston Celtics":         "BOS",
	"Brooklyn Nets":          "BRK",
	"Charlotte Hornets":      "CHO",
	"Chicago Bulls":          "CHI",
	"Cleveland Cavaliers":    "CLE",
	"Dallas Mavericks":       "DAL",
	"Denver Nuggets":         "DEN",
	"Detroit Pistons":        "DET",
	"Golden State Warriors":  "GSW",
	"Houston Rockets":        "HOU",
	"Indiana Pacers":         "IND",
	"Los Angeles Clippers":   "LAC",
	"Los Angeles Lakers":     "LAL",
	"Memphis Grizzlies":      "MEM",
	"Miami Heat":             "MIA",
	"Milwaukee Bucks":        "MIL",
	"Minnesota Timberwolves": "MIN",
	"New Orleans Pelicans":   "NOP",
	"New York Knicks":        "NYK",
	"Oklahoma City Thunder":  "OKC",
	"Orlando Magic":          "ORL",
	"Philadelphia 76ers":     "PHI",
	"Phoenix Suns":           "PHO",
	"Portland Trail Blazers": "POR",
	"Sacramento Kings":       "SAC",
	"San Antonio Spurs":      "SAS",
	"Toronto Raptors":        "TOR",
	"Utah Jazz":              "UTA",
	"Washington Wizards":     "WAS",
}

// Team is a franchise name and abbreviation pair
type Team struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// LookupTeam resolves an abbreviation or full franchise name, case-insensitively
func LookupTeam(query string) (Team, error) {
	q := strings.TrimSpace(query)
	for name, abbr := range Teams {
		if strings.EqualFold(q, abbr) || strings.EqualFold(q, name) {
			return Team{Name: name, Abbr: abbr}, nil
		}
	}
	return Team{}, fmt.Errorf("unknown team: %q", query)
}

// AllTeams returns every franchise sorted by name
func AllTeams() []Team {
	teams := make([]Team, 0, len(Teams))
	for name, abbr := range Teams {
		teams = append(teams, Team{Name: name, Abbr: abbr})
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})
	return teams
}

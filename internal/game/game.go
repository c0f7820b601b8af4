package game

import (
	"crypto/sha1"
	"fmt"
)

// Location markers used in game summaries
const (
	Home = "vs"
	Away = "@"
)

// Game represents one completed game from a team's schedule
type Game struct {
	ID          string `json:"id"`
	Team        string `json:"team"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Opponent    string `json:"opponent"`
	Result      string `json:"result"`
	Points      string `json:"points"`
	OppPoints   string `json:"opp_points"`
	BoxScoreURL string `json:"box_score_url,omitempty"`
}

// GenerateID creates a deterministic ID for a game based on stable fields
func GenerateID(team, date, opponent string) string {
	h := sha1.New()
	h.Write([]byte(team + "|" + date + "|" + opponent))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// NewGame creates a Game with its ID populated.
// An empty location cell on the schedule means a home game.
func NewGame(team, date, locationCell, opponent, result, pts, oppPts, boxURL string) *Game {
	loc := Home
	if locationCell != "" {
		loc = Away
	}
	return &Game{
		ID:          GenerateID(team, date, opponent),
		Team:        team,
		Date:        date,
		Location:    loc,
		Opponent:    opponent,
		Result:      result,
		Points:      pts,
		OppPoints:   oppPts,
		BoxScoreURL: boxURL,
	}
}

// Completed reports whether the schedule row has a final score
func (g *Game) Completed() bool {
	return g.Points != "" && g.OppPoints != "" && g.Result != ""
}

// Summary renders the one-line description shown in game lists
func (g *Game) Summary() string {
	return fmt.Sprintf("%s: %s %s – %s-%s (%s)", g.Date, g.Location, g.Opponent, g.Points, g.OppPoints, g.Result)
}

// HasBoxScore reports whether a box score link was found for the game
func (g *Game) HasBoxScore() bool {
	return g.BoxScoreURL != ""
}

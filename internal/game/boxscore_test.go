package game

import (
	"testing"

	"github.com/pfrederiksen/hoopscore/internal/fantasy"
)

func player(name string, score fantasy.Score) *PlayerLine {
	return &PlayerLine{Name: name, Fantasy: score}
}

func TestBoxScore_TopPerformers(t *testing.T) {
	box := &BoxScore{
		Teams: []*TeamBox{
			{
				Team: "TOR",
				Players: []*PlayerLine{
					player("Scottie Barnes", 41.5),
					player("RJ Barrett", 22.0),
					{Name: "Jakob Poeltl", DidNotPlay: "Did Not Play"},
				},
			},
			{
				Team: "BOS",
				Players: []*PlayerLine{
					player("Jayson Tatum", 45.0),
					player("Jaylen Brown", 22.0),
				},
			},
		},
	}

	top := box.TopPerformers(3)
	if len(top) != 3 {
		t.Fatalf("TopPerformers(3) returned %d, want 3", len(top))
	}

	want := []string{"Jayson Tatum", "Scottie Barnes", "RJ Barrett"}
	for i, name := range want {
		if top[i].Player.Name != name {
			t.Errorf("TopPerformers()[%d] = %q, want %q", i, top[i].Player.Name, name)
		}
	}
	if top[0].Team != "BOS" {
		t.Errorf("TopPerformers()[0].Team = %q, want BOS", top[0].Team)
	}

	if all := box.TopPerformers(-1); len(all) != 4 {
		t.Errorf("TopPerformers(-1) returned %d, want 4 players who played", len(all))
	}
}

func TestTeamBox_Total(t *testing.T) {
	tb := &TeamBox{Totals: []string{"240", "43", "88"}}

	if got := tb.Total("MIN"); got != "240" {
		t.Errorf("Total(MIN) = %q, want 240", got)
	}
	if got := tb.Total("FGA"); got != "88" {
		t.Errorf("Total(FGA) = %q, want 88", got)
	}
	if got := tb.Total("PTS"); got != "" {
		t.Errorf("Total(PTS) on short row = %q, want empty", got)
	}
}

func TestBoxScore_MatchupAndScoreline(t *testing.T) {
	pts := make([]string, len(TotalsLabels))
	pts[len(pts)-1] = "125"
	other := make([]string, len(TotalsLabels))
	other[len(other)-1] = "118"

	box := &BoxScore{
		Title: "Spurs vs Raptors, April 13, 2025 | Basketball-Reference.com",
		Teams: []*TeamBox{{Team: "SAS", Totals: pts}, {Team: "TOR", Totals: other}},
	}

	if got := box.Matchup(); got != "Spurs vs Raptors, April 13, 2025" {
		t.Errorf("Matchup() = %q", got)
	}
	if got := box.Scoreline(); got != "SAS 125 - TOR 118" {
		t.Errorf("Scoreline() = %q", got)
	}

	box.Title = "No suffix"
	if got := box.Matchup(); got != "No suffix" {
		t.Errorf("Matchup() = %q, want title unchanged", got)
	}
}

package fantasy

import (
	"math"
	"strconv"
)

// Scoring weights
const (
	PointWeight     = 0.5
	ReboundWeight   = 1.0
	AssistWeight    = 1.0
	StealWeight     = 2.0
	BlockWeight     = 2.0
	ThreeWeight     = 0.5
	TurnoverWeight  = -1.0
	TechnicalWeight = -2.0
	FlagrantWeight  = -2.0
)

// Bonus thresholds and values
const (
	CategoryThreshold = 10

	DoubleDoubleBonus = 1.0
	// TripleDoubleBonus already includes the double-double bonus.
	TripleDoubleBonus = 3.0

	FortyPointBonus = 2.0
	// FiftyPointBonus replaces the 40-point bonus, it is not added to it.
	FiftyPointBonus = 4.0
)

// Score is a fantasy point total rounded to one decimal place
type Score float64

// String formats the score with exactly one decimal place
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}

// MarshalJSON keeps JSON output at one decimal place
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// Breakdown shows how a score was assembled
type Breakdown struct {
	Base           float64 `json:"base"`
	CategoriesHit  int     `json:"categories_hit"`
	CategoryBonus  float64 `json:"category_bonus"`
	MilestoneBonus float64 `json:"milestone_bonus"`
	Total          Score   `json:"total"`
}

// Compute returns the fantasy score for a box-score line
func Compute(line BoxScoreLine) Score {
	return Explain(line).Total
}

// Explain computes the score and returns every intermediate value
func Explain(line BoxScoreLine) Breakdown {
	b := Breakdown{
		Base:          baseScore(line),
		CategoriesHit: CategoriesHit(line),
	}

	switch {
	case b.CategoriesHit >= 3:
		b.CategoryBonus = TripleDoubleBonus
	case b.CategoriesHit == 2:
		b.CategoryBonus = DoubleDoubleBonus
	}

	switch {
	case line.Points >= 50:
		b.MilestoneBonus = FiftyPointBonus
	case line.Points >= 40:
		b.MilestoneBonus = FortyPointBonus
	}

	b.Total = Round1(b.Base + b.CategoryBonus + b.MilestoneBonus)
	return b
}

func baseScore(l BoxScoreLine) float64 {
	return PointWeight*float64(l.Points) +
		ReboundWeight*float64(l.Rebounds) +
		AssistWeight*float64(l.Assists) +
		StealWeight*float64(l.Steals) +
		BlockWeight*float64(l.Blocks) +
		ThreeWeight*float64(l.ThreesMade) +
		TurnoverWeight*float64(l.Turnovers) +
		TechnicalWeight*float64(l.Technicals) +
		FlagrantWeight*float64(l.Flagrants)
}

// CategoriesHit counts how many of points, rebounds, assists, steals and blocks
// reached double figures
func CategoriesHit(l BoxScoreLine) int {
	hit := 0
	for _, v := range []int{l.Points, l.Rebounds, l.Assists, l.Steals, l.Blocks} {
		if v >= CategoryThreshold {
			hit++
		}
	}
	return hit
}

// IsDoubleDouble reports exactly two categories in double figures
func IsDoubleDouble(l BoxScoreLine) bool {
	return CategoriesHit(l) == 2
}

// IsTripleDouble reports three or more categories in double figures
func IsTripleDouble(l BoxScoreLine) bool {
	return CategoriesHit(l) >= 3
}

// Round1 rounds to one decimal place, halves away from zero.
// Integer counters only ever produce multiples of 0.5, so ties never occur
// for scores computed from a BoxScoreLine.
func Round1(v float64) Score {
	return Score(math.Round(v*10) / 10)
}

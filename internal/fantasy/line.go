package fantasy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a stat value is not a finite whole number.
var ErrInvalidArgument = errors.New("invalid argument")

// BoxScoreLine holds one player's or team's counting stats for a single game
type BoxScoreLine struct {
	Points     int `json:"pts"`
	Rebounds   int `json:"reb"`
	Assists    int `json:"ast"`
	Steals     int `json:"stl"`
	Blocks     int `json:"blk"`
	Turnovers  int `json:"tov"`
	ThreesMade int `json:"fg3m"`
	Technicals int `json:"techs"`
	Flagrants  int `json:"flagrants"`
}

// LineOption sets one of the optional counters on a BoxScoreLine
type LineOption func(*BoxScoreLine)

// WithTechnicals sets the technical foul count
func WithTechnicals(n int) LineOption {
	return func(l *BoxScoreLine) { l.Technicals = n }
}

// WithFlagrants sets the flagrant foul count
func WithFlagrants(n int) LineOption {
	return func(l *BoxScoreLine) { l.Flagrants = n }
}

// NewBoxScoreLine creates a line from the seven box-score counters.
// Technical and flagrant fouls default to zero unless set through options.
func NewBoxScoreLine(pts, reb, ast, stl, blk, tov, fg3m int, opts ...LineOption) BoxScoreLine {
	l := BoxScoreLine{
		Points:     pts,
		Rebounds:   reb,
		Assists:    ast,
		Steals:     stl,
		Blocks:     blk,
		Turnovers:  tov,
		ThreesMade: fg3m,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Stats is the float-valued form of a line as it arrives from JSON or other loosely
// typed sources. Nil fouls mean the source did not report them.
type Stats struct {
	Points     float64  `json:"pts"`
	Rebounds   float64  `json:"reb"`
	Assists    float64  `json:"ast"`
	Steals     float64  `json:"stl"`
	Blocks     float64  `json:"blk"`
	Turnovers  float64  `json:"tov"`
	ThreesMade float64  `json:"fg3m"`
	Technicals *float64 `json:"techs,omitempty"`
	Flagrants  *float64 `json:"flagrants,omitempty"`
}

// LineFromStats converts loosely typed stats into a BoxScoreLine.
// Every field must be a finite whole number.
func LineFromStats(s Stats) (BoxScoreLine, error) {
	var l BoxScoreLine
	fields := []statField{
		{"pts", s.Points, &l.Points},
		{"reb", s.Rebounds, &l.Rebounds},
		{"ast", s.Assists, &l.Assists},
		{"stl", s.Steals, &l.Steals},
		{"blk", s.Blocks, &l.Blocks},
		{"tov", s.Turnovers, &l.Turnovers},
		{"fg3m", s.ThreesMade, &l.ThreesMade},
	}
	if s.Technicals != nil {
		fields = append(fields, statField{"techs", *s.Technicals, &l.Technicals})
	}
	if s.Flagrants != nil {
		fields = append(fields, statField{"flagrants", *s.Flagrants, &l.Flagrants})
	}

	for _, f := range fields {
		n, err := StatFromFloat(f.val)
		if err != nil {
			return BoxScoreLine{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	return l, nil
}

type statField struct {
	name string
	val  float64
	dst  *int
}

// StatFromFloat converts a float stat into a counter.
// NaN, infinities and fractional values are rejected.
func StatFromFloat(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite value %v", ErrInvalidArgument, v)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: fractional value %v", ErrInvalidArgument, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: value %v out of range", ErrInvalidArgument, v)
	}
	return int(v), nil
}

// ParseStat parses a scraped stat cell. Blank cells count as zero.
func ParseStat(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, text)
	}
	return n, nil
}

package fantasy

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestNewBoxScoreLine_DefaultsFoulsToZero(t *testing.T) {
	l := NewBoxScoreLine(25, 11, 4, 1, 0, 3, 2)
	if l.Technicals != 0 || l.Flagrants != 0 {
		t.Errorf("fouls = %d/%d, want 0/0", l.Technicals, l.Flagrants)
	}

	l = NewBoxScoreLine(0, 0, 0, 0, 0, 0, 0, WithTechnicals(2), WithFlagrants(1))
	if l.Technicals != 2 {
		t.Errorf("Technicals = %d, want 2", l.Technicals)
	}
	if l.Flagrants != 1 {
		t.Errorf("Flagrants = %d, want 1", l.Flagrants)
	}
}

func TestStatFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr bool
	}{
		{"whole number", 12, 12, false},
		{"zero", 0, 0, false},
		{"negative", -3, -3, false},
		{"fractional", 2.5, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"positive infinity", math.Inf(1), 0, true},
		{"negative infinity", math.Inf(-1), 0, true},
		{"huge", 1e12, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StatFromFloat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("StatFromFloat(%v) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("StatFromFloat(%v) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("StatFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStat(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{" 7 ", 7, false},
		{"", 0, false},
		{"-4", -4, false},
		{".455", 0, true},
		{"Did Not Play", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseStat(%q) error = %v, want ErrInvalidArgument", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStat(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseStat(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLineFromStats(t *testing.T) {
	var s Stats
	if err := json.Unmarshal([]byte(`{"pts":25,"reb":11,"ast":4,"stl":1,"blk":0,"tov":3,"fg3m":2}`), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	l, err := LineFromStats(s)
	if err != nil {
		t.Fatalf("LineFromStats() error = %v", err)
	}
	if want := NewBoxScoreLine(25, 11, 4, 1, 0, 3, 2); l != want {
		t.Errorf("LineFromStats() = %+v, want %+v", l, want)
	}
	if got := Compute(l); got != 27.5 {
		t.Errorf("Compute() = %v, want 27.5", got)
	}
}

func TestLineFromStats_Fouls(t *testing.T) {
	techs, flagrants := 1.0, 2.0
	l, err := LineFromStats(Stats{Points: 10, Technicals: &techs, Flagrants: &flagrants})
	if err != nil {
		t.Fatalf("LineFromStats() error = %v", err)
	}
	if l.Technicals != 1 || l.Flagrants != 2 {
		t.Errorf("fouls = %d/%d, want 1/2", l.Technicals, l.Flagrants)
	}
}

func TestLineFromStats_Invalid(t *testing.T) {
	bad := math.NaN()
	tests := []struct {
		name string
		in   Stats
	}{
		{"fractional points", Stats{Points: 10.5}},
		{"infinite rebounds", Stats{Rebounds: math.Inf(1)}},
		{"NaN technicals", Stats{Technicals: &bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LineFromStats(tt.in)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("LineFromStats() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

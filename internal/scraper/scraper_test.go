package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestRecentGames(t *testing.T) {
	schedule := loadFixture(t, "schedule.html")

	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		count       int
		wantErr     error
		wantAnyErr  bool
		wantGames   int
	}{
		{
			name:        "successful fetch",
			htmlContent: schedule,
			statusCode:  http.StatusOK,
			count:       5,
			wantGames:   4,
		},
		{
			name:        "count limits results",
			htmlContent: schedule,
			statusCode:  http.StatusOK,
			count:       2,
			wantGames:   2,
		},
		{
			name:       "HTTP error",
			statusCode: http.StatusNotFound,
			count:      5,
			wantAnyErr: true,
		},
		{
			name:        "missing games table",
			htmlContent: `<html><body><p>No games</p></body></html>`,
			statusCode:  http.StatusOK,
			count:       5,
			wantErr:     ErrGamesTableNotFound,
		},
		{
			name:        "no completed games",
			htmlContent: `<table id="games"><tbody><tr><td data-stat="date_game">Wed, Oct 23, 2024</td></tr></tbody></table>`,
			statusCode:  http.StatusOK,
			count:       5,
			wantGames:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "hoopscore") {
					t.Errorf("User-Agent = %q, should contain 'hoopscore'", userAgent)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			s := New(Options{BaseURL: server.URL})
			games, err := s.RecentGames(context.Background(), "tor", "2025", tt.count)

			if gotPath != "/teams/TOR/2025_games.html" {
				t.Errorf("request path = %q, want /teams/TOR/2025_games.html", gotPath)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RecentGames() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantAnyErr {
				if err == nil {
					t.Error("RecentGames() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("RecentGames() unexpected error: %v", err)
			}
			if len(games) != tt.wantGames {
				t.Errorf("RecentGames() returned %d games, want %d", len(games), tt.wantGames)
			}
		})
	}
}

func TestParseGames(t *testing.T) {
	games, err := parseGames(strings.NewReader(loadFixture(t, "schedule.html")), "TOR", 10, "https://example.com")
	if err != nil {
		t.Fatalf("parseGames() error: %v", err)
	}

	want := []string{
		"Mon, Oct 28, 2024: @ Sacramento Kings – 104-131 (L)",
		"Sat, Oct 26, 2024: @ Denver Nuggets – 125-127 (L)",
		"Thu, Oct 24, 2024: vs Philadelphia 76ers – 115-107 (W)",
		"Wed, Oct 23, 2024: vs Cleveland Cavaliers – 106-136 (L)",
	}

	if len(games) != len(want) {
		t.Fatalf("parseGames() returned %d games, want %d", len(games), len(want))
	}

	for i, summary := range want {
		if got := games[i].Summary(); got != summary {
			t.Errorf("games[%d].Summary() = %q, want %q", i, got, summary)
		}
		if games[i].Team != "TOR" {
			t.Errorf("games[%d].Team = %q, want TOR", i, games[i].Team)
		}
	}

	if games[0].BoxScoreURL != "https://example.com/boxscores/202410280SAC.html" {
		t.Errorf("BoxScoreURL = %q, want resolved absolute link", games[0].BoxScoreURL)
	}
	if games[1].HasBoxScore() {
		t.Errorf("game without link has BoxScoreURL %q", games[1].BoxScoreURL)
	}
}

func TestParseGames_Count(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"fewer than available", 2, 2},
		{"more than available", 1 << 30, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := parseGames(strings.NewReader(loadFixture(t, "schedule.html")), "TOR", tt.n, "https://example.com")
			if err != nil {
				t.Fatalf("parseGames(n=%d) error: %v", tt.n, err)
			}
			if games == nil {
				t.Fatalf("parseGames(n=%d) returned nil slice", tt.n)
			}
			if len(games) != tt.want {
				t.Errorf("parseGames(n=%d) returned %d games, want %d", tt.n, len(games), tt.want)
			}
		})
	}
}

func TestBoxScoreLink(t *testing.T) {
	tests := []struct {
		html string
		want string
	}{
		{`<td data-stat="box_score_text"><a href="/boxscores/1.html">Box Score</a></td>`, "https://bbr.test/boxscores/1.html"},
		{`<td data-stat="box_score_text"><a href="boxscores/1.html">Box Score</a></td>`, "https://bbr.test/boxscores/1.html"},
		{`<td data-stat="box_score_text"><a href="https://other.test/1.html">Box Score</a></td>`, "https://other.test/1.html"},
		{`<td data-stat="box_score_text"></td>`, ""},
	}

	for _, tt := range tests {
		games, err := parseGames(strings.NewReader(`<table id="games"><tbody><tr>`+
			`<td data-stat="game_result">W</td><td data-stat="pts">1</td><td data-stat="opp_pts">0</td>`+
			tt.html+`</tr></tbody></table>`), "TOR", 1, "https://bbr.test")
		if err != nil {
			t.Fatalf("parseGames() error: %v", err)
		}
		if len(games) != 1 {
			t.Fatalf("parseGames() returned %d games, want 1", len(games))
		}
		if games[0].BoxScoreURL != tt.want {
			t.Errorf("BoxScoreURL = %q, want %q", games[0].BoxScoreURL, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	s := New(Options{})

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.baseURL != DefaultBaseURL {
		t.Errorf("scraper baseURL = %q, want %q", s.baseURL, DefaultBaseURL)
	}
	if got := s.client.GetClient().Timeout; got != Timeout {
		t.Errorf("client timeout = %v, want %v", got, Timeout)
	}

	s = New(Options{BaseURL: "https://bbr.test/", Timeout: time.Second})
	if s.baseURL != "https://bbr.test" {
		t.Errorf("trailing slash not trimmed: %q", s.baseURL)
	}
	if got := s.ScheduleURL("bos", "2024"); got != "https://bbr.test/teams/BOS/2024_games.html" {
		t.Errorf("ScheduleURL() = %q", got)
	}
}

func TestRecentGames_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<table id="games"></table>`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{BaseURL: server.URL}).RecentGames(ctx, "TOR", "2025", 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RecentGames() error = %v, want context.Canceled", err)
	}
}

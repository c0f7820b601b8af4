package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
)

const (
	DefaultBaseURL = "https://www.basketball-reference.com"
	UserAgent      = "Mozilla/5.0 (compatible; hoopscore/1.0; +github.com/pfrederiksen/hoopscore)"
	Timeout        = 30 * time.Second
)

var (
	// ErrGamesTableNotFound means the schedule page had no games table
	ErrGamesTableNotFound = errors.New("game table not found")
	// ErrIncompleteBoxScore means totals for both teams could not be found
	ErrIncompleteBoxScore = errors.New("could not find both teams' totals")
	// ErrNoBoxScoreLink means the schedule row had no box score link
	ErrNoBoxScoreLink = errors.New("no box score available")
)

// Options configures a Scraper. Zero values fall back to the package defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Scraper handles fetching and parsing basketball-reference pages
type Scraper struct {
	client  *resty.Client
	baseURL string
}

// New creates a new Scraper instance
func New(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}

	client := resty.New()
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	return &Scraper{
		client:  client,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

// ScheduleURL returns the season schedule page for a team
func (s *Scraper) ScheduleURL(team, season string) string {
	return fmt.Sprintf("%s/teams/%s/%s_games.html", s.baseURL, strings.ToUpper(team), season)
}

// RecentGames fetches a team's schedule and returns up to n completed games, newest first
func (s *Scraper) RecentGames(ctx context.Context, team, season string, n int) ([]*game.Game, error) {
	url := s.ScheduleURL(team, season)

	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	games, err := parseGames(body, strings.ToUpper(team), n, s.baseURL)
	if err != nil {
		return nil, err
	}

	logger.SetGauge("scraper.games", float64(len(games)))
	logger.Debug("parsed schedule", logger.Fields{
		"team":   team,
		"season": season,
		"games":  len(games),
	})

	return games, nil
}

// BoxScore fetches and parses a box score page
func (s *Scraper) BoxScore(ctx context.Context, url string) (*game.BoxScore, error) {
	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseBoxScore(body, url)
}

// GameBoxScore fetches the box score linked from a schedule row
func (s *Scraper) GameBoxScore(ctx context.Context, g *game.Game) (*game.BoxScore, error) {
	if !g.HasBoxScore() {
		return nil, ErrNoBoxScoreLink
	}
	return s.BoxScore(ctx, g.BoxScoreURL)
}

// fetch GETs a page and returns its body
func (s *Scraper) fetch(ctx context.Context, url string) (io.Reader, error) {
	logger.IncrCounter("scraper.requests")
	stop := logger.StartTimer("scraper.fetch")
	defer stop()

	logger.Debug("fetching page", logger.Fields{"url": url})

	resp, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		logger.IncrCounter("scraper.errors")
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.IncrCounter("scraper.errors")
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	return bytes.NewReader(resp.Body()), nil
}

// parseGames extracts completed games from a schedule page, walking rows newest first
func parseGames(r io.Reader, team string, n int, baseURL string) ([]*game.Game, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table#games").First()
	if table.Length() == 0 {
		return nil, ErrGamesTableNotFound
	}

	if n <= 0 {
		return []*game.Game{}, nil
	}

	rows := table.Find("tbody tr")
	games := make([]*game.Game, 0, min(n, rows.Length()))

	for i := rows.Length() - 1; i >= 0 && len(games) < n; i-- {
		row := rows.Eq(i)
		if row.HasClass("thead") {
			continue
		}

		g := game.NewGame(
			team,
			cellText(row, "date_game"),
			cellText(row, "game_location"),
			cellText(row, "opp_name"),
			cellText(row, "game_result"),
			cellText(row, "pts"),
			cellText(row, "opp_pts"),
			boxScoreLink(row, baseURL),
		)

		// Skip upcoming games
		if !g.Completed() {
			continue
		}

		games = append(games, g)
	}

	return games, nil
}

// cellText returns the trimmed text of the td carrying the given data-stat marker
func cellText(row *goquery.Selection, stat string) string {
	return strings.TrimSpace(row.Find(`td[data-stat="` + stat + `"]`).First().Text())
}

// boxScoreLink resolves the row's box score href against the site root
func boxScoreLink(row *goquery.Selection, baseURL string) string {
	href, ok := row.Find(`td[data-stat="box_score_text"] a`).First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return baseURL + href
}

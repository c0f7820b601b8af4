package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"

	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
	"github.com/pfrederiksen/hoopscore/internal/scraper"
)

const (
	DefaultPath   = "~/.config/hoopscore/config.json5"
	DefaultSeason = "2025"
	DefaultCount  = 5
)

// Config holds every file-backed setting
type Config struct {
	BaseURL        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DefaultTeam    string `json:"default_team"`
	DefaultSeason  string `json:"default_season"`
	DefaultCount   int    `json:"default_count"`
	LogLevel       string `json:"log_level"`
}

// Defaults returns the settings used when no file overrides them
func Defaults() Config {
	return Config{
		BaseURL:        scraper.DefaultBaseURL,
		UserAgent:      scraper.UserAgent,
		TimeoutSeconds: int(scraper.Timeout / time.Second),
		DefaultTeam:    game.DefaultTeam,
		DefaultSeason:  DefaultSeason,
		DefaultCount:   DefaultCount,
		LogLevel:       string(logger.LevelWarn),
	}
}

// ScraperOptions returns the scraper settings
func (c Config) ScraperOptions() scraper.Options {
	return scraper.Options{
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Timeout:   c.Timeout(),
	}
}

// Timeout returns the HTTP timeout as a duration
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks settings that would otherwise fail later with a confusing error
func (c Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL: %q", c.BaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive: %d", c.TimeoutSeconds)
	}
	if c.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be positive: %d", c.DefaultCount)
	}
	if _, err := game.LookupTeam(c.DefaultTeam); err != nil {
		return fmt.Errorf("default_team: %w", err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Load reads the config file at path and its .local override, filling unset keys
// from Defaults
func Load(path string) (Config, error) {
	path, err := expandHome(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := readFiles(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return Config{}, fmt.Errorf("applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// readFiles merges <name>.<ext> with <name>.local.<ext>, the local file winning.
// Returns os.ErrNotExist when neither file exists.
func readFiles(path string) (Config, error) {
	var out Config
	found := false

	base, err := readFile(path)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if err == nil {
		out = base
		found = true
	}

	localPath := localName(path)
	local, err := readFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if err == nil {
		if err := mergo.Merge(&out, local, mergo.WithOverride); err != nil {
			return out, fmt.Errorf("merging %s: %w", localPath, err)
		}
		logger.Debug("merged local config overrides", logger.Fields{"local": localPath})
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

func readFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// localName turns config.json5 into config.local.json5
func localName(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, prefix+".local"+ext)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

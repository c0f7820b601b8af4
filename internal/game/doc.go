// Package game provides the NBA schedule, team and box-score types shared by the scraper,
// the CLI and the notifiers.
//
// A Game is one completed row of a team's season schedule. A BoxScore carries both teams'
// totals and player lines, each paired with its fantasy score. Each game is assigned a
// deterministic SHA1-based ID generated from its team, date and opponent.
package game

// Package scraper provides HTTP fetching and HTML parsing for basketball-reference.com.
//
// The scraper fetches a team's season schedule and individual box score pages, locating
// stat cells by their data-stat attributes. Player and team totals are converted into
// fantasy.BoxScoreLine values and scored. The markers are specific to the site's markup,
// so a redesign of the pages breaks parsing rather than degrading it.
package scraper

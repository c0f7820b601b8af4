package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/pfrederiksen/hoopscore/internal/game"
)

const (
	// TopPerformers is how many players a summary lists
	TopPerformers = 3
	tweetLimit    = 280
)

// FormatSummary formats a box score as a plain-text summary
func FormatSummary(box *game.BoxScore) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🏀 %s\n", box.Matchup()))
	msg.WriteString(fmt.Sprintf("%s\n", box.Scoreline()))

	if top := box.TopPerformers(TopPerformers); len(top) > 0 {
		msg.WriteString("\nTop fantasy:\n")
		for i, p := range top {
			msg.WriteString(fmt.Sprintf("%d. %s (%s) %s\n", i+1, p.Player.Name, p.Team, p.Player.Fantasy))
		}
	}

	msg.WriteString("\n#NBA #FantasyBasketball")
	return msg.String()
}

// formatTweet formats a summary and truncates it to the Twitter limit
func formatTweet(box *game.BoxScore) string {
	tweet := FormatSummary(box)
	if tweetLength(tweet) <= tweetLimit {
		return tweet
	}

	const ellipsis = "..."
	budget := tweetLimit - tweetLength(ellipsis)
	var out strings.Builder
	for _, r := range tweet {
		w := runeWeight(r)
		if w > budget {
			break
		}
		budget -= w
		out.WriteRune(r)
	}
	return out.String() + ellipsis
}

// tweetLength counts s the way Twitter does: Latin-range characters weigh 1,
// everything else (emoji, CJK) weighs 2.
func tweetLength(s string) int {
	n := 0
	for _, r := range s {
		n += runeWeight(r)
	}
	return n
}

func runeWeight(r rune) int {
	switch {
	case r <= 0x10FF,
		r >= 0x2000 && r <= 0x200D,
		r >= 0x2010 && r <= 0x201F,
		r >= 0x2032 && r <= 0x2037:
		return 1
	default:
		return 2
	}
}

// formatHTML formats a summary using Telegram's HTML parse mode
func formatHTML(box *game.BoxScore) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🏀 <b>%s</b>\n", html.EscapeString(box.Matchup())))
	msg.WriteString(fmt.Sprintf("%s\n", html.EscapeString(box.Scoreline())))

	if top := box.TopPerformers(TopPerformers); len(top) > 0 {
		msg.WriteString("\n<b>Top fantasy:</b>\n")
		for i, p := range top {
			msg.WriteString(fmt.Sprintf("%d. %s (%s) <b>%s</b>\n", i+1, html.EscapeString(p.Player.Name), p.Team, p.Player.Fantasy))
		}
	}

	if box.URL != "" {
		msg.WriteString(fmt.Sprintf("\n🔗 <a href=\"%s\">Box score</a>", html.EscapeString(box.URL)))
	}

	return msg.String()
}

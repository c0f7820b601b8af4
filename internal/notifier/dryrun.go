package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/pfrederiksen/hoopscore/internal/game"
)

// DryRunNotifier prints what would be posted without posting it
type DryRunNotifier struct {
	w io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer) *DryRunNotifier {
	return &DryRunNotifier{w: w}
}

// Notify writes the tweet that would be posted
func (n *DryRunNotifier) Notify(ctx context.Context, box *game.BoxScore) error {
	tweet := formatTweet(box)
	fmt.Fprintln(n.w, "--- Summary ---")
	fmt.Fprintln(n.w, tweet)
	fmt.Fprintf(n.w, "\n(Length: %d characters)\n", tweetLength(tweet))
	return nil
}

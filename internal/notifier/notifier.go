package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/hoopscore/internal/game"
)

// Kinds accepted by New
const (
	KindDryRun   = "dry-run"
	KindTwitter  = "twitter"
	KindTelegram = "telegram"
)

// Notifier defines the interface for posting box score summaries
type Notifier interface {
	// Notify posts a summary of the given box score
	Notify(ctx context.Context, box *game.BoxScore) error
}

// New creates a notifier by kind. Credentials are read from the environment;
// dry-run output goes to w.
func New(kind string, w io.Writer) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindDryRun:
		return NewDryRunNotifier(w), nil
	case KindTwitter:
		return NewTwitterNotifier()
	case KindTelegram:
		return NewTelegramNotifier()
	default:
		return nil, fmt.Errorf("unknown notifier: %q (must be %s, %s or %s)", kind, KindDryRun, KindTwitter, KindTelegram)
	}
}

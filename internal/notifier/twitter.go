package notifier

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
)

// TwitterNotifier posts box score summaries to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	return newTwitterNotifier(config.Client(oauth1.NoContext, token)), nil
}

// newTwitterNotifier wraps an already-authenticated HTTP client
func newTwitterNotifier(httpClient *http.Client) *TwitterNotifier {
	return &TwitterNotifier{client: twitter.NewClient(httpClient)}
}

// Notify posts one tweet for the box score
func (n *TwitterNotifier) Notify(ctx context.Context, box *game.BoxScore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tweet, _, err := n.client.Statuses.Update(formatTweet(box), nil)
	if err != nil {
		return fmt.Errorf("failed to post tweet for %s: %w", box.Matchup(), err)
	}

	logger.Info("posted tweet", logger.Fields{"id": tweet.IDStr, "matchup": box.Matchup()})
	return nil
}

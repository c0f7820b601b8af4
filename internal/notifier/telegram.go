package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pfrederiksen/hoopscore/internal/game"
	"github.com/pfrederiksen/hoopscore/internal/logger"
)

const (
	telegramBaseURL = "https://api.telegram.org"
	telegramTimeout = 10 * time.Second
)

// TelegramNotifier sends box score summaries through the Telegram Bot API
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *resty.Client
}

// NewTelegramNotifier creates a Telegram notifier from TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID
func NewTelegramNotifier() (*TelegramNotifier, error) {
	return NewTelegramClient(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("TELEGRAM_CHAT_ID"), telegramBaseURL)
}

// NewTelegramClient creates a Telegram notifier against the given API base URL
func NewTelegramClient(botToken, chatID, baseURL string) (*TelegramNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(telegramTimeout)

	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client:   client,
	}, nil
}

// Notify sends the summary to the configured chat
func (n *TelegramNotifier) Notify(ctx context.Context, box *game.BoxScore) error {
	return n.SendMessage(ctx, formatHTML(box))
}

// SendMessage sends a text message to the configured chat
func (n *TelegramNotifier) SendMessage(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	payload := map[string]interface{}{
		"chat_id":                  n.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/bot%s/sendMessage", n.botToken))
	if err != nil {
		// Transport errors carry the request URL, which embeds the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("sending request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	logger.Info("sent telegram message", logger.Fields{"chat_id": n.chatID})
	return nil
}

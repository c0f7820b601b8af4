package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewTelegramClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{"valid parameters", "test-token", "12345", false},
		{"empty bot token", "", "12345", true},
		{"empty chat ID", "test-token", "", true},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTelegramClient(tt.botToken, tt.chatID, "https://example.com")
			if (err != nil) != tt.wantError {
				t.Errorf("NewTelegramClient() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestTelegramNotifier_Notify(t *testing.T) {
	var payload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("path = %q, want /bottest-token/sendMessage", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	n, err := NewTelegramClient("test-token", "12345", server.URL)
	if err != nil {
		t.Fatalf("NewTelegramClient() error = %v", err)
	}

	if err := n.Notify(context.Background(), testBoxScore()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if payload["chat_id"] != "12345" {
		t.Errorf("chat_id = %v, want 12345", payload["chat_id"])
	}
	if payload["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v, want HTML", payload["parse_mode"])
	}
	if text, _ := payload["text"].(string); !strings.Contains(text, "Victor Wembanyama") {
		t.Errorf("text = %q, want summary", text)
	}
}

func TestTelegramNotifier_Errors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantSubstr string
	}{
		{"http error", http.StatusUnauthorized, `{"ok": false}`, "status 401"},
		{"api error", http.StatusOK, `{"ok": false, "description": "chat not found"}`, "chat not found"},
		{"bad json", http.StatusOK, `not json`, "parsing response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			n, _ := NewTelegramClient("token", "1", server.URL)
			err := n.SendMessage(context.Background(), "hello")
			if err == nil || !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("SendMessage() error = %v, want containing %q", err, tt.wantSubstr)
			}
		})
	}

	n, _ := NewTelegramClient("token", "1", "https://example.com")
	if err := n.SendMessage(context.Background(), ""); err == nil {
		t.Error("SendMessage(\"\") expected error")
	}
}

func TestTelegramNotifier_TransportErrorHidesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	n, err := NewTelegramClient("123456:secret-token", "1", server.URL)
	if err != nil {
		t.Fatalf("NewTelegramClient() error = %v", err)
	}

	err = n.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("SendMessage() to closed server expected error")
	}
	if !strings.Contains(err.Error(), "sending request") {
		t.Errorf("SendMessage() error = %v, want sending request", err)
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Errorf("SendMessage() error leaks bot token: %v", err)
	}
}

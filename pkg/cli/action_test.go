package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
)

func newBotAPI(t *testing.T, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if captured != nil {
			gt.NoError(t, json.Unmarshal(body, captured))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output
	output = &buf
	t.Cleanup(func() { output = prev })
	return &buf
}

func TestCmdUnban(t *testing.T) {
	var payload map[string]any
	srv := newBotAPI(t, `{"ok":true,"result":true}`, &payload)
	buf := captureOutput(t)

	err := Run(context.Background(), []string{
		"tgdoor", "--log-format", "json", "--log-level", "error",
		"unban", "--user-id", "42",
		"--telegram-bot-token", "123:TEST",
		"--telegram-group-id", "-100",
		"--telegram-api-endpoint", srv.URL + "/bot%s/%s",
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, payload["user_id"], float64(42))
	gt.Equal(t, payload["chat_id"], float64(-100))
	gt.S(t, buf.String()).Contains(`"message": "User unbanned successfully"`)
}

func TestCmdUnbanRejected(t *testing.T) {
	srv := newBotAPI(t, `{"ok":false,"error_code":400,"description":"USER_NOT_FOUND"}`, nil)
	buf := captureOutput(t)

	err := Run(context.Background(), []string{
		"tgdoor", "--log-format", "json", "--log-level", "error",
		"unban", "--user-id", "42",
		"--telegram-bot-token", "123:TEST",
		"--telegram-api-endpoint", srv.URL + "/bot%s/%s",
	})
	gt.Error(t, err)
	gt.S(t, buf.String()).Contains("Failed to unban: USER_NOT_FOUND")
}

func TestCmdInvite(t *testing.T) {
	var payload map[string]any
	srv := newBotAPI(t, `{"ok":true,"result":{"invite_link":"https://t.me/+abc","creates_join_request":false,"is_primary":false,"is_revoked":false,"member_limit":1}}`, &payload)
	buf := captureOutput(t)

	err := Run(context.Background(), []string{
		"tgdoor", "--log-format", "json", "--log-level", "error",
		"invite",
		"--telegram-bot-token", "123:TEST",
		"--telegram-api-endpoint", srv.URL + "/bot%s/%s",
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, payload["member_limit"], float64(1))
	gt.S(t, buf.String()).Contains(`"invite_link": "https://t.me/+abc"`)
}

func TestCmdInviteRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TGDOOR_TELEGRAM_BOT_TOKEN", "")
	captureOutput(t)

	err := Run(context.Background(), []string{
		"tgdoor", "--log-format", "json", "--log-level", "error", "invite",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("telegram bot token is required")
}

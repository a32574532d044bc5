package config_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tgdoor/pkg/cli/config"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

func TestTelegramSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &config.Telegram{GroupID: "-1003798603747"}
		settings, err := cfg.Settings()
		gt.NoError(t, err).Required()

		gt.False(t, settings.HasBotToken())
		gt.Equal(t, settings.GroupID, types.ChatID(-1003798603747))
		gt.Equal(t, settings.GroupIDText, "-1003798603747")
		gt.Equal(t, settings.APIEndpoint, "https://api.telegram.org/bot%s/%s")
		gt.Equal(t, settings.Timeout, 10*time.Second)
	})

	t.Run("explicit values", func(t *testing.T) {
		cfg := &config.Telegram{
			BotToken:    "123:ABC",
			GroupID:     "-42",
			APIEndpoint: "http://localhost:8081/bot%s/%s",
			Timeout:     3 * time.Second,
		}
		settings, err := cfg.Settings()
		gt.NoError(t, err).Required()

		gt.True(t, settings.HasBotToken())
		gt.Equal(t, settings.GroupID, types.ChatID(-42))
		gt.Equal(t, settings.APIEndpoint, "http://localhost:8081/bot%s/%s")
		gt.Equal(t, settings.Timeout, 3*time.Second)
	})

	t.Run("malformed group id", func(t *testing.T) {
		cfg := &config.Telegram{GroupID: "my-group"}
		_, err := cfg.Settings()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid telegram group id")
	})
}

func TestTelegramFromEnv(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		t.Setenv(config.EnvBotToken, "123:ABC")
		t.Setenv(config.EnvGroupID, "-77")
		t.Setenv(config.EnvAPIEndpoint, "")

		cfg := config.TelegramFromEnv()
		gt.Equal(t, cfg.BotToken, "123:ABC")
		gt.Equal(t, cfg.GroupID, "-77")
	})

	t.Run("group id defaults", func(t *testing.T) {
		t.Setenv(config.EnvBotToken, "")
		t.Setenv(config.EnvGroupID, "")

		cfg := config.TelegramFromEnv()
		gt.Equal(t, cfg.GroupID, "-1003798603747")
	})
}

func TestTelegramLogValueHidesToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("config", "telegram", config.Telegram{BotToken: "123:SECRET", GroupID: "-42"})

	gt.False(t, strings.Contains(buf.String(), "SECRET"))
	gt.S(t, buf.String()).Contains(`"has_bot_token":true`)
}

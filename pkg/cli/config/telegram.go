package config

import (
	"log/slog"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
	"github.com/secmon-lab/tgdoor/pkg/service/telegram"
	"github.com/urfave/cli/v3"
)

// Environment variables understood by the serverless entry point
const (
	EnvBotToken    = "TELEGRAM_BOT_TOKEN"
	EnvGroupID     = "TELEGRAM_GROUP_ID"
	EnvAPIEndpoint = "TELEGRAM_API_ENDPOINT"
)

// Telegram holds Telegram Bot API configuration
type Telegram struct {
	BotToken    string
	GroupID     string
	APIEndpoint string
	Timeout     time.Duration
}

// Flags returns CLI flags for Telegram configuration
func (x *Telegram) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "telegram-bot-token",
			Usage:       "Telegram bot token",
			Category:    "Telegram",
			Sources:     cli.EnvVars("TGDOOR_TELEGRAM_BOT_TOKEN", EnvBotToken),
			Destination: &x.BotToken,
		},
		&cli.StringFlag{
			Name:        "telegram-group-id",
			Usage:       "ID of the managed Telegram group",
			Category:    "Telegram",
			Value:       model.DefaultGroupID,
			Sources:     cli.EnvVars("TGDOOR_TELEGRAM_GROUP_ID", EnvGroupID),
			Destination: &x.GroupID,
		},
		&cli.StringFlag{
			Name:        "telegram-api-endpoint",
			Usage:       "Bot API endpoint template, formatted with token and method",
			Category:    "Telegram",
			Value:       tgbotapi.APIEndpoint,
			Sources:     cli.EnvVars("TGDOOR_TELEGRAM_API_ENDPOINT", EnvAPIEndpoint),
			Destination: &x.APIEndpoint,
		},
		&cli.DurationFlag{
			Name:        "telegram-timeout",
			Usage:       "Timeout of a single Bot API call",
			Category:    "Telegram",
			Value:       telegram.DefaultTimeout,
			Sources:     cli.EnvVars("TGDOOR_TELEGRAM_TIMEOUT"),
			Destination: &x.Timeout,
		},
	}
}

// TelegramFromEnv reads the configuration directly from the environment, for
// runtimes that invoke the handler without the CLI
func TelegramFromEnv() *Telegram {
	x := &Telegram{
		BotToken:    os.Getenv(EnvBotToken),
		GroupID:     os.Getenv(EnvGroupID),
		APIEndpoint: os.Getenv(EnvAPIEndpoint),
	}
	if x.GroupID == "" {
		x.GroupID = model.DefaultGroupID
	}
	return x
}

// Settings validates the configuration and freezes it. A missing bot token
// is allowed (health reports it); a malformed group id is not.
func (x *Telegram) Settings() (*model.Settings, error) {
	groupID, err := types.ParseChatID(x.GroupID)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid telegram group id", goerr.V("group_id", x.GroupID))
	}

	endpoint := x.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	timeout := x.Timeout
	if timeout <= 0 {
		timeout = telegram.DefaultTimeout
	}

	return &model.Settings{
		BotToken:    x.BotToken,
		GroupID:     groupID,
		GroupIDText: x.GroupID,
		APIEndpoint: endpoint,
		Timeout:     timeout,
	}, nil
}

// Configure creates the settings and the Bot API client built from them
func (x *Telegram) Configure() (*model.Settings, *telegram.Service, error) {
	settings, err := x.Settings()
	if err != nil {
		return nil, nil, err
	}

	client := telegram.New(settings.BotToken,
		telegram.WithEndpoint(settings.APIEndpoint),
		telegram.WithTimeout(settings.Timeout),
	)
	return settings, client, nil
}

// LogValue returns structured log value
func (x Telegram) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_bot_token", x.BotToken != ""),
		slog.String("group_id", x.GroupID),
		slog.String("api_endpoint", x.APIEndpoint),
		slog.Duration("timeout", x.Timeout),
	)
}

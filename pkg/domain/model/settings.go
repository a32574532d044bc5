package model

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

const (
	// DefaultGroupID is the group managed when no group is configured
	DefaultGroupID = "-1003798603747"

	// DefaultFunctionName identifies this handler in health responses
	DefaultFunctionName = "netlify_function"
)

// Settings is the process-wide configuration. It is built once at startup
// and never modified afterwards; requests cannot override any field.
type Settings struct {
	BotToken    string
	GroupID     types.ChatID
	GroupIDText string // as configured, echoed by the health check
	APIEndpoint string // fmt template taking token and method
	Timeout     time.Duration
}

// HasBotToken reports whether a bot token is configured
func (s *Settings) HasBotToken() bool {
	return s.BotToken != ""
}

// LogValue returns structured log value without the token
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_bot_token", s.HasBotToken()),
		slog.String("group_id", s.GroupIDText),
		slog.String("api_endpoint", s.APIEndpoint),
		slog.Duration("timeout", s.Timeout),
	)
}

package interfaces

//go:generate moq -out mocks/telegram_mock.go -pkg mocks . TelegramClient

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
)

// TelegramClient calls the Telegram Bot API. Implementations return the
// decoded provider envelope and leave the interpretation of its ok flag to
// the caller; an error means the call itself failed (transport, timeout or
// an unparsable response).
type TelegramClient interface {
	UnbanChatMember(ctx context.Context, params model.UnbanParams) (*tgbotapi.APIResponse, error)
	CreateChatInviteLink(ctx context.Context, params model.InviteLinkParams) (*tgbotapi.APIResponse, error)
}

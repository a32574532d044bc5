package usecase

import (
	"context"
	"encoding/json"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/domain/interfaces"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

// Access runs the unban and invite actions against one group
type Access struct {
	client  interfaces.TelegramClient
	groupID types.ChatID
	now     func() time.Time
}

var _ interfaces.Access = (*Access)(nil)

// AccessOption configures Access
type AccessOption func(*Access)

// WithClock replaces the clock used to compute invite expiry
func WithClock(now func() time.Time) AccessOption {
	return func(a *Access) {
		a.now = now
	}
}

// NewAccess creates the access use case for groupID
func NewAccess(client interfaces.TelegramClient, groupID types.ChatID, opts ...AccessOption) *Access {
	a := &Access{
		client:  client,
		groupID: groupID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Unban lifts the ban of userID. A rejection by Telegram is reported in the
// result; only failures to complete the call are returned as errors.
func (u *Access) Unban(ctx context.Context, userID types.UserID) (*model.ActionResult, error) {
	logger := ctxlog.From(ctx)
	logger.Info("Sending unban request",
		"user_id", userID,
		"chat_id", u.groupID,
	)

	resp, err := u.client.UnbanChatMember(ctx, model.UnbanParams{
		ChatID:       u.groupID,
		UserID:       userID,
		OnlyIfBanned: false,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unban user", goerr.V("user_id", userID))
	}
	logResponse(ctx, model.MethodUnbanChatMember, resp)

	if resp.Ok {
		return &model.ActionResult{Success: true, Message: model.MessageUnbanned}, nil
	}

	desc := resp.Description
	if desc == "" {
		desc = model.MessageUnknownError
	}
	logger.Warn("Telegram API error", "method", model.MethodUnbanChatMember, "description", desc)

	return &model.ActionResult{Success: false, Message: model.MessageUnbanFailedPrefix + desc}, nil
}

// CreateInvite mints a single-use link that expires one hour from now
func (u *Access) CreateInvite(ctx context.Context) (*model.ActionResult, error) {
	params := model.NewInviteLinkParams(u.groupID, u.now())

	ctxlog.From(ctx).Info("Creating invite link",
		"chat_id", u.groupID,
		"expire_date", params.ExpireDate,
	)

	resp, err := u.client.CreateChatInviteLink(ctx, params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create invite link")
	}
	logResponse(ctx, model.MethodCreateChatInviteLink, resp)

	if !resp.Ok {
		msg := resp.Description
		if msg == "" {
			msg = model.MessageInviteFailed
		}
		ctxlog.From(ctx).Warn("Telegram API error", "method", model.MethodCreateChatInviteLink, "description", msg)
		return &model.ActionResult{Success: false, Message: msg}, nil
	}

	var link tgbotapi.ChatInviteLink
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return nil, goerr.Wrap(err, "failed to parse invite link", goerr.V("result", string(resp.Result)))
	}
	if link.InviteLink == "" {
		return nil, goerr.New("invite link missing in response", goerr.V("result", string(resp.Result)))
	}

	return &model.ActionResult{Success: true, InviteLink: link.InviteLink}, nil
}

func logResponse(ctx context.Context, method string, resp *tgbotapi.APIResponse) {
	ctxlog.From(ctx).Info("Telegram API response",
		"method", method,
		"ok", resp.Ok,
		"error_code", resp.ErrorCode,
		"description", resp.Description,
		"result", string(resp.Result),
	)
}

package model

import (
	"time"

	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

// Telegram Bot API methods used by tgdoor
const (
	MethodUnbanChatMember      = "unbanChatMember"
	MethodCreateChatInviteLink = "createChatInviteLink"
)

const (
	// InviteLinkTTL is how long a minted invite link stays valid
	InviteLinkTTL = time.Hour

	// InviteMemberLimit makes every invite link single-use
	InviteMemberLimit = 1
)

// Response messages returned to clients
const (
	MessageUnbanned          = "User unbanned successfully"
	MessageUnbanFailedPrefix = "Failed to unban: "
	MessageUnknownError      = "Unknown error"
	MessageInviteFailed      = "Failed to create invite link"
	MessageInvalidMethod     = "Invalid request method"
)

// UnbanParams is the payload of unbanChatMember
type UnbanParams struct {
	ChatID       types.ChatID `json:"chat_id"`
	UserID       types.UserID `json:"user_id"`
	OnlyIfBanned bool         `json:"only_if_banned"`
}

// InviteLinkParams is the payload of createChatInviteLink
type InviteLinkParams struct {
	ChatID      types.ChatID `json:"chat_id"`
	ExpireDate  int64        `json:"expire_date"`
	MemberLimit int          `json:"member_limit"`
}

// NewInviteLinkParams builds a single-use link request expiring InviteLinkTTL after now
func NewInviteLinkParams(chatID types.ChatID, now time.Time) InviteLinkParams {
	return InviteLinkParams{
		ChatID:      chatID,
		ExpireDate:  now.Add(InviteLinkTTL).Unix(),
		MemberLimit: InviteMemberLimit,
	}
}

// ActionResult is the body returned for every POST action. A provider
// rejection is still a result (Success false), not an error.
type ActionResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	InviteLink string `json:"invite_link,omitempty"`
}

// HealthStatus is the body returned for GET
type HealthStatus struct {
	Status          string `json:"status"`
	BotTokenPresent bool   `json:"bot_token_present"`
	GroupID         string `json:"group_id"`
	Function        string `json:"function"`
}

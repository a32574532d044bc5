package types

import "strconv"

// Action is the logical operation requested by a POST body
type Action string

const (
	ActionUnban        Action = "unban"
	ActionCreateInvite Action = "create_invite"
)

// String returns the string representation
func (a Action) String() string {
	return string(a)
}

// IsValid reports whether the action is one the handler can dispatch
func (a Action) IsValid() bool {
	switch a {
	case ActionUnban, ActionCreateInvite:
		return true
	default:
		return false
	}
}

// ChatID represents a Telegram chat (group) identifier. Supergroup IDs are negative.
type ChatID int64

// String returns the decimal representation
func (id ChatID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseChatID parses a decimal chat identifier such as "-1003798603747"
func ParseChatID(s string) (ChatID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ChatID(v), nil
}

// UserID represents a Telegram user identifier
type UserID int64

// String returns the decimal representation
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

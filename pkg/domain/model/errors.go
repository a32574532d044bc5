package model

import "github.com/m-mizutani/goerr/v2"

// Validation messages returned with 400 responses
const (
	MessageUserIDRequired = "user_id is required"
	MessageInvalidUserID  = "user_id must be an integer"
	MessageUnknownAction  = `Unknown action. Use action: "unban" or "create_invite"`
)

// Sentinel errors for request validation
var (
	ErrUserIDRequired = goerr.New(MessageUserIDRequired)
	ErrInvalidUserID  = goerr.New(MessageInvalidUserID)
)

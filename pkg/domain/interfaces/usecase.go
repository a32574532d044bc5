package interfaces

import (
	"context"

	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

// Access performs the group administration actions
type Access interface {
	// Unban lifts the ban of a user in the configured group
	Unban(ctx context.Context, userID types.UserID) (*model.ActionResult, error)

	// CreateInvite mints a single-use invite link for the configured group
	CreateInvite(ctx context.Context) (*model.ActionResult, error)
}

package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports an error that ended a request on the 500 path
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("request failed", "error", err)
}

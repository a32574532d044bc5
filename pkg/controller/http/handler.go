package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/domain/interfaces"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

// Handler answers every inbound request with exactly one terminal response
type Handler struct {
	access       interfaces.Access
	health       model.HealthStatus
	maxBodyBytes int64
}

// HandlerOption configures Handler
type HandlerOption func(*Handler)

// WithFunctionName sets the identifier reported by the health check
func WithFunctionName(name string) HandlerOption {
	return func(h *Handler) {
		if name != "" {
			h.health.Function = name
		}
	}
}

// WithMaxBodyBytes limits the size of POST bodies. Non-positive values keep the default.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler creates the request handler. The health payload is fixed at
// construction since settings never change.
func NewHandler(access interfaces.Access, settings *model.Settings, opts ...HandlerOption) *Handler {
	h := &Handler{
		access: access,
		health: model.HealthStatus{
			Status:          "healthy",
			BotTokenPresent: settings.HasBotToken(),
			GroupID:         settings.GroupIDText,
			Function:        model.DefaultFunctionName,
		},
		maxBodyBytes: 1 << 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP dispatches on the request method
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)

	case http.MethodGet:
		writeJSON(ctx, w, http.StatusOK, h.health)

	case http.MethodPost:
		rep, err := h.handlePost(r)
		if err != nil {
			writeFailure(ctx, w, err)
			return
		}
		writeJSON(ctx, w, rep.status, rep.body)

	default:
		writeJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": model.MessageInvalidMethod,
		})
	}
}

// reply is a terminal response of the POST branch. Any error returned
// alongside it takes the 500 path instead.
type reply struct {
	status int
	body   any
}

func ok(result *model.ActionResult) *reply {
	return &reply{status: http.StatusOK, body: result}
}

func badRequest(message string) *reply {
	return &reply{
		status: http.StatusBadRequest,
		body:   &model.ActionResult{Success: false, Message: message},
	}
}

func (h *Handler) handlePost(r *http.Request) (*reply, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, h.maxBodyBytes))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}

	req, err := model.DecodeActionRequest(body)
	if err != nil {
		return nil, err
	}

	action := req.Action()
	if !action.IsValid() {
		return badRequest(model.MessageUnknownAction), nil
	}

	ctx := r.Context()
	switch action {
	case types.ActionUnban:
		userID, err := req.UserID()
		switch {
		case errors.Is(err, model.ErrUserIDRequired):
			return badRequest(model.MessageUserIDRequired), nil
		case errors.Is(err, model.ErrInvalidUserID):
			ctxlog.From(ctx).Debug("Rejected user_id", "error", err)
			return badRequest(model.MessageInvalidUserID), nil
		case err != nil:
			return nil, err
		}

		result, err := h.access.Unban(ctx, userID)
		if err != nil {
			return nil, err
		}
		return ok(result), nil

	case types.ActionCreateInvite:
		result, err := h.access.CreateInvite(ctx)
		if err != nil {
			return nil, err
		}
		return ok(result), nil
	}

	return nil, goerr.New("unhandled action", goerr.V("action", action))
}

func failureBody(err error) *model.ActionResult {
	return &model.ActionResult{Success: false, Message: err.Error()}
}

// writeJSON writes a JSON response. Headers were already set by CORSMiddleware.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

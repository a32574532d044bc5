package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/domain/interfaces"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/utils/metrics"
)

// DefaultTimeout bounds every Bot API call
const DefaultTimeout = 10 * time.Second

// ErrTimeout is returned (wrapped) when the Bot API does not answer in time
var ErrTimeout = goerr.New("request timed out")

// Service calls the Telegram Bot API with JSON payloads
type Service struct {
	client   *http.Client
	token    string
	endpoint string
	timeout  time.Duration
}

var _ interfaces.TelegramClient = (*Service)(nil)

// Option configures Service
type Option func(*Service)

// WithHTTPClient replaces the HTTP client used for API calls
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithEndpoint sets the endpoint template. It is formatted with the bot
// token and the method name, like tgbotapi.APIEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Service) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// New creates a new Telegram service
func New(token string, opts ...Option) *Service {
	s := &Service{
		client:   &http.Client{},
		token:    token,
		endpoint: tgbotapi.APIEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UnbanChatMember lifts a ban in a group
func (s *Service) UnbanChatMember(ctx context.Context, params model.UnbanParams) (*tgbotapi.APIResponse, error) {
	return s.call(ctx, model.MethodUnbanChatMember, params)
}

// CreateChatInviteLink creates an additional invite link for a group
func (s *Service) CreateChatInviteLink(ctx context.Context, params model.InviteLinkParams) (*tgbotapi.APIResponse, error) {
	return s.call(ctx, model.MethodCreateChatInviteLink, params)
}

// call posts payload to method exactly once and records the outcome
func (s *Service) call(ctx context.Context, method string, payload any) (*tgbotapi.APIResponse, error) {
	resp, err := s.do(ctx, method, payload)
	switch {
	case errors.Is(err, ErrTimeout):
		metrics.ObserveBotAPICall(method, metrics.OutcomeTimeout)
	case err != nil:
		metrics.ObserveBotAPICall(method, metrics.OutcomeError)
	case !resp.Ok:
		metrics.ObserveBotAPICall(method, metrics.OutcomeRejected)
	default:
		metrics.ObserveBotAPICall(method, metrics.OutcomeOK)
	}
	return resp, err
}

// do is detached from the caller's cancellation and only bounded by the
// service timeout.
func (s *Service) do(ctx context.Context, method string, payload any) (*tgbotapi.APIResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal payload", goerr.V("method", method))
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf(s.endpoint, s.token, method), bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(redact(err), "failed to build request", goerr.V("method", method))
	}
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(data))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, callError(err, method)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, callError(err, method)
	}

	var apiResp tgbotapi.APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, goerr.Wrap(err, fmt.Sprintf("failed to parse response: %s", body),
			goerr.V("method", method),
			goerr.V("status", resp.StatusCode),
		)
	}

	return &apiResp, nil
}

func callError(err error, method string) error {
	if isTimeout(err) {
		return goerr.Wrap(ErrTimeout, "telegram API call failed", goerr.V("method", method))
	}
	return goerr.Wrap(redact(err), "telegram API call failed", goerr.V("method", method))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// redact strips the request URL, which embeds the bot token, from transport errors
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

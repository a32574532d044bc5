package model

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
)

// ActionRequest is a decoded POST body. Fields are kept raw so that a
// field of the wrong JSON type is a validation problem, not a decode error.
type ActionRequest struct {
	fields map[string]json.RawMessage
}

// DecodeActionRequest parses a POST body. An empty body is treated as {}.
// Valid JSON that is not an object ([], "x", 42, null) carries no fields.
func DecodeActionRequest(body []byte) (*ActionRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return &ActionRequest{}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to parse request body")
	}
	if body[0] != '{' {
		return &ActionRequest{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, goerr.Wrap(err, "failed to parse request body")
	}
	return &ActionRequest{fields: fields}, nil
}

// Action returns the requested action, or "" when absent or not a string
func (r *ActionRequest) Action() types.Action {
	raw, ok := r.fields["action"]
	if !ok {
		return ""
	}
	var action string
	if err := json.Unmarshal(raw, &action); err != nil {
		return ""
	}
	return types.Action(action)
}

// UserID returns user_id as an integer. Missing or falsy values (null, "",
// 0, false) yield ErrUserIDRequired; anything that is not an integral number
// or a decimal string yields ErrInvalidUserID. Numbers such as 12.0 or 1e3
// are integral.
func (r *ActionRequest) UserID() (types.UserID, error) {
	raw, ok := r.fields["user_id"]
	if !ok {
		return 0, ErrUserIDRequired
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, goerr.Wrap(ErrInvalidUserID, "failed to decode user_id")
	}

	var text string
	switch value := v.(type) {
	case nil:
		return 0, ErrUserIDRequired
	case bool:
		if !value {
			return 0, ErrUserIDRequired
		}
		return 0, goerr.Wrap(ErrInvalidUserID, "boolean user_id", goerr.V("user_id", value))
	case json.Number:
		if f, err := value.Float64(); err == nil && f == 0 {
			return 0, ErrUserIDRequired
		}
		return integralNumber(value)
	case string:
		text = strings.TrimSpace(value)
		if text == "" {
			return 0, ErrUserIDRequired
		}
	default:
		return 0, goerr.Wrap(ErrInvalidUserID, "unsupported user_id type", goerr.V("user_id", string(raw)))
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidUserID, "user_id is not an integer", goerr.V("user_id", text))
	}
	return types.UserID(id), nil
}

func integralNumber(n json.Number) (types.UserID, error) {
	if id, err := n.Int64(); err == nil {
		return types.UserID(id), nil
	}

	f, _, err := big.ParseFloat(n.String(), 10, 128, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return 0, goerr.Wrap(ErrInvalidUserID, "user_id is not an integer", goerr.V("user_id", n.String()))
	}
	id, acc := f.Int64()
	if acc != big.Exact {
		return 0, goerr.Wrap(ErrInvalidUserID, "user_id is out of range", goerr.V("user_id", n.String()))
	}
	return types.UserID(id), nil
}

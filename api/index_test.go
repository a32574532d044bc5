package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
)

// resetHandler forces the next request to rebuild the handler from the environment
func resetHandler(t *testing.T) {
	t.Helper()
	initOnce = sync.Once{}
	router = nil
	t.Cleanup(func() {
		initOnce = sync.Once{}
		router = nil
	})
}

func call(method, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api", nil)
	} else {
		req = httptest.NewRequest(method, "/api", strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	Handler(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)).Required()
	return body
}

func TestHandlerHealthFromEnv(t *testing.T) {
	resetHandler(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:TEST")
	t.Setenv("TELEGRAM_GROUP_ID", "-555")
	t.Setenv("TGDOOR_FUNCTION_NAME", "")
	t.Setenv("TGDOOR_LOG_LEVEL", "error")

	for range 2 {
		w := call(http.MethodGet, "")

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")

		body := decode(t, w)
		gt.Equal(t, body["status"], "healthy")
		gt.Equal(t, body["bot_token_present"], true)
		gt.Equal(t, body["group_id"], "-555")
		gt.Equal(t, body["function"], "netlify_function")
	}
}

func TestHandlerMalformedGroupID(t *testing.T) {
	resetHandler(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:TEST")
	t.Setenv("TELEGRAM_GROUP_ID", "not-a-number")
	t.Setenv("TGDOOR_LOG_LEVEL", "error")

	t.Run("preflight still succeeds", func(t *testing.T) {
		w := call(http.MethodOptions, "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Body.Len(), 0)
		gt.Equal(t, w.Header().Get("Access-Control-Allow-Methods"), "POST, GET, OPTIONS")
	})

	t.Run("health reports the configured group id", func(t *testing.T) {
		w := call(http.MethodGet, "")
		gt.Equal(t, w.Code, http.StatusOK)
		body := decode(t, w)
		gt.Equal(t, body["status"], "healthy")
		gt.Equal(t, body["bot_token_present"], true)
		gt.Equal(t, body["group_id"], "not-a-number")
	})

	t.Run("actions fail with the configuration error", func(t *testing.T) {
		w := call(http.MethodPost, `{"action":"create_invite"}`)
		gt.Equal(t, w.Code, http.StatusInternalServerError)
		gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")
		body := decode(t, w)
		gt.Equal(t, body["success"], false)
		gt.S(t, body["message"].(string)).Contains("invalid telegram group id")
	})

	t.Run("request validation still applies", func(t *testing.T) {
		w := call(http.MethodPost, `{"action":"unban"}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, decode(t, w)["message"], "user_id is required")
	})
}

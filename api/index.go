// Package handler is the entry point for serverless Go runtimes that invoke
// an exported http.HandlerFunc per request.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/tgdoor/pkg/cli/config"
	controller "github.com/secmon-lab/tgdoor/pkg/controller/http"
	"github.com/secmon-lab/tgdoor/pkg/domain/interfaces"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
	"github.com/secmon-lab/tgdoor/pkg/usecase"
	"github.com/secmon-lab/tgdoor/pkg/utils/logging"
)

var (
	initOnce sync.Once
	router   http.Handler
)

// unavailableAccess fails every action with the configuration error, so a
// misconfigured deployment still answers preflight and health requests.
type unavailableAccess struct {
	err error
}

func (x *unavailableAccess) Unban(ctx context.Context, userID types.UserID) (*model.ActionResult, error) {
	return nil, x.err
}

func (x *unavailableAccess) CreateInvite(ctx context.Context) (*model.ActionResult, error) {
	return nil, x.err
}

func setup() {
	format, err := logging.ParseFormat(os.Getenv("TGDOOR_LOG_FORMAT"))
	if err != nil {
		format = logging.FormatJSON
	}
	logger := logging.NewLogger(logging.ParseLogLevel(os.Getenv("TGDOOR_LOG_LEVEL")), os.Stderr, format)
	slog.SetDefault(logger)
	ctx := ctxlog.With(context.Background(), logger)

	functionName := os.Getenv("TGDOOR_FUNCTION_NAME")
	if functionName == "" {
		functionName = model.DefaultFunctionName
	}

	var access interfaces.Access
	telegramCfg := config.TelegramFromEnv()
	settings, client, err := telegramCfg.Configure()
	if err != nil {
		logger.Error("failed to initialize handler", "error", err)
		settings = &model.Settings{
			BotToken:    telegramCfg.BotToken,
			GroupIDText: telegramCfg.GroupID,
		}
		access = &unavailableAccess{err: err}
	} else {
		access = usecase.NewAccess(client, settings.GroupID)
		logger.Info("handler initialized", "telegram", telegramCfg)
	}

	handler := controller.NewHandler(access, settings, controller.WithFunctionName(functionName))
	router = controller.NewRouter(ctx, handler)
}

// Handler serves one request. Configuration is read from the environment on
// the first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(setup)
	router.ServeHTTP(w, r)
}

package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/cli/config"
	controller "github.com/secmon-lab/tgdoor/pkg/controller/http"
	"github.com/secmon-lab/tgdoor/pkg/usecase"
	"github.com/secmon-lab/tgdoor/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		telegramCfg config.Telegram
	)

	flags := joinFlags(
		serverCfg.Flags(),
		telegramCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tgdoor server",
				slog.Any("server", serverCfg),
				slog.Any("telegram", telegramCfg),
			)

			settings, client, err := telegramCfg.Configure()
			if err != nil {
				return err
			}
			if !settings.HasBotToken() {
				logger.Warn("Telegram bot token is not configured; every Bot API call will be rejected")
			}

			accessUC := usecase.NewAccess(client, settings.GroupID)
			handler := controller.NewHandler(accessUC, settings,
				controller.WithFunctionName(serverCfg.FunctionName),
				controller.WithMaxBodyBytes(serverCfg.MaxBodyBytes),
			)
			server := controller.NewServer(ctx, serverCfg.Addr, handler)

			errCh := make(chan error, 2)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
				}
			}()

			if serverCfg.MetricsAddr != "" {
				metricsServer := &http.Server{
					Addr:              serverCfg.MetricsAddr,
					Handler:           metrics.Handler(),
					ReadHeaderTimeout: 15 * time.Second,
				}
				defer metricsServer.Close()

				go func() {
					logger.Info("Metrics server starting", slog.String("addr", serverCfg.MetricsAddr))
					if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						errCh <- goerr.Wrap(err, "metrics server failed", goerr.V("addr", serverCfg.MetricsAddr))
					}
				}()
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tgdoor/pkg/cli/config"
	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/secmon-lab/tgdoor/pkg/domain/types"
	"github.com/secmon-lab/tgdoor/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// output is where one-shot commands print their result. Replaced in tests.
var output io.Writer = os.Stdout

func cmdUnban() *cli.Command {
	var (
		telegramCfg config.Telegram
		userID      int64
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.Int64Flag{
				Name:        "user-id",
				Usage:       "Telegram user id to unban",
				Required:    true,
				Destination: &userID,
			},
		},
		telegramCfg.Flags(),
	)

	return &cli.Command{
		Name:  "unban",
		Usage: "Lift a user's ban from the group",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if userID == 0 {
				return goerr.Wrap(model.ErrUserIDRequired, "invalid --user-id")
			}

			accessUC, err := newAccess(&telegramCfg)
			if err != nil {
				return err
			}

			result, err := accessUC.Unban(ctx, types.UserID(userID))
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func cmdInvite() *cli.Command {
	var telegramCfg config.Telegram

	return &cli.Command{
		Name:  "invite",
		Usage: "Create a single-use invite link valid for one hour",
		Flags: telegramCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			accessUC, err := newAccess(&telegramCfg)
			if err != nil {
				return err
			}

			result, err := accessUC.CreateInvite(ctx)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func newAccess(cfg *config.Telegram) (*usecase.Access, error) {
	settings, client, err := cfg.Configure()
	if err != nil {
		return nil, err
	}
	if !settings.HasBotToken() {
		return nil, goerr.New("telegram bot token is required, set --telegram-bot-token or TELEGRAM_BOT_TOKEN")
	}
	return usecase.NewAccess(client, settings.GroupID), nil
}

func printResult(result *model.ActionResult) error {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return goerr.Wrap(err, "failed to print result")
	}
	if !result.Success {
		return goerr.New("action was rejected by Telegram", goerr.V("message", result.Message))
	}
	return nil
}

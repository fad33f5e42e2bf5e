package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"listbase/internal/bot"
)

func newBotCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the catalog as a Telegram bot",
		Long:  "Serve the catalog as a Telegram bot. Every chat user gets their own bookmarks, history and notification state. Requires TELEGRAM_BOT_TOKEN.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.cfg.ValidateBot(); err != nil {
				return err
			}
			log := rt.log

			botHandler, err := bot.NewHandler(rt.cfg.TelegramBotToken, rt.manager, log)
			if err != nil {
				return fmt.Errorf("failed to initialize Telegram bot handler: %w", err)
			}

			// Create context that listens for interrupt signals
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go botHandler.Start(ctx)

			log.Info("listbase bot is running. Press Ctrl+C to exit.")
			<-ctx.Done()

			log.Info("Shutting down listbase bot...")
			return nil
		},
	}
}

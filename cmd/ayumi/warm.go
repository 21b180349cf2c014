package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/pkg/logger"
)

func newWarmCommand(opts *rootOptions) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Generate and store today's dashboard if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntimeConfig(opts)
			if err != nil {
				return err
			}
			defer logger.Sync() // best effort
			return warm(cmd.Context(), cfg, wait)
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 2*time.Minute, "how long to wait for generation to finish")
	return cmd
}

// warm generates today's dashboard in the foreground when nothing is stored
// yet. Generation failures are returned so the command exits non-zero.
func warm(ctx context.Context, cfg *app.Config, wait time.Duration) (err error) {
	log := logger.WithModule("warm")

	stack, err := bootstrapRuntime(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), wait)
		defer cancel()
		err = multierr.Append(err, stack.Shutdown(shutdownCtx, log))
	}()

	dayKey := stack.Dashboard.CurrentDayKey()
	stored, err := stack.Dashboard.Stored(ctx, dayKey)
	if err != nil {
		return fmt.Errorf("warm dashboard: %w", err)
	}
	if stored {
		log.Info("dashboard already stored", zap.String("day_key", dayKey))
		return nil
	}

	genCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	if err := stack.Trigger.GenerateAndStore(genCtx, dayKey); err != nil {
		return fmt.Errorf("warm dashboard %s: %w", dayKey, err)
	}

	log.Info("dashboard generation finished", zap.String("day_key", dayKey))
	return nil
}

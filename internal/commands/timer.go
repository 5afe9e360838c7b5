package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/balkashynov/zentime/internal/app"
	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/metrics"
	"github.com/balkashynov/zentime/internal/tui"
)

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, closer, err := app.NewLogger(cfg.LogFile, verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Path != "" {
		logger.Info("Loaded config", logfields.Path(cfg.Path))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := tui.RunOptions{Config: cfg, Logger: logger}

	if cfg.MetricsAddr != "" {
		reg := prom.NewRegistry()
		srv, err := metrics.Listen(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		opts.Registry = reg

		metricsCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := srv.Serve(metricsCtx); err != nil {
				logger.Error("Metrics endpoint failed", logfields.Error(err))
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	noUI, _ := cmd.Flags().GetBool("no-ui")
	if noUI {
		return tui.RunLineMode(ctx, opts, os.Stdin, os.Stdout)
	}

	if err := tui.RunTimerTUI(ctx, opts); err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"rescueops/internal/components"
	"rescueops/internal/config"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load(parent)
	if err != nil {
		components.SetupLogger("local").Error("load config failed", slog.Any("error", err))
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(parent)
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", slog.Any("error", err))
		return err
	}

	ctx, stop := context.WithCancel(appCtx)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", slog.Any("error", err))
		}
		logger.Info("http server stopped")
	}()

	if comps.Relay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Relay.Run(ctx)
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", slog.String("signal", sig.String()))
	case <-parent.Done():
	}
	stop()

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-care-assistant/internal/platform/config"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/router"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:           "pet-care-assistant",
		Short:         "Pet feeder assistant API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configDir)
		},
	}
	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory containing config.yaml (default ./configs and .)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configDir)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "generate-meals",
		Short: "Regenerate the meal plan once and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateMeals(cmd.Context(), configDir)
		},
	})

	return cmd
}

type app struct {
	cfg      config.Config
	log      logger.Logger
	backends *router.Backends
}

func bootstrap(ctx context.Context, configDir string) (*app, error) {
	var paths []string
	if configDir != "" {
		paths = []string{configDir}
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	b, err := router.OpenBackends(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &app{cfg: cfg, log: log, backends: b}, nil
}

func (a *app) close() {
	if err := a.backends.Close(); err != nil {
		a.log.Warn("closing backends", map[string]any{"error": err.Error()})
	}
	_ = a.log.Sync()
}

func (a *app) routerOptions() router.Options {
	return router.Options{
		Logger:       a.log,
		KV:           a.backends.KV,
		DB:           a.backends.DB,
		StoreTimeout: a.cfg.Store.Timeout,
	}
}

func serve(ctx context.Context, configDir string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, configDir)
	if err != nil {
		return err
	}
	defer a.close()

	srv := newServer(a.cfg, router.NewRouter(a.routerOptions()), a.log)
	return srv.Run(ctx)
}

func generateMeals(ctx context.Context, configDir string) error {
	a, err := bootstrap(ctx, configDir)
	if err != nil {
		return err
	}
	defer a.close()

	svcs := router.NewServices(a.routerOptions())
	rep, err := svcs.Meals.Generate(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

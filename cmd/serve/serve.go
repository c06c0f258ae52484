// Package serve runs the HTTP API.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/huntlog/huntlog/internal/api"
	"github.com/huntlog/huntlog/internal/app"
	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/observability"
	"github.com/huntlog/huntlog/internal/telemetry"
)

// Command creates the serve command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the journal HTTP API",
		Long:  "Serve the JSON API and, when telemetry is enabled, the prometheus metrics endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), settings)
		},
	}

	if err := setupFlags(cmd); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	return cmd
}

// setupFlags configures flags specific to the serve command.
func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("listen", conf.DefaultListen, "Listen address of the API")
	cmd.Flags().Bool("telemetry", false, "Enable the prometheus metrics endpoint")
	cmd.Flags().String("metrics-listen", "", "Separate listen address for /metrics")
	cmd.Flags().Bool("allow-registration", false, "Allow anonymous self-registration")

	bindings := map[string]string{
		"webserver.listen":           "listen",
		"telemetry.enabled":          "telemetry",
		"telemetry.listen":           "metrics-listen",
		"security.allowregistration": "allow-registration",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	return nil
}

// Run serves until ctx is cancelled or the process receives SIGINT or SIGTERM.
func Run(ctx context.Context, settings *conf.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
		}
	}()

	log := a.Log("main")

	reporter, err := telemetry.Initialize(settings, a.Log("telemetry"))
	if err != nil {
		log.Warn("error reporting disabled", logger.Error(err))
	} else {
		defer reporter.Flush()
	}

	if admin := settings.Security.Admin; admin.Username != "" {
		acct, created, err := a.Journal.EnsureAdmin(ctx, admin.Username, admin.Password)
		if err != nil {
			return fmt.Errorf("failed to bootstrap administrator: %w", err)
		}
		if created {
			log.Info("administrator account created", logger.String("username", acct.Username))
		}
	}

	opts := []api.Option{
		api.WithHealthCheck(a.Store),
		api.WithAccessLogger(a.Log("access")),
	}

	g, gctx := errgroup.WithContext(ctx)

	if a.Metrics != nil {
		opts = append(opts, api.WithHTTPMetrics(a.Metrics.HTTP))
		if settings.Telemetry.Listen != "" {
			endpoint, err := observability.NewEndpoint(settings, a.Metrics, a.Log("telemetry"))
			if err != nil {
				return err
			}
			g.Go(func() error { return endpoint.Run(gctx) })
		} else {
			opts = append(opts, api.WithMetricsHandler(a.Metrics.Handler()))
		}
	}

	server := api.NewServer(settings, a.Journal, a.Log("api"), opts...)
	g.Go(func() error { return server.Run(gctx) })

	log.Info("huntlog started",
		logger.String("version", settings.Version),
		logger.String("listen", settings.WebServer.Listen),
		logger.String("database", string(a.Store.Dialect())))

	err = g.Wait()
	log.Info("huntlog stopped")
	return err
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/signalsfoundry/hexsphere/internal/config"
	"github.com/signalsfoundry/hexsphere/internal/gridapi"
	"github.com/signalsfoundry/hexsphere/internal/logging"
	"github.com/signalsfoundry/hexsphere/internal/observability"
)

func main() {
	addr := flag.String("addr", "", "TCP address the HTTP API listens on (overrides configuration)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load("gridd")
	if err != nil {
		logging.NewFromEnv().Error(ctx, "failed to load configuration", logging.Err(err))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}

	apiCollector, err := observability.NewAPICollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise API metrics collector", logging.Err(err))
		os.Exit(1)
	}
	engineCollector, err := observability.NewEngineCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise engine metrics collector", logging.Err(err))
		os.Exit(1)
	}

	app := gridapi.NewServer(cfg, log, apiCollector, engineCollector).App()

	go func() {
		log.Info(ctx, "starting grid API server", logging.String("addr", cfg.Server.Addr))
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Error(ctx, "server exited", logging.Err(err))
			os.Exit(1)
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down grid API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error(ctx, "forced shutdown", logging.Err(err))
	}

	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
	log.Info(ctx, "server stopped")
}

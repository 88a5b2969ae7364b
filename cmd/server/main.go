// Command server runs the Trail Tail content engine: deterministic
// generators for routes, narratives, AR encounters, safety, and family
// progress behind an HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"trailtail/internal/audit"
	"trailtail/internal/encounters"
	encountershandler "trailtail/internal/encounters/handler"
	encountersmetrics "trailtail/internal/encounters/metrics"
	"trailtail/internal/family"
	familyhandler "trailtail/internal/family/handler"
	familymetrics "trailtail/internal/family/metrics"
	"trailtail/internal/narratives"
	narrativeshandler "trailtail/internal/narratives/handler"
	narrativesmetrics "trailtail/internal/narratives/metrics"
	narrativesstore "trailtail/internal/narratives/store"
	"trailtail/internal/platform/config"
	"trailtail/internal/platform/httpserver"
	"trailtail/internal/platform/logger"
	platformmetrics "trailtail/internal/platform/metrics"
	platformredis "trailtail/internal/platform/redis"
	"trailtail/internal/registry"
	"trailtail/internal/routes"
	routeshandler "trailtail/internal/routes/handler"
	routesmetrics "trailtail/internal/routes/metrics"
	"trailtail/internal/safety"
	safetyhandler "trailtail/internal/safety/handler"
	safetymetrics "trailtail/internal/safety/metrics"
	safetystore "trailtail/internal/safety/store"
	transporthttp "trailtail/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var controlsStore safety.ControlsStore = safetystore.NewInMemoryControlsStore()
	var historyStore narratives.HistoryStore = narrativesstore.NewInMemoryHistoryStore()
	if redisClient != nil {
		controlsStore = safetystore.NewRedisControlsStore(redisClient.Client)
		historyStore = narrativesstore.NewRedisHistoryStore(redisClient.Client)
		log.Info("redis-backed stores enabled")
	}

	auditStore := audit.NewMemoryStore()
	auditPublisher := audit.NewPublisher(cfg.Audit.BufferSize, log)
	auditWorker := audit.NewWorker(auditStore, auditPublisher.Inbox(), log)

	safetyService, err := safety.New(controlsStore, log,
		safety.WithAuditPublisher(auditPublisher),
		safety.WithMetrics(safetymetrics.New()),
	)
	if err != nil {
		return fmt.Errorf("build safety service: %w", err)
	}
	narrativesService, err := narratives.New(historyStore, log,
		narratives.WithMetrics(narrativesmetrics.New()),
	)
	if err != nil {
		return fmt.Errorf("build narratives service: %w", err)
	}
	routesService := routes.New(log, routes.WithMetrics(routesmetrics.New()))
	encountersService := encounters.New(log, encounters.WithMetrics(encountersmetrics.New()))
	familyService := family.New(log, family.WithMetrics(familymetrics.New()))

	reg := registry.New()
	for capability, instance := range map[registry.Capability]any{
		registry.CapabilityRoutes:     routesService,
		registry.CapabilityNarratives: narrativesService,
		registry.CapabilityEncounters: encountersService,
		registry.CapabilitySafety:     safetyService,
		registry.CapabilityFamily:     familyService,
	} {
		if err := reg.Register(capability, instance); err != nil {
			return err
		}
	}

	handlers, err := buildHandlers(reg, log)
	if err != nil {
		return err
	}

	router := transporthttp.NewRouter(transporthttp.RouterConfig{
		Logger:      log,
		Metrics:     platformmetrics.New(),
		CORSOrigins: cfg.CORSOrigins,
		Health: func() error {
			if redisClient == nil {
				return nil
			}
			return redisClient.Health(context.Background())
		},
		Handlers: handlers,
	})

	server := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		if err := auditWorker.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildHandlers resolves each domain generator through the registry and
// wraps it in its HTTP handler, so the transport layer never touches a
// concrete service type.
func buildHandlers(reg *registry.Registry, log *slog.Logger) ([]transporthttp.Registrar, error) {
	routesSvc, err := registry.Resolve[routeshandler.Service](reg, registry.CapabilityRoutes)
	if err != nil {
		return nil, err
	}
	narrativesSvc, err := registry.Resolve[narrativeshandler.Service](reg, registry.CapabilityNarratives)
	if err != nil {
		return nil, err
	}
	encountersSvc, err := registry.Resolve[encountershandler.Service](reg, registry.CapabilityEncounters)
	if err != nil {
		return nil, err
	}
	safetySvc, err := registry.Resolve[safetyhandler.Service](reg, registry.CapabilitySafety)
	if err != nil {
		return nil, err
	}
	familySvc, err := registry.Resolve[familyhandler.Service](reg, registry.CapabilityFamily)
	if err != nil {
		return nil, err
	}

	return []transporthttp.Registrar{
		routeshandler.New(routesSvc, log),
		narrativeshandler.New(narrativesSvc, log),
		encountershandler.New(encountersSvc, log),
		safetyhandler.New(safetySvc, log),
		familyhandler.New(familySvc, log),
	}, nil
}

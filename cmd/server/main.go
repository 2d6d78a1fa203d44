package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	engstore "talentdeck/internal/engagement/store"
	msgstore "talentdeck/internal/messaging/store"
	pipestore "talentdeck/internal/pipeline/store"
	"talentdeck/internal/platform/config"
	"talentdeck/internal/platform/httpserver"
	"talentdeck/internal/platform/logger"
	prostore "talentdeck/internal/prospect/store"
	"talentdeck/internal/seeder"
	"talentdeck/internal/snapshot/cache"
	snaphandler "talentdeck/internal/snapshot/handler"
	snapmetrics "talentdeck/internal/snapshot/metrics"
	"talentdeck/internal/snapshot/service"
	httptransport "talentdeck/internal/transport/http"
	wsstore "talentdeck/internal/workspace/store"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	if path := os.Getenv("TALENTDECK_CONFIG"); path != "" {
		loaded, err := config.FromFile(path)
		if err != nil {
			logger.New().Error("failed to load config file", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	log := logger.New()

	log.Info("initializing talentdeck",
		"addr", cfg.Addr,
		"snapshot_ttl", cfg.SnapshotTTL.String(),
		"sqlite", cfg.SQLitePath != "",
	)

	workspaces := wsstore.NewInMemory()
	pipeline := pipestore.NewInMemory()
	messaging := msgstore.NewInMemory()
	engagements := engstore.NewInMemory()
	prospects := prostore.NewInMemory()

	seeder.Seed(seeder.Stores{
		Workspaces:  workspaces,
		Pipeline:    pipeline,
		Messaging:   messaging,
		Engagements: engagements,
		Prospects:   prospects,
	}, time.Now())

	stores := service.Stores{
		Workspaces:   workspaces,
		Applications: pipeline,
		Projects:     pipeline,
		Stages:       pipeline,
		Items:        pipeline,
		Messaging:    messaging,
		Engagements:  engagements,
		Prospects:    prospects,
	}

	if cfg.SQLitePath != "" {
		core, err := wsstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Error("failed to open sqlite store", "path", cfg.SQLitePath, "error", err)
			os.Exit(1)
		}
		defer core.Close()

		ctx := context.Background()
		seeded, err := workspaces.ListEligible(ctx)
		if err == nil {
			for _, w := range seeded {
				if err := core.Save(ctx, w); err != nil {
					log.Error("failed to persist workspace", "workspace_id", w.ID, "error", err)
					os.Exit(1)
				}
			}
		}
		stores.Workspaces = wsstore.NewLayered(core, workspaces)

		stages, err := pipestore.NewSQLiteStages(core.DB())
		if err != nil {
			log.Error("failed to initialize sqlite stage store", "error", err)
			os.Exit(1)
		}
		stores.Stages = stages
	}

	svc := service.New(stores, cache.New(),
		service.WithLogger(log),
		service.WithMetrics(snapmetrics.New()),
		service.WithConfig(service.Config{
			SnapshotTTL:         cfg.SnapshotTTL,
			DefaultLookbackDays: cfg.DefaultLookbackDays,
			MinLookbackDays:     cfg.MinLookbackDays,
			MaxLookbackDays:     cfg.MaxLookbackDays,
		}),
	)

	handler := snaphandler.New(svc, log)
	router := httptransport.NewRouter(cfg, handler, log)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

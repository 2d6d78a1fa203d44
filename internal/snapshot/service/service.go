// Package service implements the snapshot orchestrator: it resolves the
// target workspace, fans out to the repositories, invokes the section
// builders, and composes the final dashboard snapshot, going through the
// TTL-bounded single-flight cache.
package service

import (
	"context"
	"log/slog"
	"time"

	"talentdeck/internal/snapshot/cache"
	snapmetrics "talentdeck/internal/snapshot/metrics"
	"talentdeck/internal/snapshot/models"
	"talentdeck/internal/platform/tracer"
	"talentdeck/internal/workspace/resolver"
	dErrors "talentdeck/pkg/domain-errors"
	"talentdeck/pkg/numeric"
)

const cacheNamespace = "dashboard-snapshot"

// Config bounds the snapshot build.
type Config struct {
	SnapshotTTL         time.Duration
	DefaultLookbackDays int
	MinLookbackDays     int
	MaxLookbackDays     int
}

// DefaultConfig returns the production bounds: 45 second TTL, lookback
// clamped into [7, 120] days with a 30 day default.
func DefaultConfig() Config {
	return Config{
		SnapshotTTL:         45 * time.Second,
		DefaultLookbackDays: 30,
		MinLookbackDays:     7,
		MaxLookbackDays:     120,
	}
}

// Service is the snapshot engine's entry point.
type Service struct {
	stores   Stores
	resolver *resolver.Resolver
	cache    *cache.Cache
	cfg      Config
	logger   *slog.Logger
	metrics  *snapmetrics.Metrics
	tracer   tracer.Tracer
	now      func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics injects prometheus instrumentation.
func WithMetrics(m *snapmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer injects a tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithConfig overrides the default bounds.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithClock injects a clock, used by tests for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates the snapshot service.
func New(stores Stores, snapshotCache *cache.Cache, opts ...Option) *Service {
	s := &Service{
		stores:   stores,
		resolver: resolver.New(stores.Workspaces),
		cache:    snapshotCache,
		cfg:      DefaultConfig(),
		logger:   slog.Default(),
		tracer:   tracer.NewNoop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSnapshotQuery is the caller's request: both fields are optional.
type GetSnapshotQuery struct {
	WorkspaceID  *int64
	LookbackDays *int
}

// GetDashboardSnapshot returns the cached snapshot for the resolved
// (workspace, lookback) pair, computing it on a cache miss. Concurrent
// callers for the same pair share one computation.
func (s *Service) GetDashboardSnapshot(ctx context.Context, query GetSnapshotQuery) (*models.DashboardSnapshot, error) {
	workspace, err := s.resolver.Resolve(ctx, query.WorkspaceID)
	if err != nil {
		return nil, err
	}

	lookbackDays := s.cfg.DefaultLookbackDays
	if query.LookbackDays != nil {
		lookbackDays = *query.LookbackDays
	}
	lookbackDays = numeric.ClampInt(lookbackDays, s.cfg.MinLookbackDays, s.cfg.MaxLookbackDays)

	key := cache.Key(cacheNamespace, workspace.ID, lookbackDays)
	value, hit, err := s.cache.Remember(ctx, key, s.cfg.SnapshotTTL, func(ctx context.Context) (any, error) {
		return s.buildSnapshot(ctx, workspace, lookbackDays)
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		if hit {
			s.metrics.IncrementCacheHit()
		} else {
			s.metrics.IncrementCacheMiss()
		}
	}

	snapshot, ok := value.(*models.DashboardSnapshot)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInternal, "unexpected cache value type")
	}
	return snapshot, nil
}

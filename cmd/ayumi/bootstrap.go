package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/api"
	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/app/maintenance"
	"github.com/charlesng35/ayumi/internal/cache"
	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/middleware"
	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/internal/monitoring/checks"
	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/logger"
)

const probeTimeout = 2 * time.Second

// runtimeStack bundles long-lived services used by the HTTP server and the
// one-shot commands.
type runtimeStack struct {
	DB         *gorm.DB
	Redis      *cache.RedisClient
	Generator  generation.Generator
	Trigger    *dashboard.Trigger
	Dispatcher *dashboard.Dispatcher
	Dashboard  *dashboard.Service
	Scheduler  *maintenance.Scheduler
	Monitoring *monitoring.Module
	Router     *gin.Engine
}

// bootstrapRuntime initialises the database, caches, generator, services and
// the HTTP router. On failure everything started so far is released.
func bootstrapRuntime(ctx context.Context, cfg *app.Config, log *zap.Logger) (*runtimeStack, error) {
	stack := &runtimeStack{}
	success := false
	defer func() {
		if !success {
			_ = stack.Shutdown(context.Background(), log)
		}
	}()

	if debug, _ := os.LookupEnv("GIN_DEBUG"); debug != "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	var err error
	stack.DB, err = initialiseDatabase(cfg, true)
	if err != nil {
		return nil, err
	}
	dbStore := cache.NewDatabaseStore(stack.DB)

	if cfg.Cache.Redis.Enabled {
		if stack.Redis, err = cache.NewRedisClient(ctx, cfg.Cache.RedisClientConfig()); err != nil {
			log.Warn("redis unavailable; falling back to database-backed operations", zap.Error(err))
			stack.Redis = nil
		} else {
			log.Info("redis connected", zap.String("addr", cfg.Cache.Redis.Address))
		}
	}

	stack.Monitoring, err = monitoring.NewModule(monitoring.Options{})
	if err != nil {
		return nil, fmt.Errorf("initialise monitoring: %w", err)
	}
	monitoring.SetModule(stack.Monitoring)

	gen, err := generation.New(cfg.Generation.GeneratorConfig())
	if err != nil {
		return nil, fmt.Errorf("initialise generator: %w", err)
	}
	stack.Generator = generation.Instrument(gen)
	if stack.Generator.Name() == generation.ProviderStatic {
		log.Warn("no generation provider configured; serving fallback content")
	} else {
		log.Info("generation provider selected", zap.String("provider", stack.Generator.Name()))
	}

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		return nil, err
	}

	var repo dashboard.Repository
	repo, err = dashboard.NewGormRepository(stack.DB)
	if err != nil {
		return nil, err
	}
	if stack.Redis != nil {
		repo = dashboard.NewCachedRepository(repo, stack.Redis, cfg.Dashboard.CacheTTL)
	}

	stack.Trigger, err = dashboard.NewTrigger(stack.Generator, repo,
		dashboard.WithTriggerLocation(loc),
		dashboard.WithGenerationTimeout(cfg.Generation.EffectiveTimeout()),
	)
	if err != nil {
		return nil, err
	}
	stack.Dispatcher = dashboard.NewDispatcher(stack.Trigger, cfg.Dashboard.DispatcherConfig())

	stack.Dashboard, err = dashboard.NewService(repo, stack.Dispatcher,
		dashboard.WithLocation(loc),
		dashboard.WithLookupTimeout(cfg.Dashboard.LookupTimeout),
	)
	if err != nil {
		return nil, err
	}

	deps, err := buildServices(cfg, stack.DB, stack.Generator)
	if err != nil {
		return nil, err
	}
	deps.Config = cfg
	deps.DB = stack.DB
	deps.Dashboard = stack.Dashboard
	deps.Monitoring = stack.Monitoring
	deps.Provider = stack.Generator.Name()

	if stack.Redis != nil {
		deps.RateStore = middleware.NewStoreRateStore(stack.Redis)
	} else {
		deps.RateStore = middleware.NewStoreRateStore(dbStore)
	}

	var purger cache.Purger
	if cfg.Maintenance.Enabled {
		purger = dbStore
	}
	stack.Scheduler = maintenance.NewScheduler(stack.Dashboard, purger,
		maintenance.WithLocation(loc),
		maintenance.WithWarmSchedule(cfg.Dashboard.WarmSchedule),
		maintenance.WithPurgeSchedule(cfg.Maintenance.PurgeSchedule),
	)

	registerHealthChecks(stack, cfg)

	stack.Router, err = api.NewRouter(deps)
	if err != nil {
		return nil, fmt.Errorf("build api router: %w", err)
	}

	success = true
	return stack, nil
}

func buildServices(cfg *app.Config, db *gorm.DB, gen generation.Generator) (api.Dependencies, error) {
	cat := catalog.Default()
	timeout := cfg.Generation.EffectiveTimeout()

	deps := api.Dependencies{Catalog: cat}
	var err error
	if deps.Scripture, err = services.NewScriptureService(gen, cat,
		services.WithScriptureTimeout(timeout),
		services.WithChapterCacheSize(cfg.Scripture.ChapterCacheSize),
	); err != nil {
		return deps, fmt.Errorf("initialise scripture service: %w", err)
	}
	if deps.Devotional, err = services.NewDevotionalService(gen, timeout); err != nil {
		return deps, fmt.Errorf("initialise devotional service: %w", err)
	}
	if deps.Highlights, err = services.NewHighlightService(db, cat); err != nil {
		return deps, fmt.Errorf("initialise highlight service: %w", err)
	}
	if deps.Journal, err = services.NewJournalService(db); err != nil {
		return deps, fmt.Errorf("initialise journal service: %w", err)
	}
	if deps.Settings, err = services.NewSettingsService(db); err != nil {
		return deps, fmt.Errorf("initialise settings service: %w", err)
	}
	if deps.Status, err = services.NewStatusService(db); err != nil {
		return deps, fmt.Errorf("initialise status service: %w", err)
	}
	return deps, nil
}

func registerHealthChecks(stack *runtimeStack, cfg *app.Config) {
	health := stack.Monitoring.Health()
	health.RegisterLiveness(checks.Database(stack.DB, probeTimeout))

	health.RegisterReadiness(checks.Database(stack.DB, probeTimeout))
	var pinger checks.RedisPinger
	if stack.Redis != nil {
		pinger = stack.Redis
	}
	health.RegisterReadiness(checks.Redis(pinger, cfg.Cache.Redis.Enabled, probeTimeout))
	health.RegisterReadiness(checks.Generator(stack.Generator))
	if stack.Scheduler != nil && stack.Scheduler.Enabled() {
		health.RegisterReadiness(checks.Maintenance(0))
	}
}

// Shutdown stops intake, drains queued generation jobs until ctx expires and
// releases connections.
func (s *runtimeStack) Shutdown(ctx context.Context, log *zap.Logger) error {
	if s == nil {
		return nil
	}

	var errs error
	if s.Scheduler != nil {
		<-s.Scheduler.Stop().Done()
	}
	if s.Dispatcher != nil {
		if err := s.Dispatcher.Shutdown(ctx); err != nil {
			log.Warn("dashboard dispatcher did not drain", zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("drain dispatcher: %w", err))
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Warn("redis shutdown", zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	if s.DB != nil {
		if err := database.Close(s.DB); err != nil {
			log.Warn("failed to close database", zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func initialiseDatabase(cfg *app.Config, migrate bool) (*gorm.DB, error) {
	dbCfg := cfg.Database.ConnectionConfig()
	db, err := database.Open(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if migrate {
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("auto-migrate database: %w", err)
		}
	}

	logger.WithModule("database").Info("database connected",
		zap.String("driver", strings.ToLower(strings.TrimSpace(dbCfg.Driver))))
	return db, nil
}

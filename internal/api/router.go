package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/internal/handlers"
	"github.com/charlesng35/ayumi/internal/middleware"
	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/internal/services"
)

// Dependencies lists everything the router wires into handlers.
type Dependencies struct {
	Config     *app.Config
	DB         *gorm.DB
	Catalog    *catalog.Catalog
	Dashboard  *dashboard.Service
	Scripture  *services.ScriptureService
	Devotional *services.DevotionalService
	Highlights *services.HighlightService
	Journal    *services.JournalService
	Settings   *services.SettingsService
	Status     *services.StatusService
	Monitoring *monitoring.Module
	RateStore  middleware.RateStore
	// Provider names the active generation backend on the info endpoint.
	Provider string
}

func (d Dependencies) validate() error {
	switch {
	case d.Config == nil:
		return fmt.Errorf("config must be provided")
	case d.DB == nil:
		return fmt.Errorf("database handle must be provided")
	case d.Dashboard == nil:
		return fmt.Errorf("dashboard service must be provided")
	case d.Scripture == nil || d.Devotional == nil:
		return fmt.Errorf("generation services must be provided")
	case d.Highlights == nil || d.Journal == nil || d.Settings == nil || d.Status == nil:
		return fmt.Errorf("user data services must be provided")
	}
	return nil
}

// NewRouter builds the Gin engine, wires middleware and registers every route.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	cfg := deps.Config

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(deps.RateStore, cfg.RateLimit.Requests, cfg.RateLimit.Window))

	registerHealthRoutes(r, cfg, deps.Monitoring)
	registerMetricsRoute(r, cfg, deps.Monitoring)

	api := r.Group("/api")
	api.GET("/", handlers.Info(deps.Provider))

	generationLimit := middleware.NewGenerationLimiter(cfg.RateLimit.GenerationPerMinute, cfg.RateLimit.GenerationBurst).Middleware()

	registerDashboardRoutes(api, handlers.NewDashboardHandler(deps.Dashboard))
	registerBibleRoutes(api, handlers.NewBibleHandler(deps.Catalog, deps.Scripture), generationLimit)
	registerCatalogRoutes(api, handlers.NewCatalogHandler(deps.Catalog))
	registerDevotionalRoutes(api, handlers.NewDevotionalHandler(deps.Devotional), generationLimit)
	registerHighlightRoutes(api, handlers.NewHighlightHandler(deps.Highlights))
	registerJournalRoutes(api, handlers.NewJournalHandler(deps.Journal))
	registerSettingsRoutes(api, handlers.NewSettingsHandler(deps.Settings))
	registerStatusRoutes(api, handlers.NewStatusHandler(deps.Status))
	registerMonitoringRoutes(api, handlers.NewMonitoringHandler(deps.Monitoring, cfg))

	r.NoRoute(middleware.NotFoundHandler)
	r.NoMethod(middleware.MethodNotAllowedHandler)

	return r, nil
}

func registerMetricsRoute(r *gin.Engine, cfg *app.Config, mon *monitoring.Module) {
	if !cfg.Monitoring.Prometheus.Enabled || mon == nil {
		return
	}
	endpoint := strings.TrimSpace(cfg.Monitoring.Prometheus.Endpoint)
	if endpoint == "" {
		endpoint = "/metrics"
	}
	r.GET(endpoint, gin.WrapH(mon.Handler()))
}

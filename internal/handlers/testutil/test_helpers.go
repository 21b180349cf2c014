package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/api"
	"github.com/charlesng35/ayumi/internal/app"
	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/dashboard"
	sharedtestutil "github.com/charlesng35/ayumi/internal/database/testutil"
	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/middleware"
	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/internal/monitoring/checks"
	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/response"
)

// Generator answers prompts containing a registered marker; other prompts
// fail with generation.ErrGenerationDisabled.
type Generator struct {
	mu      sync.Mutex
	replies map[string]string
	calls   atomic.Int32
}

// On registers reply for prompts containing marker.
func (g *Generator) On(marker, reply string) *Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replies[marker] = reply
	return g
}

// Calls reports how many prompts were received.
func (g *Generator) Calls() int {
	return int(g.calls.Load())
}

func (g *Generator) Generate(_ context.Context, prompt string, _ ...generation.CallOption) (string, error) {
	g.calls.Add(1)
	g.mu.Lock()
	defer g.mu.Unlock()
	for marker, reply := range g.replies {
		if strings.Contains(prompt, marker) {
			return reply, nil
		}
	}
	return "", generation.ErrGenerationDisabled
}

func (g *Generator) Name() string { return "scripted" }

// Env encapsulates a fully-wired API instance backed by an in-memory database for handler tests.
type Env struct {
	T          *testing.T
	DB         *gorm.DB
	Router     *gin.Engine
	Config     *app.Config
	Generator  *Generator
	Clock      clockwork.FakeClock
	Dispatcher *dashboard.Dispatcher
	Repository dashboard.Repository
	Module     *monitoring.Module
}

// EnvOption adjusts the configuration before the router is built.
type EnvOption func(*app.Config)

// WithConfig mutates the default test configuration.
func WithConfig(fn func(*app.Config)) EnvOption {
	return func(cfg *app.Config) { fn(cfg) }
}

// DefaultNow is the initial time of the fake clock.
var DefaultNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// NewEnv provisions a fresh handler test environment with migrations applied.
func NewEnv(t *testing.T, opts ...EnvOption) *Env {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &app.Config{
		Monitoring: app.MonitoringConfig{
			Prometheus: app.PrometheusConfig{Enabled: true, Endpoint: "/metrics"},
			Health:     app.HealthConfig{Enabled: true},
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	db := sharedtestutil.MustOpenTestDB(t, sharedtestutil.WithAutoMigrate())
	gen := &Generator{replies: map[string]string{}}
	clock := clockwork.NewFakeClockAt(DefaultNow)
	cat := catalog.Default()

	repo, err := dashboard.NewGormRepository(db)
	require.NoError(t, err)
	trigger, err := dashboard.NewTrigger(gen, repo,
		dashboard.WithTriggerClock(clock),
		dashboard.WithGenerationTimeout(2*time.Second),
	)
	require.NoError(t, err)
	dispatcher := dashboard.NewDispatcher(trigger, dashboard.DispatcherConfig{Workers: 1, QueueSize: 4})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Shutdown(ctx)
	})
	dash, err := dashboard.NewService(repo, dispatcher, dashboard.WithClock(clock))
	require.NoError(t, err)

	scripture, err := services.NewScriptureService(gen, cat, services.WithScriptureTimeout(2*time.Second))
	require.NoError(t, err)
	devotional, err := services.NewDevotionalService(gen, 2*time.Second)
	require.NoError(t, err)
	highlights, err := services.NewHighlightService(db, cat)
	require.NoError(t, err)
	journal, err := services.NewJournalService(db)
	require.NoError(t, err)
	settings, err := services.NewSettingsService(db)
	require.NoError(t, err)
	status, err := services.NewStatusService(db)
	require.NoError(t, err)

	module, err := monitoring.NewModule(monitoring.Options{ExcludeDefaultGatherer: true})
	require.NoError(t, err)
	module.Health().RegisterLiveness(checks.Database(db, time.Second))
	module.Health().RegisterReadiness(checks.Database(db, time.Second))
	module.Health().RegisterReadiness(checks.Generator(gen))

	router, err := api.NewRouter(api.Dependencies{
		Config:     cfg,
		DB:         db,
		Catalog:    cat,
		Dashboard:  dash,
		Scripture:  scripture,
		Devotional: devotional,
		Highlights: highlights,
		Journal:    journal,
		Settings:   settings,
		Status:     status,
		Monitoring: module,
		RateStore:  middleware.NewMemoryRateStore(),
		Provider:   gen.Name(),
	})
	require.NoError(t, err)

	return &Env{
		T:          t,
		DB:         db,
		Router:     router,
		Config:     cfg,
		Generator:  gen,
		Clock:      clock,
		Dispatcher: dispatcher,
		Repository: repo,
		Module:     module,
	}
}

// APIResponse represents the canonical API envelope returned by handlers.
type APIResponse struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.Meta      `json:"meta"`
}

// DecodeResponse parses the standard API response object from a recorder.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// DecodeInto unmarshals the data payload into the provided destination.
func DecodeInto[T any](t *testing.T, raw json.RawMessage, dest *T) {
	t.Helper()
	if dest == nil {
		t.Fatal("destination must not be nil")
	}
	require.NoError(t, json.Unmarshal(raw, dest))
}

// Request executes an HTTP request against the test router, JSON encoding body when present.
func (e *Env) Request(method, path string, body any) *httptest.ResponseRecorder {
	e.T.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(e.T, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// WaitForStored blocks until content for dayKey has been stored.
func (e *Env) WaitForStored(dayKey string) {
	e.T.Helper()
	require.Eventually(e.T, func() bool {
		_, found, err := e.Repository.Find(context.Background(), dayKey)
		return err == nil && found
	}, 5*time.Second, 10*time.Millisecond)
}

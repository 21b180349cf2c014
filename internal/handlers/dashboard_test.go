package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/internal/handlers"
	"github.com/charlesng35/ayumi/internal/handlers/testutil"
)

func generatedDashboard(t *testing.T, verseText string) string {
	t.Helper()
	content := dashboard.Fallback(testutil.DefaultNow)
	content.Verse.Text = verseText
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return string(raw)
}

func TestDashboard_FallbackThenCache(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Generator.On("Generate a comprehensive daily devotional dashboard", generatedDashboard(t, "Generated for June 1"))

	first := env.Request(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "fallback", first.Header().Get(handlers.HeaderContentSource))
	require.Equal(t, "2025-06-01", first.Header().Get(handlers.HeaderDayKey))
	require.Equal(t, "no-store", first.Header().Get("Cache-Control"))

	var fallback dashboard.Content
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &fallback))
	require.NotEqual(t, "Generated for June 1", fallback.Verse.Text)
	require.NotEmpty(t, fallback.Date)

	env.WaitForStored("2025-06-01")

	second := env.Request(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "cache", second.Header().Get(handlers.HeaderContentSource))

	var cached dashboard.Content
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &cached))
	require.Equal(t, "Generated for June 1", cached.Verse.Text)

	third := env.Request(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, second.Body.Bytes(), third.Body.Bytes())
}

func TestDashboard_NewDayServesFallback(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Generator.On("Generate a comprehensive daily devotional dashboard", generatedDashboard(t, "Stored"))

	env.Request(http.MethodGet, "/api/dashboard", nil)
	env.WaitForStored("2025-06-01")

	env.Clock.Advance(24 * time.Hour)

	w := env.Request(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "fallback", w.Header().Get(handlers.HeaderContentSource))
	require.Equal(t, "2025-06-02", w.Header().Get(handlers.HeaderDayKey))
}

func TestDashboard_GeneratorDownStillResponds(t *testing.T) {
	env := testutil.NewEnv(t)

	for i := 0; i < 3; i++ {
		w := env.Request(http.MethodGet, "/api/dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "fallback", w.Header().Get(handlers.HeaderContentSource))
	}
}

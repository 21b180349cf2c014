package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/handlers/testutil"
	"github.com/charlesng35/ayumi/internal/services"
)

func TestDevotional_FallbackWhenGenerationFails(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodPost, "/api/devotional/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	require.Equal(t, string(services.SourceFallback), resp.Meta.Source)

	var devotional services.Devotional
	testutil.DecodeInto(t, resp.Data, &devotional)
	require.NotEmpty(t, devotional.Title)
}

func TestDevotional_Generated(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Generator.On("Generate a deep devotional content", `{
  "title": "Rest for the Weary",
  "scripture": {"reference": "Matthew 11:28", "text": "Come to me, all who labor"},
  "reflection": "Jesus invites the tired.",
  "prayer": "Lord, give me rest.",
  "stepOfFaith": "Take one hour of Sabbath today.",
  "tags": [" rest ", "grace"]
}`)

	w := env.Request(http.MethodPost, "/api/devotional/generate", map[string]any{"topic": "rest"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	require.Equal(t, string(services.SourceGenerated), resp.Meta.Source)

	var devotional services.Devotional
	testutil.DecodeInto(t, resp.Data, &devotional)
	require.Equal(t, "Rest for the Weary", devotional.Title)
	require.Equal(t, []string{"rest", "grace"}, devotional.Tags)
}

func TestPrayer_Prompts(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Generator.On("Based on this Bible verse:", `["Thank God", "Confess", "Ask", "Extra"]`)

	w := env.Request(http.MethodPost, "/api/prayer/prompts", map[string]any{"verse": "John 3:16"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	require.Equal(t, string(services.SourceGenerated), resp.Meta.Source)

	var data struct {
		Prompts []string `json:"prompts"`
	}
	testutil.DecodeInto(t, resp.Data, &data)
	require.Equal(t, []string{"Thank God", "Confess", "Ask"}, data.Prompts)

	w = env.Request(http.MethodPost, "/api/prayer/prompts", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrayer_Generate(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodPost, "/api/prayer/generate", map[string]any{"prayer_type": "thanksgiving"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	require.Equal(t, string(services.SourceFallback), resp.Meta.Source)

	env.Generator.On("Write a short, heartfelt", "Thank you, Lord.")
	w = env.Request(http.MethodPost, "/api/prayer/generate", map[string]any{"prayer_type": "thanksgiving"})
	resp = testutil.DecodeResponse(t, w)
	require.Equal(t, string(services.SourceGenerated), resp.Meta.Source)

	var data struct {
		Prayer string `json:"prayer"`
	}
	testutil.DecodeInto(t, resp.Data, &data)
	require.Equal(t, "Thank you, Lord.", data.Prayer)
}

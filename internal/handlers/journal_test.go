package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/handlers/testutil"
	"github.com/charlesng35/ayumi/internal/models"
)

func TestJournal_CRUD(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodPost, "/api/journal", map[string]any{
		"user_id":          "user-1",
		"title":            "Morning",
		"content":          "Grateful today.",
		"tags":             []string{"gratitude", "morning"},
		"linked_scripture": "Psalm 118:24",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry models.JournalEntry
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &entry)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, []string{"gratitude", "morning"}, []string(entry.Tags))
	require.False(t, entry.Date.IsZero())

	w = env.Request(http.MethodGet, "/api/journal/entry/"+entry.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.Request(http.MethodPut, "/api/journal/entry/"+entry.ID, map[string]any{"content": "Still grateful."})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.JournalEntry
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &updated)
	require.Equal(t, "Still grateful.", updated.Content)
	require.Equal(t, "Morning", updated.Title)

	w = env.Request(http.MethodGet, "/api/journal/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	var list struct {
		Entries []models.JournalEntry `json:"entries"`
	}
	testutil.DecodeInto(t, resp.Data, &list)
	require.Len(t, list.Entries, 1)
	require.Equal(t, 1, resp.Meta.Total)

	w = env.Request(http.MethodDelete, "/api/journal/entry/"+entry.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.Request(http.MethodGet, "/api/journal/entry/"+entry.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "journal.not_found", testutil.DecodeResponse(t, w).Error.Code)
}

func TestJournal_RequiresContent(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodPost, "/api/journal", map[string]any{"user_id": "user-1"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.Request(http.MethodPut, "/api/journal/entry/missing", map[string]any{"content": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

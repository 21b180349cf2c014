package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseModelBeforeCreateGeneratesID(t *testing.T) {
	var base BaseModel
	require.NoError(t, base.BeforeCreate(nil))
	require.NotEmpty(t, base.ID)

	keep := BaseModel{ID: "fixed"}
	require.NoError(t, keep.BeforeCreate(nil))
	require.Equal(t, "fixed", keep.ID)
}

func TestEmbeddedModelsUseBaseBeforeCreate(t *testing.T) {
	cases := []struct {
		name  string
		model func() *BaseModel
	}{
		{"daily_content", func() *BaseModel { return &(&DailyContent{}).BaseModel }},
		{"highlight", func() *BaseModel { return &(&Highlight{}).BaseModel }},
		{"journal_entry", func() *BaseModel { return &(&JournalEntry{}).BaseModel }},
		{"user_settings", func() *BaseModel { return &(&UserSettings{}).BaseModel }},
		{"status_check", func() *BaseModel { return &(&StatusCheck{}).BaseModel }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := tc.model()
			require.NoError(t, base.BeforeCreate(nil))
			require.NotEmpty(t, base.ID)
		})
	}
}

func TestCacheEntryExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.False(t, CacheEntry{}.Expired(now))
	require.False(t, CacheEntry{ExpiresAt: now.Add(time.Second)}.Expired(now))
	require.True(t, CacheEntry{ExpiresAt: now}.Expired(now))
}

func TestJournalEntryNormalise(t *testing.T) {
	entry := JournalEntry{
		Title:   "  Morning  ",
		Content: "\tGrace upon grace\n",
		Tags:    []string{"Faith", " faith", "", "Hope"},
	}

	entry.Normalise()

	require.Equal(t, "Morning", entry.Title)
	require.Equal(t, "Grace upon grace", entry.Content)
	require.Equal(t, []string{"faith", "hope"}, []string(entry.Tags))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/validator"
)

func TestSettingsService_GetCreatesDefaults(t *testing.T) {
	svc := must(NewSettingsService(openDB(t)))
	ctx := context.Background()

	first, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "ESV", first.DefaultBibleVersion)
	require.Equal(t, "system", first.DefaultFont)
	require.Equal(t, 16, first.FontSize)
	require.Equal(t, "light", first.Theme)
	require.True(t, first.DailyReminder)
	require.Equal(t, "08:00", first.ReminderTime)
	require.Equal(t, "en", first.Language)

	second, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	_, err = svc.Get(ctx, " ")
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSettingsService_UpdateUpsertsAndKeepsExtra(t *testing.T) {
	svc := must(NewSettingsService(openDB(t)))
	ctx := context.Background()

	updated, err := svc.Update(ctx, "user-2", map[string]any{
		"theme":        "dark",
		"font_size":    float64(18),
		"user_id":      "spoofed",
		"show_numbers": true,
		"reading_plan": "mcheyne",
	})
	require.NoError(t, err)
	require.Equal(t, "user-2", updated.UserID)
	require.Equal(t, "dark", updated.Theme)
	require.Equal(t, 18, updated.FontSize)
	require.Equal(t, "ESV", updated.DefaultBibleVersion)
	require.Equal(t, true, updated.Extra["show_numbers"])

	again, err := svc.Update(ctx, "user-2", map[string]any{"reminder_time": "06:30", "reading_plan": "chronological"})
	require.NoError(t, err)
	require.Equal(t, updated.ID, again.ID)
	require.Equal(t, "dark", again.Theme)
	require.Equal(t, "06:30", again.ReminderTime)
	require.Equal(t, "chronological", again.Extra["reading_plan"])
	require.Equal(t, true, again.Extra["show_numbers"])

	stored, err := svc.Get(ctx, "user-2")
	require.NoError(t, err)
	require.Equal(t, "06:30", stored.ReminderTime)
	require.Equal(t, "chronological", stored.Extra["reading_plan"])
}

func TestSettingsService_UpdateRejectsBadValues(t *testing.T) {
	svc := must(NewSettingsService(openDB(t)))
	ctx := context.Background()

	_, err := svc.Update(ctx, "u", map[string]any{"reminder_time": "25:99"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "reminder_time", verrs[0].Field)

	_, err = svc.Update(ctx, "u", map[string]any{"font_size": "huge"})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

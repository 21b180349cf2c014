package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/pkg/validator"
)

func TestFallbackIsCompleteAndStamped(t *testing.T) {
	now := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)

	content := Fallback(now)

	require.NoError(t, validator.ValidateStruct(content))
	require.Equal(t, "2025-06-01T07:30:00Z", content.Date)
	require.Equal(t, "2 Corinthians 5:7", content.Verse.Reference)
	require.Equal(t, "Immutable", content.Attribute.Attribute)
}

func TestFallbackCopiesDoNotShareState(t *testing.T) {
	first := Fallback(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	first.Verse.CrossReferences[0] = "mutated"
	first.Theme.SupportingVerses = append(first.Theme.SupportingVerses[:0], "gone")
	first.Devotional.Title = "mutated"

	second := Fallback(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "Hebrews 11:1", second.Verse.CrossReferences[0])
	require.Equal(t, []string{"Psalm 89:1", "1 Thessalonians 5:24", "Deuteronomy 7:9"}, second.Theme.SupportingVerses)
	require.Equal(t, "Walking by Faith", second.Devotional.Title)
	require.Empty(t, fallbackTemplate.Date)
}

func TestFallbackPayloadUsesWireNames(t *testing.T) {
	payload := FallbackPayload(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &raw))
	for _, key := range []string{"date", "verse", "passage", "devotional", "questions", "prayer", "theme", "attribute", "gospel", "history"} {
		require.Contains(t, raw, key)
	}
	require.Contains(t, string(raw["verse"]), `"crossReferences"`)
	require.Contains(t, string(raw["history"]), `"timeline"`)
}

func TestDayKeyUsesLocation(t *testing.T) {
	instant := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	tokyo, err := LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	require.Equal(t, "2025-06-01", DayKey(instant, nil))
	require.Equal(t, "2025-06-02", DayKey(instant, tokyo))

	utc, err := LoadLocation("")
	require.NoError(t, err)
	require.Equal(t, time.UTC, utc)

	_, err = LoadLocation("Mars/Olympus")
	require.Error(t, err)
}

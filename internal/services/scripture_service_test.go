package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/catalog"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
)

const psalm117 = "```json\n" + `[
  {"book": "Psalm", "chapter": 117, "verse": 1, "text": "Praise the LORD, all nations!"},
  {"book": "Psalm", "chapter": 117, "verse": 2, "text": "For great is his steadfast love toward us"},
  {"book": "Psalm", "chapter": 117, "verse": 0, "text": "heading"}
]` + "\n```"

const psalm117Context = `{"outline": ["Call to praise", "Reason for praise"], "author": "Unknown", "historicalSetting": "Hallel psalm", "purpose": "Worship", "crossReferences": ["Romans 15:11", " "]}`

func TestScriptureService_ChapterCachesSuccess(t *testing.T) {
	gen := newScriptedGenerator().on("Provide the complete text of Psalm chapter 117 in ESV", psalm117)
	svc := must(NewScriptureService(gen, catalog.Default()))
	ctx := context.Background()

	verses, version, err := svc.Chapter(ctx, "Psalm", 117, "esv")
	require.NoError(t, err)
	require.Equal(t, "ESV", version)
	require.Len(t, verses, 2)
	require.Equal(t, "ESV", verses[0].Version)
	require.Equal(t, 117, verses[1].Chapter)

	verses[0].Text = "mutated"
	again, _, err := svc.Chapter(ctx, "psalm", 117, "")
	require.NoError(t, err)
	require.Equal(t, "Praise the LORD, all nations!", again[0].Text)
	require.EqualValues(t, 1, gen.calls.Load())
}

func TestScriptureService_ChapterFailureIsEmpty(t *testing.T) {
	gen := newScriptedGenerator()
	svc := must(NewScriptureService(gen, catalog.Default()))
	ctx := context.Background()

	verses, _, err := svc.Chapter(ctx, "John", 3, "KJV")
	require.NoError(t, err)
	require.NotNil(t, verses)
	require.Empty(t, verses)

	// failures are not cached
	_, _, _ = svc.Chapter(ctx, "John", 3, "KJV")
	require.EqualValues(t, 2, gen.calls.Load())
}

func TestScriptureService_RejectsInvalidInput(t *testing.T) {
	svc := must(NewScriptureService(newScriptedGenerator(), catalog.Default()))
	ctx := context.Background()

	_, _, err := svc.Chapter(ctx, "", 1, "ESV")
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	_, _, err = svc.Chapter(ctx, "John", 0, "ESV")
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	_, _, err = svc.Chapter(ctx, "John", 1, "NOPE")
	require.ErrorIs(t, err, apperrors.ErrVersionNotFound)
}

func TestScriptureService_ConcurrentRequestsShareGeneration(t *testing.T) {
	gen := newScriptedGenerator().on("Provide the complete text of Psalm chapter 117", psalm117)
	gen.block = make(chan struct{})
	svc := must(NewScriptureService(gen, catalog.Default()))

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			verses, _, err := svc.Chapter(context.Background(), "Psalm", 117, "ESV")
			if err == nil {
				results[i] = len(verses)
			}
		}(i)
	}

	require.Eventually(t, func() bool { return gen.calls.Load() >= 1 }, timeout, tick)
	close(gen.block)
	wg.Wait()

	for _, n := range results {
		require.Equal(t, 2, n)
	}
	require.LessOrEqual(t, gen.calls.Load(), int32(len(results)))
}

func TestScriptureService_CancelledCallerDoesNotFailOthers(t *testing.T) {
	gen := newScriptedGenerator().on("Provide the complete text of Psalm chapter 117", psalm117)
	gen.block = make(chan struct{})
	svc := must(NewScriptureService(gen, catalog.Default()))

	leaving, leave := context.WithCancel(context.Background())
	first := make(chan []Verse, 1)
	go func() {
		verses, _, _ := svc.Chapter(leaving, "Psalm", 117, "ESV")
		first <- verses
	}()
	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, timeout, tick)

	second := make(chan []Verse, 1)
	go func() {
		verses, _, _ := svc.Chapter(context.Background(), "Psalm", 117, "ESV")
		second <- verses
	}()

	leave()
	require.Empty(t, <-first)

	close(gen.block)
	require.Len(t, <-second, 2)
	require.Equal(t, int32(1), gen.calls.Load())

	// the shared result was cached for later readers
	verses, _, err := svc.Chapter(context.Background(), "Psalm", 117, "ESV")
	require.NoError(t, err)
	require.Len(t, verses, 2)
	require.Equal(t, int32(1), gen.calls.Load())
}

func TestScriptureService_Read(t *testing.T) {
	gen := newScriptedGenerator().
		on("Provide the complete text of Psalm chapter 117", psalm117).
		on("Provide deep scholarly context for Psalm chapter 117", psalm117Context)
	svc := must(NewScriptureService(gen, catalog.Default()))

	reading, err := svc.Read(context.Background(), "Psalm", 117, "")
	require.NoError(t, err)
	require.Equal(t, "ESV", reading.Version)
	require.Len(t, reading.Verses, 2)
	require.NotNil(t, reading.Context)
	require.Equal(t, "Psalm 117", reading.Context.Reference)
	require.Equal(t, []string{"Romans 15:11"}, reading.Context.CrossReferences)
}

func TestScriptureService_ReadDegrades(t *testing.T) {
	svc := must(NewScriptureService(newScriptedGenerator(), catalog.Default()))

	reading, err := svc.Read(context.Background(), "Psalm", 117, "")
	require.NoError(t, err)
	require.Empty(t, reading.Verses)
	require.NotNil(t, reading.Verses)
	require.Nil(t, reading.Context)
}

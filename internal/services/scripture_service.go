package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/generation"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/logger"
)

const (
	chapterMaxTokens = 4096
	contextMaxTokens = 1024

	defaultChapterCacheSize = 256
)

// Verse is one verse of generated chapter text.
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Version string `json:"version"`
}

// ChapterContext is background material for a chapter.
type ChapterContext struct {
	Reference         string   `json:"reference"`
	Outline           []string `json:"outline"`
	Author            string   `json:"author"`
	HistoricalSetting string   `json:"historicalSetting"`
	Purpose           string   `json:"purpose"`
	CrossReferences   []string `json:"crossReferences"`
}

// ChapterReading bundles a chapter with its context. Verses is empty and
// Context nil when generation is unavailable.
type ChapterReading struct {
	Book    string          `json:"book"`
	Chapter int             `json:"chapter"`
	Version string          `json:"version"`
	Verses  []Verse         `json:"verses"`
	Context *ChapterContext `json:"context"`
}

// VersionResolver resolves a translation by abbreviation or id.
type VersionResolver interface {
	VersionByAbbreviation(abbreviation string) (catalog.BibleVersion, bool)
}

// ScriptureService produces chapter text through the text generator. Successful
// chapters are kept in an LRU cache and concurrent requests for the same
// chapter share one generation call.
type ScriptureService struct {
	gen      generation.Generator
	versions VersionResolver
	timeout  time.Duration
	chapters *lru.Cache[string, []Verse]
	flight   singleflight.Group
	log      *zap.Logger
}

// ScriptureOption customises a ScriptureService.
type ScriptureOption func(*scriptureOptions)

type scriptureOptions struct {
	timeout   time.Duration
	cacheSize int
}

// WithScriptureTimeout bounds each generation call.
func WithScriptureTimeout(d time.Duration) ScriptureOption {
	return func(o *scriptureOptions) { o.timeout = d }
}

// WithChapterCacheSize sets how many chapters stay cached.
func WithChapterCacheSize(n int) ScriptureOption {
	return func(o *scriptureOptions) { o.cacheSize = n }
}

func NewScriptureService(gen generation.Generator, versions VersionResolver, opts ...ScriptureOption) (*ScriptureService, error) {
	if gen == nil {
		return nil, errors.New("scripture service: generator is required")
	}
	if versions == nil {
		return nil, errors.New("scripture service: version resolver is required")
	}

	options := scriptureOptions{timeout: defaultGenerationTimeout, cacheSize: defaultChapterCacheSize}
	for _, opt := range opts {
		opt(&options)
	}
	if options.cacheSize <= 0 {
		options.cacheSize = defaultChapterCacheSize
	}

	cache, err := lru.New[string, []Verse](options.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("scripture service: chapter cache: %w", err)
	}

	return &ScriptureService{
		gen:      gen,
		versions: versions,
		timeout:  options.timeout,
		chapters: cache,
		log:      logger.WithModule("scripture"),
	}, nil
}

// ResolveVersion maps a requested version to its canonical abbreviation.
// An empty request selects ESV.
func (s *ScriptureService) ResolveVersion(requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = DefaultBibleVersion
	}
	version, ok := s.versions.VersionByAbbreviation(requested)
	if !ok {
		return "", apperrors.ErrVersionNotFound
	}
	return version.Abbreviation, nil
}

// Chapter returns the verses of a chapter. A generation failure yields an
// empty slice rather than an error; only invalid input is an error.
func (s *ScriptureService) Chapter(ctx context.Context, book string, chapter int, version string) ([]Verse, string, error) {
	book, err := validateChapterRef(book, chapter)
	if err != nil {
		return nil, "", err
	}
	version, err = s.ResolveVersion(version)
	if err != nil {
		return nil, "", err
	}

	key := chapterKey(book, chapter, version)
	if verses, ok := s.chapters.Get(key); ok {
		return cloneVerses(verses), version, nil
	}

	// The shared call outlives any single caller; generateJSON bounds it with s.timeout.
	flightCtx := context.WithoutCancel(ctx)
	pending := s.flight.DoChan(key, func() (any, error) {
		verses, err := s.generateChapter(flightCtx, book, chapter, version)
		if err == nil {
			s.chapters.Add(key, verses)
		}
		return verses, err
	})

	var result any
	select {
	case res := <-pending:
		result, err = res.Val, res.Err
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		s.log.Warn("chapter generation failed",
			zap.String("book", book),
			zap.Int("chapter", chapter),
			zap.String("version", version),
			zap.Error(err),
		)
		return []Verse{}, version, nil
	}

	return cloneVerses(result.([]Verse)), version, nil
}

// Context returns background material for a chapter, or nil when generation
// fails.
func (s *ScriptureService) Context(ctx context.Context, book string, chapter int) (*ChapterContext, error) {
	book, err := validateChapterRef(book, chapter)
	if err != nil {
		return nil, err
	}

	var out ChapterContext
	err = generateJSON(ctx, s.gen, s.timeout, chapterContextPrompt(book, chapter), &out,
		generation.WithKind("chapter_context"), generation.WithMaxTokens(contextMaxTokens))
	if err != nil {
		s.log.Warn("chapter context generation failed",
			zap.String("book", book),
			zap.Int("chapter", chapter),
			zap.Error(err),
		)
		return nil, nil
	}
	if out.Reference == "" {
		out.Reference = fmt.Sprintf("%s %d", book, chapter)
	}
	out.Outline = trimmedStrings(out.Outline)
	out.CrossReferences = trimmedStrings(out.CrossReferences)
	return &out, nil
}

// Read fetches chapter text and context concurrently.
func (s *ScriptureService) Read(ctx context.Context, book string, chapter int, version string) (*ChapterReading, error) {
	book, err := validateChapterRef(book, chapter)
	if err != nil {
		return nil, err
	}
	version, err = s.ResolveVersion(version)
	if err != nil {
		return nil, err
	}

	reading := &ChapterReading{Book: book, Chapter: chapter, Version: version}
	var wg conc.WaitGroup
	wg.Go(func() {
		reading.Verses, _, _ = s.Chapter(ctx, book, chapter, version)
	})
	wg.Go(func() {
		reading.Context, _ = s.Context(ctx, book, chapter)
	})
	wg.Wait()

	if reading.Verses == nil {
		reading.Verses = []Verse{}
	}
	return reading, nil
}

func (s *ScriptureService) generateChapter(ctx context.Context, book string, chapter int, version string) ([]Verse, error) {
	var raw []Verse
	err := generateJSON(ctx, s.gen, s.timeout, chapterPrompt(book, chapter, version), &raw,
		generation.WithKind("chapter"), generation.WithMaxTokens(chapterMaxTokens))
	if err != nil {
		return nil, err
	}

	verses := make([]Verse, 0, len(raw))
	for _, v := range raw {
		text := strings.TrimSpace(v.Text)
		if v.Verse <= 0 || text == "" {
			continue
		}
		verses = append(verses, Verse{Book: book, Chapter: chapter, Verse: v.Verse, Text: text, Version: version})
	}
	if len(verses) == 0 {
		return nil, generation.ErrEmptyResponse
	}
	return verses, nil
}

func validateChapterRef(book string, chapter int) (string, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return "", apperrors.NewBadRequest("book is required")
	}
	if chapter < 1 || chapter > 150 {
		return "", apperrors.NewBadRequest("chapter must be between 1 and 150")
	}
	return book, nil
}

func chapterKey(book string, chapter int, version string) string {
	return fmt.Sprintf("%s|%d|%s", strings.ToLower(book), chapter, version)
}

func cloneVerses(verses []Verse) []Verse {
	return append([]Verse(nil), verses...)
}

func chapterPrompt(book string, chapter int, version string) string {
	return fmt.Sprintf(`Provide the complete text of %[1]s chapter %[2]d in %[3]s translation.

Return a JSON array where each object represents one verse:
[
  {
    "book": "%[1]s",
    "chapter": %[2]d,
    "verse": 1,
    "text": "exact verse text"
  },
  ...
]

Provide ALL verses in the chapter with exact biblical text.`, book, chapter, version)
}

func chapterContextPrompt(book string, chapter int) string {
	return fmt.Sprintf(`Provide deep scholarly context for %[1]s chapter %[2]d.

Return JSON with this structure:
{
  "reference": "%[1]s %[2]d",
  "outline": ["main section 1", "main section 2", "main section 3"],
  "author": "biblical author",
  "historicalSetting": "historical context",
  "purpose": "purpose of this passage",
  "crossReferences": ["related passage 1", "related passage 2"]
}`, book, chapter)
}

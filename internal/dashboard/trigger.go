package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/generation"
	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/pkg/logger"
	"github.com/charlesng35/ayumi/pkg/validator"
)

var (
	// ErrGenerationFailed covers every way a background generation attempt can fail.
	ErrGenerationFailed = errors.New("dashboard: generation failed")
	// ErrMalformedOutput marks model output that is not a complete Content document.
	ErrMalformedOutput = errors.New("dashboard: malformed generator output")
)

const (
	defaultGenerationTimeout = 90 * time.Second
	dashboardMaxTokens       = 4096
)

// Trigger generates one day's content and stores it.
type Trigger struct {
	generator generation.Generator
	repo      Repository
	clock     Clock
	loc       *time.Location
	timeout   time.Duration
	log       *zap.Logger
}

// TriggerOption customises a Trigger.
type TriggerOption func(*Trigger)

// WithTriggerClock overrides the clock used to stamp generated content.
func WithTriggerClock(clock Clock) TriggerOption {
	return func(t *Trigger) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithTriggerLocation sets the timezone of the date stamp.
func WithTriggerLocation(loc *time.Location) TriggerOption {
	return func(t *Trigger) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithGenerationTimeout bounds each generator call.
func WithGenerationTimeout(timeout time.Duration) TriggerOption {
	return func(t *Trigger) {
		if timeout > 0 {
			t.timeout = timeout
		}
	}
}

// NewTrigger constructs a Trigger.
func NewTrigger(generator generation.Generator, repo Repository, opts ...TriggerOption) (*Trigger, error) {
	if generator == nil {
		return nil, errors.New("dashboard trigger: generator is required")
	}
	if repo == nil {
		return nil, errors.New("dashboard trigger: repository is required")
	}

	trigger := &Trigger{
		generator: generator,
		repo:      repo,
		clock:     SystemClock(),
		loc:       time.UTC,
		timeout:   defaultGenerationTimeout,
		log:       logger.WithModule("dashboard.trigger"),
	}
	for _, opt := range opts {
		opt(trigger)
	}
	return trigger, nil
}

// GenerateAndStore asks the generator for content and upserts it for dayKey.
// Nothing is written unless the output parses into a complete document.
func (t *Trigger) GenerateAndStore(ctx context.Context, dayKey string) error {
	log := t.log.With(zap.String("day_key", dayKey), zap.String("provider", t.generator.Name()))

	err := t.generateAndStore(ctx, dayKey)
	provider := t.generator.Name()
	switch {
	case err == nil:
		monitoring.RecordDashboardGeneration(dayKey, provider, monitoring.GenerationStored, "")
		log.Info("daily content stored")
	case errors.Is(err, ErrMalformedOutput):
		monitoring.RecordDashboardGeneration(dayKey, provider, monitoring.GenerationMalformed, err.Error())
		log.Warn("discarded malformed daily content", zap.Error(err))
	case errors.Is(err, generation.ErrGenerationDisabled):
		monitoring.RecordDashboardGeneration(dayKey, provider, monitoring.GenerationDisabled, "")
		log.Debug("generation disabled, serving fallback")
	default:
		monitoring.RecordDashboardGeneration(dayKey, provider, monitoring.GenerationFailed, err.Error())
		log.Error("daily content generation failed", zap.Error(err))
	}
	return err
}

func (t *Trigger) generateAndStore(ctx context.Context, dayKey string) error {
	genCtx, cancel := context.WithTimeout(ctx, t.timeout)
	text, err := t.generator.Generate(genCtx, Prompt,
		generation.WithKind("dashboard"),
		generation.WithMaxTokens(dashboardMaxTokens),
	)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	content, err := ParseContent(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	generatedAt := t.clock.Now()
	content.Date = stamp(generatedAt.In(t.loc))

	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrGenerationFailed, err)
	}

	err = t.repo.Upsert(ctx, Entry{
		DayKey:      dayKey,
		Payload:     payload,
		Provider:    t.generator.Name(),
		GeneratedAt: generatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return nil
}

// ParseContent decodes model output into Content and checks every required field.
func ParseContent(text string) (Content, error) {
	raw := generation.ExtractJSON(text)
	if raw == "" {
		return Content{}, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}

	var content Content
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := decoder.Decode(&content); err != nil {
		return Content{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if decoder.More() {
		return Content{}, fmt.Errorf("%w: trailing data after document", ErrMalformedOutput)
	}
	if err := validator.ValidateStruct(content); err != nil {
		return Content{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return content, nil
}

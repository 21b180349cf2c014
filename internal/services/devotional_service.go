package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/generation"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/logger"
	"github.com/charlesng35/ayumi/pkg/validator"
)

const (
	devotionalMaxTokens = 2048
	prayerMaxTokens     = 256
	prayerPromptCount   = 3
)

// Devotional is a short topical devotional.
type Devotional struct {
	Title       string              `json:"title" validate:"required"`
	Scripture   DevotionalScripture `json:"scripture" validate:"required"`
	Reflection  string              `json:"reflection" validate:"required"`
	Prayer      string              `json:"prayer" validate:"required"`
	StepOfFaith string              `json:"stepOfFaith" validate:"required"`
	Tags        []string            `json:"tags"`
}

type DevotionalScripture struct {
	Text      string `json:"text" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

func fallbackDevotional() Devotional {
	return Devotional{
		Title: "Walking by Faith",
		Scripture: DevotionalScripture{
			Text:      "For we walk by faith, not by sight.",
			Reference: "2 Corinthians 5:7",
		},
		Reflection:  "Faith is the foundation of our walk with God...",
		Prayer:      "Lord, increase my faith today.",
		StepOfFaith: "Trust God with one specific concern today.",
		Tags:        []string{"faith", "trust", "walk"},
	}
}

func fallbackPrayerPrompts() []string {
	return []string{
		"Lord, help me understand and apply this truth today.",
		"Thank You, Father, for speaking to me through Your Word.",
		"Give me faith to live out what I'm learning here.",
	}
}

const fallbackPrayer = "Lord, teach us to pray. Help us to seek Your face and trust Your heart. Amen."

// DevotionalService produces devotionals and prayers on demand. Every method
// answers with built-in content when generation fails.
type DevotionalService struct {
	gen     generation.Generator
	timeout time.Duration
	log     *zap.Logger
}

func NewDevotionalService(gen generation.Generator, timeout time.Duration) (*DevotionalService, error) {
	if gen == nil {
		return nil, errors.New("devotional service: generator is required")
	}
	return &DevotionalService{
		gen:     gen,
		timeout: timeout,
		log:     logger.WithModule("devotional"),
	}, nil
}

// Devotional generates a devotional, optionally on a topic.
func (s *DevotionalService) Devotional(ctx context.Context, topic string) (Devotional, Source) {
	topic = strings.TrimSpace(topic)

	var out Devotional
	err := generateJSON(ctx, s.gen, s.timeout, devotionalPrompt(topic), &out,
		generation.WithKind("devotional"), generation.WithMaxTokens(devotionalMaxTokens))
	if err == nil {
		err = validator.ValidateStruct(out)
	}
	if err != nil {
		s.log.Warn("devotional generation failed", zap.String("topic", topic), zap.Error(err))
		return fallbackDevotional(), SourceFallback
	}

	out.Tags = trimmedStrings(out.Tags)
	return out, SourceGenerated
}

// PrayerPrompts returns three short prompts for praying through verse.
func (s *DevotionalService) PrayerPrompts(ctx context.Context, verse string) ([]string, Source, error) {
	verse = strings.TrimSpace(verse)
	if verse == "" {
		return nil, "", apperrors.NewBadRequest("verse is required")
	}

	var prompts []string
	err := generateJSON(ctx, s.gen, s.timeout, prayerPromptsPrompt(verse), &prompts,
		generation.WithKind("prayer_prompts"), generation.WithMaxTokens(prayerMaxTokens))
	if err == nil {
		prompts = trimmedStrings(prompts)
		if len(prompts) == 0 {
			err = generation.ErrEmptyResponse
		}
	}
	if err != nil {
		s.log.Warn("prayer prompt generation failed", zap.Error(err))
		return fallbackPrayerPrompts(), SourceFallback, nil
	}

	if len(prompts) > prayerPromptCount {
		prompts = prompts[:prayerPromptCount]
	}
	return prompts, SourceGenerated, nil
}

// Prayer writes a short prayer of the given kind, e.g. "thanksgiving".
func (s *DevotionalService) Prayer(ctx context.Context, prayerType string) (string, Source, error) {
	prayerType = strings.TrimSpace(prayerType)
	if prayerType == "" {
		return "", "", apperrors.NewBadRequest("prayer_type is required")
	}

	text, err := generateText(ctx, s.gen, s.timeout,
		fmt.Sprintf("Write a short, heartfelt %s prayer (2-3 sentences) that a believer could pray.", prayerType),
		generation.WithKind("prayer"), generation.WithMaxTokens(prayerMaxTokens))
	if err != nil {
		s.log.Warn("prayer generation failed", zap.String("prayer_type", prayerType), zap.Error(err))
		return fallbackPrayer, SourceFallback, nil
	}
	return text, SourceGenerated, nil
}

func devotionalPrompt(topic string) string {
	focus := ""
	if topic != "" {
		focus = " focused on the topic of " + topic
	}
	return fmt.Sprintf(`Generate a deep devotional content%s for a Christian discipleship app.

Return JSON with this structure:
{
  "title": "devotional title",
  "scripture": {
    "text": "main verse text (ESV)",
    "reference": "verse reference"
  },
  "reflection": "3-4 paragraphs of deep theological reflection",
  "prayer": "guided prayer",
  "stepOfFaith": "practical application step",
  "tags": ["tag1", "tag2", "tag3"]
}`, focus)
}

func prayerPromptsPrompt(verse string) string {
	return fmt.Sprintf(`Based on this Bible verse: %q

Generate 3 short, personal prayer prompts (each 10-20 words) that help someone pray through this verse.

Return as JSON array: ["prompt1", "prompt2", "prompt3"]`, verse)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/models"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/validator"
)

// Defaults applied to users without stored settings.
const (
	DefaultBibleVersion = "ESV"
	DefaultFont         = "system"
	DefaultFontSize     = 16
	DefaultTheme        = "light"
	DefaultReminderTime = "08:00"
	DefaultLanguage     = "en"
)

// keys owned by the record itself; never copied from a request body
var reservedSettingsKeys = map[string]struct{}{
	"id":         {},
	"user_id":    {},
	"created_at": {},
	"updated_at": {},
	"extra":      {},
}

// SettingsService reads and writes per-user settings.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(db *gorm.DB) (*SettingsService, error) {
	if db == nil {
		return nil, errors.New("settings service: db is required")
	}
	return &SettingsService{db: db}, nil
}

// DefaultUserSettings returns the settings a new user starts with.
func DefaultUserSettings(userID string) models.UserSettings {
	return models.UserSettings{
		UserID:              userID,
		DefaultBibleVersion: DefaultBibleVersion,
		DefaultFont:         DefaultFont,
		FontSize:            DefaultFontSize,
		Theme:               DefaultTheme,
		DailyReminder:       true,
		ReminderTime:        DefaultReminderTime,
		Language:            DefaultLanguage,
	}
}

// SettingsPatch is the typed view of a settings update body.
type SettingsPatch struct {
	DefaultBibleVersion *string `mapstructure:"default_bible_version" json:"default_bible_version" validate:"omitempty,min=1,max=32"`
	DefaultFont         *string `mapstructure:"default_font" json:"default_font" validate:"omitempty,min=1,max=64"`
	FontSize            *int    `mapstructure:"font_size" json:"font_size" validate:"omitempty,min=8,max=72"`
	Theme               *string `mapstructure:"theme" json:"theme" validate:"omitempty,min=1,max=16"`
	DailyReminder       *bool   `mapstructure:"daily_reminder" json:"daily_reminder"`
	ReminderTime        *string `mapstructure:"reminder_time" json:"reminder_time" validate:"omitempty,clock"`
	Language            *string `mapstructure:"language" json:"language" validate:"omitempty,min=2,max=16"`
}

// Get returns the stored settings for userID, creating defaults on first access.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	ctx = ensureContext(ctx)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.NewBadRequest("user id is required")
	}

	settings, err := s.find(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("settings service: load settings: %w", err)
	}

	defaults := DefaultUserSettings(userID)
	if err := s.db.WithContext(ctx).Create(&defaults).Error; err != nil {
		if isUniqueConstraintError(err) {
			// a concurrent request created the row first
			if settings, err := s.find(ctx, userID); err == nil {
				return settings, nil
			}
		}
		return nil, fmt.Errorf("settings service: create defaults: %w", err)
	}
	return &defaults, nil
}

// Update applies body to the user's settings, creating them when absent.
// Known keys are type checked; other keys are kept in Extra.
func (s *SettingsService) Update(ctx context.Context, userID string, body map[string]any) (*models.UserSettings, error) {
	ctx = ensureContext(ctx)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.NewBadRequest("user id is required")
	}

	patch, extra, err := decodeSettingsPatch(body)
	if err != nil {
		return nil, err
	}

	var updated models.UserSettings
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := DefaultUserSettings(userID)
		err := tx.Where("user_id = ?", userID).Take(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		patch.apply(&current)
		if len(extra) > 0 {
			merged := datatypes.JSONMap{}
			for k, v := range current.Extra {
				merged[k] = v
			}
			for k, v := range extra {
				merged[k] = v
			}
			current.Extra = merged
		}

		if current.ID == "" {
			if err := tx.Create(&current).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&current).Error; err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings service: update settings: %w", err)
	}
	return &updated, nil
}

func (s *SettingsService) find(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func decodeSettingsPatch(body map[string]any) (SettingsPatch, map[string]any, error) {
	var patch SettingsPatch
	known := make(map[string]any, len(body))
	extra := make(map[string]any)
	for key, value := range body {
		if _, reserved := reservedSettingsKeys[key]; reserved {
			continue
		}
		known[key] = value
	}

	var meta mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &meta,
		Result:   &patch,
	})
	if err != nil {
		return patch, nil, fmt.Errorf("settings service: build decoder: %w", err)
	}
	if err := decoder.Decode(known); err != nil {
		return patch, nil, apperrors.NewBadRequest("invalid settings payload").WithInternal(err)
	}
	for _, key := range meta.Unused {
		extra[key] = known[key]
	}

	if err := validator.ValidateStruct(patch); err != nil {
		return patch, nil, err
	}
	return patch, extra, nil
}

func (p SettingsPatch) apply(settings *models.UserSettings) {
	if p.DefaultBibleVersion != nil {
		settings.DefaultBibleVersion = strings.TrimSpace(*p.DefaultBibleVersion)
	}
	if p.DefaultFont != nil {
		settings.DefaultFont = strings.TrimSpace(*p.DefaultFont)
	}
	if p.FontSize != nil {
		settings.FontSize = *p.FontSize
	}
	if p.Theme != nil {
		settings.Theme = strings.TrimSpace(*p.Theme)
	}
	if p.DailyReminder != nil {
		settings.DailyReminder = *p.DailyReminder
	}
	if p.ReminderTime != nil {
		settings.ReminderTime = *p.ReminderTime
	}
	if p.Language != nil {
		settings.Language = strings.TrimSpace(*p.Language)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/models"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
)

// JournalService manages journal entries.
type JournalService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewJournalService constructs a JournalService.
func NewJournalService(db *gorm.DB) (*JournalService, error) {
	if db == nil {
		return nil, errors.New("journal service: db is required")
	}
	return &JournalService{db: db, now: time.Now}, nil
}

// CreateJournalInput captures a new entry. Date defaults to now.
type CreateJournalInput struct {
	UserID          string     `json:"user_id" validate:"required,max=128"`
	Title           string     `json:"title" validate:"max=200"`
	Content         string     `json:"content" validate:"required"`
	Date            *time.Time `json:"date"`
	Tags            []string   `json:"tags" validate:"max=20,dive,max=32"`
	LinkedScripture *string    `json:"linked_scripture" validate:"omitempty,max=128"`
	CoverID         *string    `json:"cover_id" validate:"omitempty,max=64"`
}

// UpdateJournalInput lists mutable fields. Nil means unchanged.
type UpdateJournalInput struct {
	Title           *string    `json:"title" validate:"omitempty,max=200"`
	Content         *string    `json:"content" validate:"omitempty,min=1"`
	Date            *time.Time `json:"date"`
	Tags            *[]string  `json:"tags" validate:"omitempty,max=20,dive,max=32"`
	LinkedScripture *string    `json:"linked_scripture" validate:"omitempty,max=128"`
	CoverID         *string    `json:"cover_id" validate:"omitempty,max=64"`
}

func (s *JournalService) Create(ctx context.Context, input CreateJournalInput) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{
		UserID:          strings.TrimSpace(input.UserID),
		Title:           input.Title,
		Content:         input.Content,
		Tags:            input.Tags,
		LinkedScripture: input.LinkedScripture,
		CoverID:         input.CoverID,
	}
	if input.Date != nil {
		entry.Date = input.Date.UTC()
	} else {
		entry.Date = s.now().UTC()
	}
	entry.Normalise()
	if entry.Content == "" {
		return nil, apperrors.NewBadRequest("content is required")
	}

	if err := s.db.WithContext(ensureContext(ctx)).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("journal service: create entry: %w", err)
	}
	return entry, nil
}

// ListByUser returns a user's entries, newest first.
func (s *JournalService) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.WithContext(ensureContext(ctx)).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("date DESC").Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("journal service: list entries: %w", err)
	}
	return entries, nil
}

func (s *JournalService) Get(ctx context.Context, id string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.WithContext(ensureContext(ctx)).Take(&entry, "id = ?", strings.TrimSpace(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJournalEntryNotFound
		}
		return nil, fmt.Errorf("journal service: load entry: %w", err)
	}
	return &entry, nil
}

func (s *JournalService) Update(ctx context.Context, id string, input UpdateJournalInput) (*models.JournalEntry, error) {
	ctx = ensureContext(ctx)
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Content != nil {
		entry.Content = *input.Content
	}
	if input.Date != nil {
		entry.Date = input.Date.UTC()
	}
	if input.Tags != nil {
		entry.Tags = *input.Tags
	}
	if input.LinkedScripture != nil {
		entry.LinkedScripture = emptyToNil(*input.LinkedScripture)
	}
	if input.CoverID != nil {
		entry.CoverID = emptyToNil(*input.CoverID)
	}
	entry.Normalise()
	if entry.Content == "" {
		return nil, apperrors.NewBadRequest("content is required")
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("journal service: update entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ensureContext(ctx)).Delete(&models.JournalEntry{}, "id = ?", strings.TrimSpace(id))
	if result.Error != nil {
		return fmt.Errorf("journal service: delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrJournalEntryNotFound
	}
	return nil
}

func emptyToNil(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/models"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
)

// ColorResolver looks up highlight colors by id.
type ColorResolver interface {
	Color(id string) (catalog.Color, bool)
}

// HighlightService stores verse highlights.
type HighlightService struct {
	db     *gorm.DB
	colors ColorResolver
}

// NewHighlightService constructs a HighlightService.
func NewHighlightService(db *gorm.DB, colors ColorResolver) (*HighlightService, error) {
	if db == nil {
		return nil, errors.New("highlight service: db is required")
	}
	if colors == nil {
		return nil, errors.New("highlight service: color resolver is required")
	}
	return &HighlightService{db: db, colors: colors}, nil
}

// CreateHighlightInput describes a verse to highlight.
type CreateHighlightInput struct {
	UserID  string `json:"user_id" validate:"required,max=128"`
	Book    string `json:"book" validate:"required,max=64"`
	Chapter int    `json:"chapter" validate:"required,min=1"`
	Verse   int    `json:"verse" validate:"required,min=1"`
	ColorID string `json:"color_id" validate:"required,max=64"`
	Text    string `json:"text"`
}

// Create highlights a verse, replacing any existing highlight on the same verse.
func (s *HighlightService) Create(ctx context.Context, input CreateHighlightInput) (*models.Highlight, error) {
	ctx = ensureContext(ctx)

	color, ok := s.colors.Color(strings.TrimSpace(input.ColorID))
	if !ok {
		return nil, apperrors.ErrColorNotFound
	}

	highlight := &models.Highlight{
		UserID:   strings.TrimSpace(input.UserID),
		Book:     strings.TrimSpace(input.Book),
		Chapter:  input.Chapter,
		Verse:    input.Verse,
		ColorID:  color.ID,
		ColorHex: color.HexColor,
		Text:     input.Text,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book"}, {Name: "chapter"}, {Name: "verse"}},
			DoUpdates: clause.AssignmentColumns([]string{"color_id", "color_hex", "text", "updated_at"}),
		}).Create(highlight).Error
		if err != nil {
			return err
		}
		// on conflict the stored row keeps its original id
		var stored models.Highlight
		if err := tx.Where("user_id = ? AND book = ? AND chapter = ? AND verse = ?",
			highlight.UserID, highlight.Book, highlight.Chapter, highlight.Verse).
			Take(&stored).Error; err != nil {
			return err
		}
		*highlight = stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("highlight service: save highlight: %w", err)
	}
	return highlight, nil
}

// ListByUser returns every highlight a user made, in reading order.
func (s *HighlightService) ListByUser(ctx context.Context, userID string) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := s.db.WithContext(ensureContext(ctx)).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("book").Order("chapter").Order("verse").
		Find(&highlights).Error
	if err != nil {
		return nil, fmt.Errorf("highlight service: list highlights: %w", err)
	}
	return highlights, nil
}

// ListByChapter returns a user's highlights within one chapter.
func (s *HighlightService) ListByChapter(ctx context.Context, userID, book string, chapter int) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := s.db.WithContext(ensureContext(ctx)).
		Where("user_id = ? AND book = ? AND chapter = ?", strings.TrimSpace(userID), strings.TrimSpace(book), chapter).
		Order("verse").
		Find(&highlights).Error
	if err != nil {
		return nil, fmt.Errorf("highlight service: list chapter highlights: %w", err)
	}
	return highlights, nil
}

// Delete removes a highlight by id.
func (s *HighlightService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ensureContext(ctx)).Delete(&models.Highlight{}, "id = ?", strings.TrimSpace(id))
	if result.Error != nil {
		return fmt.Errorf("highlight service: delete highlight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHighlightNotFound
	}
	return nil
}

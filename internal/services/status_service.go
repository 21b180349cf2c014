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

const statusListLimit = 1000

// StatusService records client heartbeats.
type StatusService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatusService(db *gorm.DB) (*StatusService, error) {
	if db == nil {
		return nil, errors.New("status service: db is required")
	}
	return &StatusService{db: db, now: time.Now}, nil
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, apperrors.NewBadRequest("client_name is required")
	}

	check := &models.StatusCheck{ClientName: clientName, Timestamp: s.now().UTC()}
	if err := s.db.WithContext(ensureContext(ctx)).Create(check).Error; err != nil {
		return nil, fmt.Errorf("status service: create status check: %w", err)
	}
	return check, nil
}

// List returns up to the most recent thousand status checks, oldest first.
func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	var checks []models.StatusCheck
	err := s.db.WithContext(ensureContext(ctx)).
		Order("timestamp DESC").
		Limit(statusListLimit).
		Find(&checks).Error
	if err != nil {
		return nil, fmt.Errorf("status service: list status checks: %w", err)
	}
	for i, j := 0, len(checks)-1; i < j; i, j = i+1, j-1 {
		checks[i], checks[j] = checks[j], checks[i]
	}
	return checks, nil
}

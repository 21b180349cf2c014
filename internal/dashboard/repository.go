package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charlesng35/ayumi/internal/cache"
	"github.com/charlesng35/ayumi/internal/models"
	"github.com/charlesng35/ayumi/pkg/logger"
	"github.com/charlesng35/ayumi/pkg/validator"
)

// Repository persists one payload per day key.
type Repository interface {
	// Find returns the stored payload for dayKey. found is false on a miss.
	Find(ctx context.Context, dayKey string) (payload json.RawMessage, found bool, err error)
	// Upsert stores payload for dayKey, replacing any previous payload.
	Upsert(ctx context.Context, entry Entry) error
}

// Entry is a generated payload ready to be stored.
type Entry struct {
	DayKey      string          `json:"day_key" validate:"required,daykey"`
	Payload     json.RawMessage `json:"payload" validate:"required"`
	Provider    string          `json:"provider"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// GormRepository stores payloads in the daily_contents table.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository constructs a repository backed by db.
func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if db == nil {
		return nil, errors.New("dashboard repository: db is required")
	}
	return &GormRepository{db: db}, nil
}

func (r *GormRepository) Find(ctx context.Context, dayKey string) (json.RawMessage, bool, error) {
	var row models.DailyContent
	err := r.db.WithContext(ctx).Take(&row, "day_key = ?", dayKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find daily content %s: %w", dayKey, err)
	}
	return json.RawMessage(row.Payload), true, nil
}

func (r *GormRepository) Upsert(ctx context.Context, entry Entry) error {
	if err := validator.ValidateStruct(entry); err != nil {
		return fmt.Errorf("upsert daily content %q: %w", entry.DayKey, err)
	}

	row := models.DailyContent{
		DayKey:      entry.DayKey,
		Payload:     datatypes.JSON(entry.Payload),
		Provider:    entry.Provider,
		GeneratedAt: entry.GeneratedAt,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "provider", "generated_at", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert daily content %s: %w", entry.DayKey, err)
	}
	return nil
}

// CachedRepository reads through a shared cache.Store in front of another
// Repository. Cache failures are logged and bypassed.
type CachedRepository struct {
	next  Repository
	store cache.Store
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedRepository wraps next. A nil store returns next unchanged.
func NewCachedRepository(next Repository, store cache.Store, ttl time.Duration) Repository {
	if store == nil {
		return next
	}
	if ttl <= 0 {
		ttl = 36 * time.Hour
	}
	return &CachedRepository{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   logger.WithModule("dashboard.cache"),
	}
}

func cacheKey(dayKey string) string {
	return "dashboard:" + dayKey
}

func (r *CachedRepository) Find(ctx context.Context, dayKey string) (json.RawMessage, bool, error) {
	value, ok, err := r.store.Get(ctx, cacheKey(dayKey))
	if err != nil {
		r.log.Warn("cache read failed", zap.String("day_key", dayKey), zap.Error(err))
	} else if ok {
		return json.RawMessage(value), true, nil
	}

	payload, found, err := r.next.Find(ctx, dayKey)
	if err != nil || !found {
		return payload, found, err
	}

	if err := r.store.Set(ctx, cacheKey(dayKey), payload, r.ttl); err != nil {
		r.log.Warn("cache fill failed", zap.String("day_key", dayKey), zap.Error(err))
	}
	return payload, true, nil
}

func (r *CachedRepository) Upsert(ctx context.Context, entry Entry) error {
	if err := r.next.Upsert(ctx, entry); err != nil {
		return err
	}
	if err := r.store.Set(ctx, cacheKey(entry.DayKey), entry.Payload, r.ttl); err != nil {
		// stale cache entries are dropped so readers fall back to the database
		r.log.Warn("cache write failed", zap.String("day_key", entry.DayKey), zap.Error(err))
		_ = r.store.Delete(ctx, cacheKey(entry.DayKey))
	}
	return nil
}

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/cache"
	"github.com/charlesng35/ayumi/pkg/validator"
)

type countingRepo struct {
	Repository
	finds int
}

func (c *countingRepo) Find(ctx context.Context, dayKey string) (json.RawMessage, bool, error) {
	c.finds++
	return c.Repository.Find(ctx, dayKey)
}

type failingStore struct{}

var errCacheDown = errors.New("cache down")

func (failingStore) IncrementWithTTL(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errCacheDown
}
func (failingStore) Set(context.Context, string, []byte, time.Duration) error { return errCacheDown }
func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errCacheDown
}
func (failingStore) Delete(context.Context, ...string) error { return errCacheDown }

func TestGormRepositoryFindMissing(t *testing.T) {
	repo := newGormRepo(t)

	payload, found, err := repo.Find(context.Background(), "2025-06-01")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, payload)

	_, err = NewGormRepository(nil)
	require.Error(t, err)
}

func TestGormRepositoryRejectsInvalidEntries(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	for _, dayKey := range []string{"", "2025-6-1", "2025-02-30", "today"} {
		err := repo.Upsert(ctx, Entry{DayKey: dayKey, Payload: json.RawMessage(`{}`)})
		var failures validator.ValidationErrors
		require.ErrorAs(t, err, &failures, "day key %q", dayKey)
		require.Equal(t, "day_key", failures[0].Field)
	}

	err := repo.Upsert(ctx, Entry{DayKey: "2025-06-01"})
	require.Error(t, err)

	_, found, err := repo.Find(ctx, "2025-06-01")
	require.NoError(t, err)
	require.False(t, found)
}

func TestCachedRepositoryReadsThrough(t *testing.T) {
	gormRepo := newGormRepo(t)
	backing := &countingRepo{Repository: gormRepo}
	store := cache.NewDatabaseStore(gormRepo.db)
	repo := NewCachedRepository(backing, store, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{DayKey: "2025-06-01", Payload: json.RawMessage(`{"v":1}`)}))

	payload, found, err := repo.Find(ctx, "2025-06-01")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"v":1}`, string(payload))
	require.Zero(t, backing.finds, "write-through entry is served from the cache")

	require.NoError(t, store.Delete(ctx, cacheKey("2025-06-01")))
	_, found, err = repo.Find(ctx, "2025-06-01")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, backing.finds)

	cached, ok, err := store.Get(ctx, cacheKey("2025-06-01"))
	require.NoError(t, err)
	require.True(t, ok, "miss refills the cache")
	require.JSONEq(t, `{"v":1}`, string(cached))
}

func TestCachedRepositoryBypassesBrokenCache(t *testing.T) {
	gormRepo := newGormRepo(t)
	repo := NewCachedRepository(gormRepo, failingStore{}, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{DayKey: "2025-06-01", Payload: json.RawMessage(`{"v":2}`)}))

	payload, found, err := repo.Find(ctx, "2025-06-01")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"v":2}`, string(payload))
}

func TestNewCachedRepositoryWithoutStore(t *testing.T) {
	gormRepo := newGormRepo(t)
	require.Same(t, gormRepo, NewCachedRepository(gormRepo, nil, time.Hour))
}

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/database/testutil"
	"github.com/charlesng35/ayumi/internal/generation"
)

type fakeGenerator struct {
	calls   atomic.Int32
	respond func(ctx context.Context) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, opts ...generation.CallOption) (string, error) {
	f.calls.Add(1)
	return f.respond(ctx)
}

func (f *fakeGenerator) Name() string { return "fake" }

func replying(text string) *fakeGenerator {
	return &fakeGenerator{respond: func(context.Context) (string, error) { return text, nil }}
}

func failing(err error) *fakeGenerator {
	return &fakeGenerator{respond: func(context.Context) (string, error) { return "", err }}
}

// generatedJSON returns a complete document whose verse text identifies it.
func generatedJSON(t *testing.T, marker string) string {
	t.Helper()
	content := fallbackTemplate.clone()
	content.Verse.Text = marker
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return string(raw)
}

func newGormRepo(t *testing.T) *GormRepository {
	t.Helper()
	repo, err := NewGormRepository(testutil.MustOpenTestDB(t, testutil.WithAutoMigrate()))
	require.NoError(t, err)
	return repo
}

type brokenRepo struct{}

var errStoreDown = errors.New("store unavailable")

func (brokenRepo) Find(context.Context, string) (json.RawMessage, bool, error) {
	return nil, false, errStoreDown
}

func (brokenRepo) Upsert(context.Context, Entry) error { return errStoreDown }

type recordingSubmitter struct {
	mu   sync.Mutex
	keys []string
}

func (r *recordingSubmitter) Submit(dayKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, dayKey)
	return true
}

func (r *recordingSubmitter) submitted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

func verseText(t *testing.T, payload json.RawMessage) string {
	t.Helper()
	var content Content
	require.NoError(t, json.Unmarshal(payload, &content))
	return content.Verse.Text
}

package services

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/charlesng35/ayumi/internal/database/testutil"
	"github.com/charlesng35/ayumi/internal/generation"
)

// scriptedGenerator answers by prompt prefix; unmatched prompts fail.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	calls   atomic.Int32
	block   chan struct{}
}

func newScriptedGenerator() *scriptedGenerator {
	return &scriptedGenerator{replies: map[string]string{}}
}

func (g *scriptedGenerator) on(prefix, reply string) *scriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replies[prefix] = reply
	return g
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string, _ ...generation.CallOption) (string, error) {
	g.calls.Add(1)
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.err != nil {
		return "", g.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for prefix, reply := range g.replies {
		if strings.HasPrefix(prompt, prefix) {
			return reply, nil
		}
	}
	return "", generation.ErrGenerationDisabled
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
}

func ptr[T any](v T) *T { return &v }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

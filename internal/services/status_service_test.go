package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusService_CreateAndList(t *testing.T) {
	svc := must(NewStatusService(openDB(t)))
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	_, err := svc.Create(ctx, "web")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "ios")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "  ")
	require.Error(t, err)

	checks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, "web", checks[0].ClientName)
	require.Equal(t, "ios", checks[1].ClientName)
}

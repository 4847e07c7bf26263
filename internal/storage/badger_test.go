package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/models"
)

func newTestStorage(t *testing.T) *reportStorage {
	t.Helper()
	db, err := NewBadgerDB(common.NewSilentLogger(), &common.StorageConfig{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReportStorage(db, common.NewSilentLogger()).(*reportStorage)
}

func TestReportStorage_SaveGetDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := &models.ReportRecord{
		ID:          "r-1",
		Number:      1,
		GeneratedAt: time.Now(),
		RiskProfile: "Moderate",
	}
	require.NoError(t, store.SaveReport(ctx, record))

	got, err := store.GetReport(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Moderate", got.RiskProfile)

	require.NoError(t, store.DeleteReport(ctx, "r-1"))
	_, err = store.GetReport(ctx, "r-1")
	assert.Error(t, err)
}

func TestReportStorage_SaveRequiresID(t *testing.T) {
	store := newTestStorage(t)
	assert.Error(t, store.SaveReport(context.Background(), &models.ReportRecord{}))
	assert.Error(t, store.SaveReport(context.Background(), nil))
}

func TestReportStorage_GetMissing(t *testing.T) {
	store := newTestStorage(t)
	_, err := store.GetReport(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReportStorage_ListMostRecentFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, store.SaveReport(ctx, &models.ReportRecord{
			ID:          id,
			GeneratedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	ids, err := store.ListReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestNextReportNumber_Sequential(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := store.NextReportNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

// Concurrent generations must never share an output number.
func TestNextReportNumber_ConcurrentUnique(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := store.NextReportNumber(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := map[int]bool{}
	for n := range results {
		assert.False(t, seen[n], "number %d allocated twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

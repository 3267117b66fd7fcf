package stats

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/musclelog/internal/workout/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// short debounce window so invalidation settles quickly in tests
const testDebounce = 5 * time.Millisecond

func TestCache_ChartSeries(t *testing.T) {
	store := newStoreMock()
	bus := events.NewBus()
	cache := NewCache(NewAnalyzer(store), bus, testDebounce)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	store.addSet(1, day, 50, 8)

	points, err := cache.ChartSeries(ctx, 1, 1, asOf)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 50.0, points[0].Weight)

	// memoized: new data is not visible until invalidation
	store.addSet(1, day, 60, 6)
	points, err = cache.ChartSeries(ctx, 1, 1, asOf)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 50.0, points[0].Weight)

	// a burst of events leads to one invalidation once it settles
	bus.PublishWorkoutDataChanged()
	bus.PublishWorkoutDataChanged()
	bus.PublishWorkoutDataChanged()

	require.Eventually(t, func() bool {
		points, err := cache.ChartSeries(ctx, 1, 1, asOf)
		require.NoError(t, err)
		return len(points) == 1 && points[0].Weight == 60
	}, time.Second, time.Millisecond)
}

func TestCache_ChartSeries_ErrorNotCached(t *testing.T) {
	cache := NewCache(NewAnalyzer(newStoreMock()), events.NewBus(), testDebounce)
	defer cache.Close()

	_, err := cache.ChartSeries(context.Background(), 1, 5, time.Now())
	require.Error(t, err)
}

func TestCache_MonthlyTrainingDayCount(t *testing.T) {
	store := newStoreMock()
	bus := events.NewBus()
	cache := NewCache(NewAnalyzer(store), bus, testDebounce)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	store.logDates = []time.Time{
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 1, cache.MonthlyTrainingDayCount(ctx, asOf))

	store.logDates = append(store.logDates, time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, cache.MonthlyTrainingDayCount(ctx, asOf), "memoized until invalidation")

	// favorite toggles invalidate too
	bus.PublishFavoritesChanged(nil)
	require.Eventually(t, func() bool {
		return cache.MonthlyTrainingDayCount(ctx, asOf) == 2
	}, time.Second, time.Millisecond)
}

func TestCache_CloseFlushesPendingInvalidation(t *testing.T) {
	store := newStoreMock()
	bus := events.NewBus()
	cache := NewCache(NewAnalyzer(store), bus, time.Hour)

	ctx := context.Background()
	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	store.logDates = []time.Time{
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(t, 1, cache.MonthlyTrainingDayCount(ctx, asOf))

	store.logDates = append(store.logDates, time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC))
	bus.PublishWorkoutDataChanged()
	require.Equal(t, 1, cache.MonthlyTrainingDayCount(ctx, asOf), "invalidation still debounced")

	// the trailing event of the burst is not lost on shutdown
	cache.Close()
	assert.Equal(t, 2, cache.MonthlyTrainingDayCount(ctx, asOf))
}

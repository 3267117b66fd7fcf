package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/musclelog/internal/workout"
	"github.com/2beens/musclelog/internal/workout/events"
)

// Cache memoizes the analyzer's heavier queries and invalidates the
// memos whenever workout or favorites data changes on the bus. Event
// bursts are coalesced: a run of rapid mutations costs one
// invalidation after the burst settles, and the trailing event of a
// burst always produces one.
type Cache struct {
	analyzer *Analyzer

	mu          sync.Mutex
	chartSeries map[string][]ChartPoint
	monthlyDays map[string]int

	unsubscribe []func()
}

func NewCache(analyzer *Analyzer, bus *events.Bus, debounce time.Duration) *Cache {
	c := &Cache{
		analyzer:    analyzer,
		chartSeries: make(map[string][]ChartPoint),
		monthlyDays: make(map[string]int),
	}
	c.unsubscribe = append(c.unsubscribe,
		bus.SubscribeCoalesced(events.TopicWorkoutDataChanged, debounce, c.Invalidate),
		bus.SubscribeCoalesced(events.TopicFavoritesChanged, debounce, c.Invalidate),
	)
	return c
}

// Invalidate drops all memoized results. Called on every relevant
// bus event.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chartSeries = make(map[string][]ChartPoint)
	c.monthlyDays = make(map[string]int)
}

// Close removes the bus subscriptions and stops their coalescers.
func (c *Cache) Close() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
}

func (c *Cache) ChartSeries(ctx context.Context, exerciseID int64, periodMonths int, asOf time.Time) ([]ChartPoint, error) {
	key := fmt.Sprintf("%d|%d|%s", exerciseID, periodMonths, workout.StartOfDay(asOf).Format(time.DateOnly))

	c.mu.Lock()
	if points, ok := c.chartSeries[key]; ok {
		c.mu.Unlock()
		return points, nil
	}
	c.mu.Unlock()

	points, err := c.analyzer.ChartSeries(ctx, exerciseID, periodMonths, asOf)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.chartSeries[key] = points
	c.mu.Unlock()
	return points, nil
}

func (c *Cache) MonthlyTrainingDayCount(ctx context.Context, asOf time.Time) int {
	key := asOf.Format("2006-01")

	c.mu.Lock()
	if count, ok := c.monthlyDays[key]; ok {
		c.mu.Unlock()
		return count
	}
	c.mu.Unlock()

	count := c.analyzer.MonthlyTrainingDayCount(ctx, asOf)

	c.mu.Lock()
	c.monthlyDays[key] = count
	c.mu.Unlock()
	return count
}

package stats

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/musclelog/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWeight(t *testing.T) {
	testCases := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{name: "high reps, fixed increment wins", weight: 100, reps: 12, want: 105},
		{name: "high reps, percentage increment wins", weight: 100, reps: 15, want: 105},
		{name: "high reps, light weight gets fixed increment", weight: 20, reps: 12, want: 22.5},
		{name: "high reps, increment rounded to half", weight: 52, reps: 12, want: 54.5},
		{name: "low reps, decrease", weight: 50, reps: 5, want: 47.5},
		{name: "low reps, decrease rounded to half", weight: 49, reps: 3, want: 46.5},
		{name: "low reps, floor at zero", weight: 0, reps: 2, want: 0},
		{name: "maintain lower bound", weight: 60, reps: 6, want: 60},
		{name: "maintain", weight: 60, reps: 8, want: 60},
		{name: "maintain upper bound", weight: 60, reps: 11, want: 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextWeight(tc.weight, tc.reps))
		})
	}
}

func TestAnalyzer_SuggestNextWeight(t *testing.T) {
	store := newStoreMock()
	analyzer := NewAnalyzer(store)
	ctx := context.Background()

	assert.Zero(t, analyzer.SuggestNextWeight(ctx, 1), "no prior set suggests 0")

	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	store.addSet(1, day.AddDate(0, 0, -3), 95, 12)
	store.addSet(1, day, 100, 12)

	assert.Equal(t, 105.0, analyzer.SuggestNextWeight(ctx, 1), "suggestion follows the most recent set")
	assert.Equal(t, 100.0, analyzer.LastWeight(ctx, 1))
	assert.Zero(t, analyzer.LastWeight(ctx, 2))
}

func TestAnalyzer_ChartSeries(t *testing.T) {
	store := newStoreMock()
	analyzer := NewAnalyzer(store)
	ctx := context.Background()
	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	_, err := analyzer.ChartSeries(ctx, 1, 2, asOf)
	require.Error(t, err, "unsupported period must be rejected")

	// same-day sets keep only the day's maximum
	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	store.addSet(1, day, 40, 10)
	store.addSet(1, day, 55, 8)
	store.addSet(1, day, 50, 8)
	// another day, and one outside the period
	store.addSet(1, day.AddDate(0, 0, 5), 60, 6)
	store.addSet(1, asOf.AddDate(0, -2, 0), 35, 10)

	points, err := analyzer.ChartSeries(ctx, 1, 1, asOf)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, day, points[0].Day)
	assert.Equal(t, 55.0, points[0].Weight)
	assert.Equal(t, day.AddDate(0, 0, 5), points[1].Day)
	assert.Equal(t, 60.0, points[1].Weight)

	// a longer period picks the older set up again
	points, err = analyzer.ChartSeries(ctx, 1, 3, asOf)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 35.0, points[0].Weight)
}

func TestAnalyzer_ChartSeries_Empty(t *testing.T) {
	analyzer := NewAnalyzer(newStoreMock())

	points, err := analyzer.ChartSeries(context.Background(), 1, 6, time.Now())
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestAnalyzer_MonthlyTrainingDayCount(t *testing.T) {
	store := newStoreMock()
	analyzer := NewAnalyzer(store)
	asOf := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	assert.Zero(t, analyzer.MonthlyTrainingDayCount(context.Background(), asOf))

	store.logDates = []time.Time{
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC),
		// the store query may return a day-window superset,
		// out-of-month dates are filtered again
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, analyzer.MonthlyTrainingDayCount(context.Background(), asOf))
}

func TestAnalyzer_MostFrequentExercises(t *testing.T) {
	store := newStoreMock()
	analyzer := NewAnalyzer(store)
	ctx := context.Background()

	store.exercises = []workout.Exercise{
		{ID: 1, Name: "Squat"},
		{ID: 2, Name: "Bench Press"},
		{ID: 3, Name: "Deadlift"},
		{ID: 4, Name: "Plank"},
	}

	day := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		store.addSet(1, day.AddDate(0, 0, i), 100, 5)
		store.addSet(2, day.AddDate(0, 0, i), 80, 8)
	}
	store.addSet(3, day, 140, 3)

	frequency := analyzer.ExerciseFrequency(ctx, day, day.AddDate(0, 0, 10))
	assert.Equal(t, map[int64]int{1: 3, 2: 3, 3: 1}, frequency)

	ranked := analyzer.MostFrequentExercises(ctx, day, day.AddDate(0, 0, 10), 5)
	require.Len(t, ranked, 3)
	// counts tie between Squat and Bench Press, name decides
	assert.Equal(t, "Bench Press", ranked[0].Name)
	assert.Equal(t, "Squat", ranked[1].Name)
	assert.Equal(t, "Deadlift", ranked[2].Name)

	limited := analyzer.MostFrequentExercises(ctx, day, day.AddDate(0, 0, 10), 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "Bench Press", limited[0].Name)

	assert.Empty(t, analyzer.MostFrequentExercises(ctx, day.AddDate(1, 0, 0), day.AddDate(1, 0, 10), 5))
}

func TestSetTotals(t *testing.T) {
	assert.Zero(t, TotalVolume(nil))
	assert.Zero(t, TotalReps(nil))
	assert.Zero(t, MaxWeight(nil))
	assert.Zero(t, AverageWeight(nil), "empty input averages to 0, not NaN")

	sets := []workout.WorkoutSet{
		{Weight: 100, Reps: 5},
		{Weight: 80, Reps: 10},
		{Weight: 60, Reps: 12},
	}
	assert.Equal(t, 100*5+80*10+60*12.0, TotalVolume(sets))
	assert.Equal(t, 27, TotalReps(sets))
	assert.Equal(t, 100.0, MaxWeight(sets))
	assert.Equal(t, 80.0, AverageWeight(sets))
}

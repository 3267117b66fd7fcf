package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/musclelog/internal/workout"
)

// supported chart periods, in months
var supportedPeriods = map[int]bool{1: true, 3: true, 6: true, 12: true}

type workoutStore interface {
	LastSet(ctx context.Context, exerciseID int64) *workout.WorkoutSet
	SetsInRange(ctx context.Context, exerciseID int64, from, to time.Time) []workout.WorkoutSet
	SetsBetween(ctx context.Context, from, to time.Time) []workout.WorkoutSet
	LogDatesInMonth(ctx context.Context, month time.Time) []time.Time
	ListExercises(ctx context.Context, filter workout.ExerciseFilter) []workout.Exercise
}

// ChartPoint is one day of an exercise's weight-progress series: the
// maximum weight recorded on that day.
type ChartPoint struct {
	Day    time.Time `json:"day"`
	Weight float64   `json:"weight"`
}

// Analyzer derives trend analytics from data fetched from the store.
// It never mutates the store.
type Analyzer struct {
	store workoutStore
}

func NewAnalyzer(store workoutStore) *Analyzer {
	return &Analyzer{
		store: store,
	}
}

// SuggestNextWeight returns the suggested weight for the exercise's
// next session, based on its most recent set, or 0 when the exercise
// was never logged.
func (a *Analyzer) SuggestNextWeight(ctx context.Context, exerciseID int64) float64 {
	last := a.store.LastSet(ctx, exerciseID)
	if last == nil {
		return 0
	}
	return NextWeight(last.Weight, last.Reps)
}

// NextWeight encodes the progressive overload heuristic: high-rep
// sets earn an increase, low-rep sets a decrease, anything between
// maintains. The adjustment is applied first, then the result is
// rounded to the nearest 0.5.
func NextWeight(weight float64, reps int) float64 {
	switch {
	case reps >= 12:
		return roundToHalf(weight + math.Max(2.5, weight*0.05))
	case reps < 6:
		return roundToHalf(math.Max(0, weight-weight*0.05))
	default:
		return weight
	}
}

func roundToHalf(weight float64) float64 {
	return math.Round(weight*2) / 2
}

// LastWeight returns the weight of the exercise's most recent set,
// or 0 when the exercise was never logged.
func (a *Analyzer) LastWeight(ctx context.Context, exerciseID int64) float64 {
	last := a.store.LastSet(ctx, exerciseID)
	if last == nil {
		return 0
	}
	return last.Weight
}

// ChartSeries builds the per-day weight progress of an exercise over
// the last periodMonths months before asOf. Within a day only the
// maximum recorded weight is kept; on a tie the first-seen maximum
// wins. Points are sorted ascending by day. Supported periods are 1,
// 3, 6 and 12 months.
func (a *Analyzer) ChartSeries(ctx context.Context, exerciseID int64, periodMonths int, asOf time.Time) ([]ChartPoint, error) {
	if !supportedPeriods[periodMonths] {
		return nil, fmt.Errorf("unsupported chart period: %d months", periodMonths)
	}

	from := asOf.AddDate(0, -periodMonths, 0)
	sets := a.store.SetsInRange(ctx, exerciseID, from, asOf)

	maxPerDay := make(map[time.Time]float64)
	for _, set := range sets {
		day := workout.StartOfDay(set.Day)
		if existing, ok := maxPerDay[day]; ok && existing >= set.Weight {
			continue
		}
		maxPerDay[day] = set.Weight
	}

	points := make([]ChartPoint, 0, len(maxPerDay))
	for day, weight := range maxPerDay {
		points = append(points, ChartPoint{Day: day, Weight: weight})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points, nil
}

// MonthlyTrainingDayCount counts the distinct days with at least one
// log within the month containing asOf. The month query may return a
// day-window superset, so days are filtered again by exact year and
// month.
func (a *Analyzer) MonthlyTrainingDayCount(ctx context.Context, asOf time.Time) int {
	days := make(map[time.Time]bool)
	for _, date := range a.store.LogDatesInMonth(ctx, asOf) {
		if !workout.SameMonth(date, asOf) {
			continue
		}
		days[workout.StartOfDay(date)] = true
	}
	return len(days)
}

// ExerciseFrequency counts, per exercise, the number of sets logged
// in the inclusive [start, end] date range.
func (a *Analyzer) ExerciseFrequency(ctx context.Context, start, end time.Time) map[int64]int {
	frequency := make(map[int64]int)
	for _, set := range a.store.SetsBetween(ctx, start, end) {
		frequency[set.ExerciseID]++
	}
	return frequency
}

// MostFrequentExercises returns up to limit exercises ranked by set
// count descending within the range. Equal counts are ordered by
// case-insensitive name ascending.
func (a *Analyzer) MostFrequentExercises(ctx context.Context, start, end time.Time, limit int) []workout.Exercise {
	frequency := a.ExerciseFrequency(ctx, start, end)
	if len(frequency) == 0 || limit <= 0 {
		return []workout.Exercise{}
	}

	byID := make(map[int64]workout.Exercise)
	for _, e := range a.store.ListExercises(ctx, workout.FilterAll) {
		byID[e.ID] = e
	}

	ranked := make([]workout.Exercise, 0, len(frequency))
	for id := range frequency {
		if e, ok := byID[id]; ok {
			ranked = append(ranked, e)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := frequency[ranked[i].ID], frequency[ranked[j].ID]
		if ci != cj {
			return ci > cj
		}
		return strings.ToLower(ranked[i].Name) < strings.ToLower(ranked[j].Name)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TotalVolume sums weight times reps over the sets.
func TotalVolume(sets []workout.WorkoutSet) float64 {
	var volume float64
	for _, set := range sets {
		volume += set.Weight * float64(set.Reps)
	}
	return volume
}

// TotalReps sums the repetitions over the sets.
func TotalReps(sets []workout.WorkoutSet) int {
	var reps int
	for _, set := range sets {
		reps += set.Reps
	}
	return reps
}

// MaxWeight returns the heaviest weight among the sets, 0 for empty
// input.
func MaxWeight(sets []workout.WorkoutSet) float64 {
	var max float64
	for _, set := range sets {
		if set.Weight > max {
			max = set.Weight
		}
	}
	return max
}

// AverageWeight returns the mean weight over the sets, 0 for empty
// input.
func AverageWeight(sets []workout.WorkoutSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	var total float64
	for _, set := range sets {
		total += set.Weight
	}
	return total / float64(len(sets))
}

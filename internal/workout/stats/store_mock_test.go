package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/musclelog/internal/workout"
)

type storeMock struct {
	exercises []workout.Exercise
	sets      []workout.WorkoutSet
	logDates  []time.Time
}

func newStoreMock() *storeMock {
	return &storeMock{}
}

func (m *storeMock) addSet(exerciseID int64, day time.Time, weight float64, reps int) {
	m.sets = append(m.sets, workout.WorkoutSet{
		ID:         int64(len(m.sets) + 1),
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Day:        workout.StartOfDay(day),
	})
}

func (m *storeMock) LastSet(_ context.Context, exerciseID int64) *workout.WorkoutSet {
	var last *workout.WorkoutSet
	for i := range m.sets {
		set := &m.sets[i]
		if set.ExerciseID != exerciseID {
			continue
		}
		if last == nil || set.Day.After(last.Day) || (set.Day.Equal(last.Day) && set.ID > last.ID) {
			last = set
		}
	}
	return last
}

func (m *storeMock) SetsInRange(_ context.Context, exerciseID int64, from, to time.Time) []workout.WorkoutSet {
	fromDay := workout.StartOfDay(from)
	toDay := workout.StartOfDay(to)
	sets := make([]workout.WorkoutSet, 0)
	for _, set := range m.sets {
		if set.ExerciseID != exerciseID || set.Day.Before(fromDay) || set.Day.After(toDay) {
			continue
		}
		sets = append(sets, set)
	}
	sortSets(sets)
	return sets
}

func (m *storeMock) SetsBetween(_ context.Context, from, to time.Time) []workout.WorkoutSet {
	fromDay := workout.StartOfDay(from)
	toDay := workout.StartOfDay(to)
	sets := make([]workout.WorkoutSet, 0)
	for _, set := range m.sets {
		if set.Day.Before(fromDay) || set.Day.After(toDay) {
			continue
		}
		sets = append(sets, set)
	}
	sortSets(sets)
	return sets
}

func (m *storeMock) LogDatesInMonth(_ context.Context, _ time.Time) []time.Time {
	return m.logDates
}

func (m *storeMock) ListExercises(_ context.Context, _ workout.ExerciseFilter) []workout.Exercise {
	return m.exercises
}

func sortSets(sets []workout.WorkoutSet) {
	sort.Slice(sets, func(i, j int) bool {
		if !sets[i].Day.Equal(sets[j].Day) {
			return sets[i].Day.Before(sets[j].Day)
		}
		return sets[i].ID < sets[j].ID
	})
}

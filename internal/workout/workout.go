package workout

import "time"

type Exercise struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"isDefault"`
	IsFavorite bool   `json:"isFavorite"`
}

// WorkoutLog groups all sets performed on one calendar day.
// Day is always the start of that day, in UTC. At most one log
// exists per day.
type WorkoutLog struct {
	ID  int64     `json:"id"`
	Day time.Time `json:"day"`
}

type WorkoutSet struct {
	ID         int64   `json:"id"`
	ExerciseID int64   `json:"exerciseId"`
	LogID      int64   `json:"logId"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	// Day is the parent log day, denormalized on reads.
	Day time.Time `json:"day"`
}

// ExerciseFilter can be one of:
//   - all
//   - favorites
//   - custom
//   - default
type ExerciseFilter string

const (
	FilterAll       ExerciseFilter = "all"
	FilterFavorites ExerciseFilter = "favorites"
	FilterCustom    ExerciseFilter = "custom"
	FilterDefault   ExerciseFilter = "default"
)

func (f ExerciseFilter) String() string {
	return string(f)
}

func (f ExerciseFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterFavorites, FilterCustom, FilterDefault:
		return true
	default:
		return false
	}
}

// DefaultExercises is the fixed catalog used for idempotent seeding.
var DefaultExercises = []string{
	"Bench Press", "Squat", "Deadlift", "Shoulder Press", "Pull Up",
	"Barbell Row", "Leg Press", "Leg Extension", "Leg Curl",
	"Biceps Curl", "Triceps Extension", "Lat Pulldown", "Chest Fly",
	"Lateral Raise", "Plank", "Crunch", "Leg Raise", "Dips",
	"Push Up", "Hip Thrust",
}

// StartOfDay truncates t to the start of its calendar day, normalized
// to UTC. The day is taken from t's own location, so callers logging
// "today" get their local calendar day.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether a and b fall in the same calendar month of
// the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

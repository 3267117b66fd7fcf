package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/2beens/musclelog/internal/workout/events"
	"github.com/2beens/musclelog/pkg"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

const (
	createExerciseTableSQL = `
	CREATE TABLE IF NOT EXISTS exercise (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL COLLATE NOCASE UNIQUE,
		is_default INTEGER NOT NULL DEFAULT 0,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`

	createWorkoutLogTableSQL = `
	CREATE TABLE IF NOT EXISTS workout_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day DATETIME NOT NULL UNIQUE
	)`

	createWorkoutSetTableSQL = `
	CREATE TABLE IF NOT EXISTS workout_set (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise_id INTEGER NOT NULL REFERENCES exercise(id),
		log_id INTEGER NOT NULL REFERENCES workout_log(id),
		weight REAL NOT NULL,
		reps INTEGER NOT NULL
	)`
)

// Store owns the durable collection of exercises, workout logs and
// workout sets. No other component constructs or destroys those
// entities directly. Mutating operations are serialized through an
// internal mutex (single logical writer); reads may run concurrently
// with each other.
//
// After every successful mutation the store publishes the matching
// event on the bus, so derived views can invalidate themselves.
type Store struct {
	db  *sql.DB
	bus *events.Bus

	writeMu sync.Mutex
}

func NewStore(dbPath string, bus *events.Bus) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_loc=UTC", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, bus: bus}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) runMigrations() error {
	tables := []string{
		createExerciseTableSQL,
		createWorkoutLogTableSQL,
		createWorkoutSetTableSQL,
	}
	for _, tableSQL := range tables {
		if _, err := s.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// SeedDefaultExercises creates the default exercises from the fixed
// catalog that do not already exist by name. Idempotent: a second
// call is a no-op.
func (s *Store) SeedDefaultExercises(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, name := range DefaultExercises {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO exercise (name, is_default, is_favorite)
				SELECT ?, 1, 0
				WHERE NOT EXISTS (SELECT 1 FROM exercise WHERE name = ?);`,
			name, name,
		); err != nil {
			return fmt.Errorf("seed exercise %q: %w", name, err)
		}
	}

	return tx.Commit()
}

// +------------------------+
// |                        |
// |    Exercise Queries    |
// |                        |
// +------------------------+

// AddExercise creates a custom exercise. The name is trimmed before
// use; an empty trimmed name fails validation and a case-insensitive
// name collision fails with ErrDuplicateName.
func (s *Store) AddExercise(ctx context.Context, name string) (*Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name empty", ErrValidation)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO exercise (name, is_default, is_favorite) VALUES (?, 0, 0);`,
		name,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Exercise{
		ID:   id,
		Name: name,
	}, nil
}

// ToggleFavorite flips and persists the favorite flag, returning the
// new value, and publishes a favorites change for the exercise.
func (s *Store) ToggleFavorite(ctx context.Context, exerciseID int64) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	tag, err := tx.ExecContext(
		ctx,
		`UPDATE exercise SET is_favorite = 1 - is_favorite WHERE id = ?;`,
		exerciseID,
	)
	if err != nil {
		return false, err
	}
	if affected, err := tag.RowsAffected(); err != nil {
		return false, err
	} else if affected == 0 {
		return false, ErrNotFound
	}

	var isFavorite bool
	if err := tx.QueryRowContext(
		ctx,
		`SELECT is_favorite FROM exercise WHERE id = ?;`,
		exerciseID,
	).Scan(&isFavorite); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	s.bus.PublishFavoritesChanged(&exerciseID)
	return isFavorite, nil
}

// DeleteExercise removes a custom exercise together with all its sets,
// then cleans up any logs left without sets. Default exercises are
// not deletable.
func (s *Store) DeleteExercise(ctx context.Context, exerciseID int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var isDefault bool
	if err := tx.QueryRowContext(
		ctx,
		`SELECT is_default FROM exercise WHERE id = ?;`,
		exerciseID,
	).Scan(&isDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if isDefault {
		return ErrForbidden
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM workout_set WHERE exercise_id = ?;`,
		exerciseID,
	); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM exercise WHERE id = ?;`,
		exerciseID,
	); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	if err := deleteEmptyLogs(ctx, tx); err != nil {
		return fmt.Errorf("empty log cleanup: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.bus.PublishWorkoutDataChanged()
	return nil
}

// GetExercise resolves a single exercise by id.
func (s *Store) GetExercise(ctx context.Context, exerciseID int64) (*Exercise, error) {
	var e Exercise
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, is_default, is_favorite FROM exercise WHERE id = ?;`,
		exerciseID,
	).Scan(&e.ID, &e.Name, &e.IsDefault, &e.IsFavorite); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetExerciseByName resolves a single exercise by its (trimmed,
// case-insensitive) name.
func (s *Store) GetExerciseByName(ctx context.Context, name string) (*Exercise, error) {
	var e Exercise
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, is_default, is_favorite FROM exercise WHERE name = ?;`,
		strings.TrimSpace(name),
	).Scan(&e.ID, &e.Name, &e.IsDefault, &e.IsFavorite); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListExercises returns exercises matching the filter, ordered by
// name, case-insensitive ascending. On a persistence failure the
// result degrades to empty and the failure is logged.
func (s *Store) ListExercises(ctx context.Context, filter ExerciseFilter) []Exercise {
	if !filter.IsValid() {
		log.Errorf("list exercises: invalid filter %q", filter)
		return []Exercise{}
	}

	where := ""
	switch filter {
	case FilterFavorites:
		where = "WHERE is_favorite = 1"
	case FilterCustom:
		where = "WHERE is_default = 0"
	case FilterDefault:
		where = "WHERE is_default = 1"
	}

	rows, err := s.db.QueryContext(
		ctx,
		fmt.Sprintf(
			`SELECT id, name, is_default, is_favorite FROM exercise %s ORDER BY name COLLATE NOCASE ASC;`,
			where,
		),
	)
	if err != nil {
		log.Errorf("list exercises [filter %s]: %s", filter, err)
		return []Exercise{}
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		log.Errorf("list exercises [filter %s]: %s", filter, err)
		return []Exercise{}
	}
	return exercises
}

// SearchExercises returns exercises whose name contains the query,
// case-insensitive, ordered by name ascending.
func (s *Store) SearchExercises(ctx context.Context, query string) []Exercise {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, is_default, is_favorite FROM exercise
			WHERE name LIKE '%' || ? || '%'
			ORDER BY name COLLATE NOCASE ASC;`,
		strings.TrimSpace(query),
	)
	if err != nil {
		log.Errorf("search exercises [%s]: %s", query, err)
		return []Exercise{}
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		log.Errorf("search exercises [%s]: %s", query, err)
		return []Exercise{}
	}
	return exercises
}

// ExercisesWithSets returns only the exercises that have at least one
// recorded set, ordered by name ascending.
func (s *Store) ExercisesWithSets(ctx context.Context) []Exercise {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT e.id, e.name, e.is_default, e.is_favorite FROM exercise e
			WHERE EXISTS (SELECT 1 FROM workout_set ws WHERE ws.exercise_id = e.id)
			ORDER BY e.name COLLATE NOCASE ASC;`,
	)
	if err != nil {
		log.Errorf("exercises with sets: %s", err)
		return []Exercise{}
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		log.Errorf("exercises with sets: %s", err)
		return []Exercise{}
	}
	return exercises
}

// +---------------------------+
// |                           |
// |    Workout Log Queries    |
// |                           |
// +---------------------------+

// GetOrCreateLog resolves the log for the calendar day containing
// date, creating it if absent. Two calls for the same day return the
// same log.
func (s *Store) GetOrCreateLog(ctx context.Context, date time.Time) (*WorkoutLog, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	workoutLog, err := logForDayTx(ctx, tx, date)
	if err != nil {
		return nil, err
	}
	if workoutLog == nil {
		workoutLog, err = createLogTx(ctx, tx, date)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return workoutLog, nil
}

// LogForDay resolves the log for the calendar day containing date,
// or nil when no set was logged that day.
func (s *Store) LogForDay(ctx context.Context, date time.Time) *WorkoutLog {
	dayStart := StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var workoutLog WorkoutLog
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT id, day FROM workout_log WHERE day >= ? AND day < ?;`,
		dayStart, dayEnd,
	).Scan(&workoutLog.ID, &workoutLog.Day); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Errorf("log for day %s: %s", dayStart.Format(time.DateOnly), err)
		}
		return nil
	}
	return &workoutLog
}

// LogDatesInMonth returns the distinct log days in the month
// containing the given date.
func (s *Store) LogDatesInMonth(ctx context.Context, month time.Time) []time.Time {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT day FROM workout_log WHERE day >= ? AND day < ? ORDER BY day ASC;`,
		monthStart, nextMonthStart,
	)
	if err != nil {
		log.Errorf("log dates in month %s: %s", monthStart.Format("2006-01"), err)
		return []time.Time{}
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			log.Errorf("log dates in month %s: %s", monthStart.Format("2006-01"), err)
			return []time.Time{}
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("log dates in month %s: %s", monthStart.Format("2006-01"), err)
		return []time.Time{}
	}
	return dates
}

// +---------------------------+
// |                           |
// |    Workout Set Queries    |
// |                           |
// +---------------------------+

// AddSet records a performance of an exercise within a log. The set
// is persisted immediately. Weight must be non-negative and reps
// positive.
func (s *Store) AddSet(ctx context.Context, logID, exerciseID int64, weight float64, reps int) (*WorkoutSet, error) {
	if err := validateSet(weight, reps); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO workout_set (exercise_id, log_id, weight, reps) VALUES (?, ?, ?, ?);`,
		exerciseID, logID, weight, reps,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	s.bus.PublishWorkoutDataChanged()
	return &WorkoutSet{
		ID:         id,
		ExerciseID: exerciseID,
		LogID:      logID,
		Weight:     weight,
		Reps:       reps,
	}, nil
}

// UpdateSet edits weight and reps of an existing set in place. Parent
// relationships are immutable.
func (s *Store) UpdateSet(ctx context.Context, setID int64, weight float64, reps int) error {
	if err := validateSet(weight, reps); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tag, err := s.db.ExecContext(
		ctx,
		`UPDATE workout_set SET weight = ?, reps = ? WHERE id = ?;`,
		weight, reps, setID,
	)
	if err != nil {
		return err
	}
	if affected, err := tag.RowsAffected(); err != nil {
		return err
	} else if affected == 0 {
		return ErrNotFound
	}

	s.bus.PublishWorkoutDataChanged()
	return nil
}

// DeleteSet removes a set; if its parent log is left without sets,
// the log is deleted in the same transaction, so no empty logs
// persist.
func (s *Store) DeleteSet(ctx context.Context, setID int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var logID int64
	if err := tx.QueryRowContext(
		ctx,
		`SELECT log_id FROM workout_set WHERE id = ?;`,
		setID,
	).Scan(&logID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM workout_set WHERE id = ?;`,
		setID,
	); err != nil {
		return err
	}

	var remaining int
	if err := tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM workout_set WHERE log_id = ?;`,
		logID,
	).Scan(&remaining); err != nil {
		return err
	}
	if remaining == 0 {
		if _, err := tx.ExecContext(
			ctx,
			`DELETE FROM workout_log WHERE id = ?;`,
			logID,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.bus.PublishWorkoutDataChanged()
	return nil
}

// LastSet returns the most recently logged set for the exercise, or
// nil when the exercise has no sets. Recency is the parent log day,
// ties broken by set id descending; ids come from a monotonically
// increasing sequence, so the tie-break is insertion order.
func (s *Store) LastSet(ctx context.Context, exerciseID int64) *WorkoutSet {
	var set WorkoutSet
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT ws.id, ws.exercise_id, ws.log_id, ws.weight, ws.reps, wl.day
			FROM workout_set ws
			JOIN workout_log wl ON ws.log_id = wl.id
			WHERE ws.exercise_id = ?
			ORDER BY wl.day DESC, ws.id DESC
			LIMIT 1;`,
		exerciseID,
	).Scan(&set.ID, &set.ExerciseID, &set.LogID, &set.Weight, &set.Reps, &set.Day); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Errorf("last set of exercise %d: %s", exerciseID, err)
		}
		return nil
	}
	return &set
}

// SetsInRange returns the exercise's sets whose log day falls in the
// inclusive [from, to] date range, ascending by day.
func (s *Store) SetsInRange(ctx context.Context, exerciseID int64, from, to time.Time) []WorkoutSet {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ws.id, ws.exercise_id, ws.log_id, ws.weight, ws.reps, wl.day
			FROM workout_set ws
			JOIN workout_log wl ON ws.log_id = wl.id
			WHERE ws.exercise_id = ? AND wl.day >= ? AND wl.day <= ?
			ORDER BY wl.day ASC, ws.id ASC;`,
		exerciseID, StartOfDay(from), StartOfDay(to),
	)
	if err != nil {
		log.Errorf("sets in range for exercise %d: %s", exerciseID, err)
		return []WorkoutSet{}
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		log.Errorf("sets in range for exercise %d: %s", exerciseID, err)
		return []WorkoutSet{}
	}
	return sets
}

// SetsBetween returns all sets, for all exercises, whose log day
// falls in the inclusive [from, to] date range, ascending by day.
func (s *Store) SetsBetween(ctx context.Context, from, to time.Time) []WorkoutSet {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ws.id, ws.exercise_id, ws.log_id, ws.weight, ws.reps, wl.day
			FROM workout_set ws
			JOIN workout_log wl ON ws.log_id = wl.id
			WHERE wl.day >= ? AND wl.day <= ?
			ORDER BY wl.day ASC, ws.id ASC;`,
		StartOfDay(from), StartOfDay(to),
	)
	if err != nil {
		log.Errorf("sets between %s and %s: %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
		return []WorkoutSet{}
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		log.Errorf("sets between %s and %s: %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
		return []WorkoutSet{}
	}
	return sets
}

// SetsForDay returns the sets logged on the calendar day containing
// date, newest first.
func (s *Store) SetsForDay(ctx context.Context, date time.Time) []WorkoutSet {
	dayStart := StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ws.id, ws.exercise_id, ws.log_id, ws.weight, ws.reps, wl.day
			FROM workout_set ws
			JOIN workout_log wl ON ws.log_id = wl.id
			WHERE wl.day >= ? AND wl.day < ?
			ORDER BY ws.id DESC;`,
		dayStart, dayEnd,
	)
	if err != nil {
		log.Errorf("sets for day %s: %s", dayStart.Format(time.DateOnly), err)
		return []WorkoutSet{}
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		log.Errorf("sets for day %s: %s", dayStart.Format(time.DateOnly), err)
		return []WorkoutSet{}
	}
	return sets
}

// +--------------------------+
// |                          |
// |    Bulk Operations       |
// |                          |
// +--------------------------+

// ResetTrainingData deletes all logs and sets and all custom
// exercises, and clears the favorite flag on the remaining default
// exercises, in one transaction.
func (s *Store) ResetTrainingData(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM workout_set;`,
		`DELETE FROM workout_log;`,
		`DELETE FROM exercise WHERE is_default = 0;`,
		`UPDATE exercise SET is_favorite = 0;`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset training data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.bus.PublishFavoritesChanged(nil)
	s.bus.PublishWorkoutDataChanged()
	return nil
}

// helpers

func validateSet(weight float64, reps int) error {
	if weight < 0 {
		return fmt.Errorf("%w: weight must be non-negative", ErrValidation)
	}
	if reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrValidation)
	}
	return nil
}

func logForDayTx(ctx context.Context, tx *sql.Tx, date time.Time) (*WorkoutLog, error) {
	dayStart := StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var workoutLog WorkoutLog
	if err := tx.QueryRowContext(
		ctx,
		`SELECT id, day FROM workout_log WHERE day >= ? AND day < ?;`,
		dayStart, dayEnd,
	).Scan(&workoutLog.ID, &workoutLog.Day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &workoutLog, nil
}

func createLogTx(ctx context.Context, tx *sql.Tx, date time.Time) (*WorkoutLog, error) {
	day := StartOfDay(date)
	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO workout_log (day) VALUES (?);`,
		day,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &WorkoutLog{ID: id, Day: day}, nil
}

func deleteEmptyLogs(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(
		ctx,
		`DELETE FROM workout_log
			WHERE NOT EXISTS (SELECT 1 FROM workout_set ws WHERE ws.log_id = workout_log.id);`,
	)
	return err
}

func rows2exercises(rows *sql.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.IsDefault, &e.IsFavorite); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

func rows2sets(rows *sql.Rows) ([]WorkoutSet, error) {
	sets := make([]WorkoutSet, 0)
	for rows.Next() {
		var set WorkoutSet
		if err := rows.Scan(&set.ID, &set.ExerciseID, &set.LogID, &set.Weight, &set.Reps, &set.Day); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ImportExercise is one exercise entry of a decoded snapshot, with
// its sets denormalized to their log day.
type ImportExercise struct {
	Name       string
	IsDefault  bool
	IsFavorite bool
	Sets       []ImportSet
}

type ImportSet struct {
	Weight float64
	Reps   int
	Day    time.Time
}

// AllExercises returns every exercise, ordered by name ascending.
// Unlike the interactive read paths, a failure here propagates: a
// backup must not silently degrade to an empty snapshot.
func (s *Store) AllExercises(ctx context.Context) ([]Exercise, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, is_default, is_favorite FROM exercise ORDER BY name COLLATE NOCASE ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

// SetsForExercise returns all sets of an exercise with their log
// days, ordered by day then id ascending.
func (s *Store) SetsForExercise(ctx context.Context, exerciseID int64) ([]WorkoutSet, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ws.id, ws.exercise_id, ws.log_id, ws.weight, ws.reps, wl.day
			FROM workout_set ws
			JOIN workout_log wl ON ws.log_id = wl.id
			WHERE ws.exercise_id = ?
			ORDER BY wl.day ASC, ws.id ASC;`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2sets(rows)
}

// ImportExercises restores snapshot data in a single transaction.
// Exercises are matched by name and created when missing; one log is
// reconstructed per distinct set day, so the one-log-per-day
// invariant holds after import. All-or-nothing: any failure rolls
// the whole import back.
func (s *Store) ImportExercises(ctx context.Context, exercises []ImportExercise) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, imported := range exercises {
		exerciseID, err := findOrCreateExerciseTx(ctx, tx, imported)
		if err != nil {
			return fmt.Errorf("import exercise %q: %w", imported.Name, err)
		}

		for _, set := range imported.Sets {
			workoutLog, err := logForDayTx(ctx, tx, set.Day)
			if err != nil {
				return fmt.Errorf("import exercise %q: %w", imported.Name, err)
			}
			if workoutLog == nil {
				workoutLog, err = createLogTx(ctx, tx, set.Day)
				if err != nil {
					return fmt.Errorf("import exercise %q: %w", imported.Name, err)
				}
			}

			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO workout_set (exercise_id, log_id, weight, reps) VALUES (?, ?, ?, ?);`,
				exerciseID, workoutLog.ID, set.Weight, set.Reps,
			); err != nil {
				return fmt.Errorf("import set of %q: %w", imported.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.bus.PublishFavoritesChanged(nil)
	s.bus.PublishWorkoutDataChanged()
	return nil
}

func findOrCreateExerciseTx(ctx context.Context, tx *sql.Tx, imported ImportExercise) (int64, error) {
	name := strings.TrimSpace(imported.Name)
	if name == "" {
		return 0, fmt.Errorf("%w: exercise name empty", ErrValidation)
	}

	var id int64
	err := tx.QueryRowContext(
		ctx,
		`SELECT id FROM exercise WHERE name = ?;`,
		name,
	).Scan(&id)
	switch {
	case err == nil:
		// existing exercise keeps its default flag, the favorite
		// flag follows the snapshot
		if _, err := tx.ExecContext(
			ctx,
			`UPDATE exercise SET is_favorite = ? WHERE id = ?;`,
			imported.IsFavorite, id,
		); err != nil {
			return 0, err
		}
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO exercise (name, is_default, is_favorite) VALUES (?, ?, ?);`,
			name, imported.IsDefault, imported.IsFavorite,
		)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	default:
		return 0, err
	}
}

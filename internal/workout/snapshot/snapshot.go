// Package snapshot serializes the full entity graph to and from a
// versioned JSON document for export and backup. Logs are not
// exported as entities; each set carries its log's day and logs are
// reconstructed on import.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/musclelog/internal/workout"

	"go.uber.org/multierr"
)

// Version of the snapshot document format.
const Version = "1.0"

type Document struct {
	Version string `json:"version"`
	// ExportedAt is unix epoch seconds
	ExportedAt float64    `json:"exportedAt"`
	Exercises  []Exercise `json:"exercises"`
}

type Exercise struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	IsDefault  bool    `json:"isDefault"`
	IsFavorite bool    `json:"isFavorite"`
	Sets       []Set   `json:"sets"`
}

type Set struct {
	ID     int64   `json:"id"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	// Date is the parent log day, unix epoch seconds
	Date int64 `json:"date"`
}

type exporterStore interface {
	AllExercises(ctx context.Context) ([]workout.Exercise, error)
	SetsForExercise(ctx context.Context, exerciseID int64) ([]workout.WorkoutSet, error)
}

type importerStore interface {
	ImportExercises(ctx context.Context, exercises []workout.ImportExercise) error
}

// Export walks all exercises and their sets and produces the
// versioned document. Exercises come out ordered by name, sets by
// day then id, so exporting twice yields identical documents.
func Export(ctx context.Context, store exporterStore) (*Document, error) {
	exercises, err := store.AllExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}

	doc := &Document{
		Version:    Version,
		ExportedAt: float64(time.Now().Unix()),
		Exercises:  make([]Exercise, 0, len(exercises)),
	}

	for _, e := range exercises {
		sets, err := store.SetsForExercise(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("export sets of %q: %w", e.Name, err)
		}

		exported := Exercise{
			ID:         e.ID,
			Name:       e.Name,
			IsDefault:  e.IsDefault,
			IsFavorite: e.IsFavorite,
			Sets:       make([]Set, 0, len(sets)),
		}
		for _, set := range sets {
			exported.Sets = append(exported.Sets, Set{
				ID:     set.ID,
				Weight: set.Weight,
				Reps:   set.Reps,
				Date:   set.Day.Unix(),
			})
		}
		doc.Exercises = append(doc.Exercises, exported)
	}

	return doc, nil
}

// Import restores a document into the store. The document is
// validated in full first; only a document with no invalid records
// touches the store, and the restore itself is a single transaction.
func Import(ctx context.Context, store importerStore, doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}

	imports := make([]workout.ImportExercise, 0, len(doc.Exercises))
	for _, e := range doc.Exercises {
		imported := workout.ImportExercise{
			Name:       e.Name,
			IsDefault:  e.IsDefault,
			IsFavorite: e.IsFavorite,
			Sets:       make([]workout.ImportSet, 0, len(e.Sets)),
		}
		for _, set := range e.Sets {
			imported.Sets = append(imported.Sets, workout.ImportSet{
				Weight: set.Weight,
				Reps:   set.Reps,
				Day:    time.Unix(set.Date, 0).UTC(),
			})
		}
		imports = append(imports, imported)
	}

	return store.ImportExercises(ctx, imports)
}

// Validate dry-runs a document, collecting every invalid record so
// the caller can report all problems at once.
func Validate(doc *Document) error {
	if doc.Version != Version {
		return fmt.Errorf("unsupported snapshot version %q, want %q", doc.Version, Version)
	}

	var err error
	for i, e := range doc.Exercises {
		if strings.TrimSpace(e.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("exercise %d: empty name", i))
		}
		for j, set := range e.Sets {
			if set.Weight < 0 {
				err = multierr.Append(err, fmt.Errorf("exercise %d set %d: negative weight", i, j))
			}
			if set.Reps <= 0 {
				err = multierr.Append(err, fmt.Errorf("exercise %d set %d: non-positive reps", i, j))
			}
		}
	}
	return err
}

// Encode marshals a document as indented JSON.
func Encode(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a document from JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &doc, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/2beens/musclelog/internal/workout"
	"github.com/2beens/musclelog/internal/workout/snapshot"
	"github.com/2beens/musclelog/internal/workout/stats"

	"github.com/spf13/cobra"
)

func SetupCommands(a *app) *cobra.Command {
	var env string
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "musclelog",
		Short:         "A workout logging and progress tracking CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(env, configPath); err != nil {
				return err
			}
			// default exercises are seeded on every start, the
			// operation only creates the missing ones
			return a.store.SeedDefaultExercises(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path for the TOML config file")

	rootCmd.AddCommand(
		exercisesCmd(a),
		addExerciseCmd(a),
		deleteExerciseCmd(a),
		favoriteCmd(a),
		logSetCmd(a),
		dayCmd(a),
		setsCmd(a),
		suggestCmd(a),
		statsCmd(a),
		exportCmd(a),
		importCmd(a),
		resetCmd(a),
	)

	return rootCmd
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./musclelog.toml"
	}
	return home + "/.musclelog/musclelog.toml"
}

func exercisesCmd(a *app) *cobra.Command {
	var favorites, custom, defaults bool
	var search string

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List exercises",
		Run: func(cmd *cobra.Command, args []string) {
			var exercises []workout.Exercise
			switch {
			case search != "":
				exercises = a.store.SearchExercises(cmd.Context(), search)
			case favorites:
				exercises = a.store.ListExercises(cmd.Context(), workout.FilterFavorites)
			case custom:
				exercises = a.store.ListExercises(cmd.Context(), workout.FilterCustom)
			case defaults:
				exercises = a.store.ListExercises(cmd.Context(), workout.FilterDefault)
			default:
				exercises = a.store.ListExercises(cmd.Context(), workout.FilterAll)
			}

			for _, e := range exercises {
				marker := " "
				if e.IsFavorite {
					marker = "*"
				}
				kind := "custom"
				if e.IsDefault {
					kind = "default"
				}
				fmt.Printf("%s %-28s [%s]\n", marker, e.Name, kind)
			}
		},
	}
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only favorite exercises")
	cmd.Flags().BoolVar(&custom, "custom", false, "only custom exercises")
	cmd.Flags().BoolVar(&defaults, "default", false, "only default exercises")
	cmd.Flags().StringVar(&search, "search", "", "name substring search")
	return cmd
}

func addExerciseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-exercise [name]",
		Short: "Create a custom exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.AddExercise(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added exercise: %s\n", exercise.Name)
			return nil
		},
	}
}

func deleteExerciseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-exercise [name]",
		Short: "Delete a custom exercise and all its sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.GetExerciseByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteExercise(cmd.Context(), exercise.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted exercise: %s\n", exercise.Name)
			return nil
		},
	}
}

func favoriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite [name]",
		Short: "Toggle an exercise's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.GetExerciseByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			isFavorite, err := a.store.ToggleFavorite(cmd.Context(), exercise.ID)
			if err != nil {
				return err
			}
			if isFavorite {
				fmt.Printf("%s marked as favorite\n", exercise.Name)
			} else {
				fmt.Printf("%s is no longer a favorite\n", exercise.Name)
			}
			return nil
		},
	}
}

func logSetCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log [exercise] [weight] [reps]",
		Short: "Record a workout set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.GetExerciseByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[1])
			}
			reps, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid reps %q", args[2])
			}

			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			workoutLog, err := a.store.GetOrCreateLog(cmd.Context(), day)
			if err != nil {
				return err
			}
			set, err := a.store.AddSet(cmd.Context(), workoutLog.ID, exercise.ID, weight, reps)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s: %.1f x %d [%s]\n",
				exercise.Name, set.Weight, set.Reps, workoutLog.Day.Format(time.DateOnly))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "log date (YYYY-MM-DD, default today)")
	return cmd
}

func dayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show the sets logged on a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			sets := a.store.SetsForDay(cmd.Context(), day)
			if len(sets) == 0 {
				fmt.Println("No sets logged.")
				return nil
			}

			names := exerciseNames(a, cmd)
			for _, set := range sets {
				fmt.Printf("%-28s %.1f x %d\n", names[set.ExerciseID], set.Weight, set.Reps)
			}
			return nil
		},
	}
}

func setsCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "sets [exercise]",
		Short: "List an exercise's sets in a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.GetExerciseByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			now := time.Now()
			fromDate := now.AddDate(0, -1, 0)
			toDate := now
			if from != "" {
				if fromDate, err = time.Parse(time.DateOnly, from); err != nil {
					return fmt.Errorf("invalid --from date %q", from)
				}
			}
			if to != "" {
				if toDate, err = time.Parse(time.DateOnly, to); err != nil {
					return fmt.Errorf("invalid --to date %q", to)
				}
			}

			sets := a.store.SetsInRange(cmd.Context(), exercise.ID, fromDate, toDate)
			for _, set := range sets {
				fmt.Printf("%s  %.1f x %d\n", set.Day.Format(time.DateOnly), set.Weight, set.Reps)
			}
			fmt.Printf("total volume: %.1f, total reps: %d\n",
				stats.TotalVolume(sets), stats.TotalReps(sets))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD, default one month ago)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD, default today)")
	return cmd
}

func suggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [exercise]",
		Short: "Suggest the next session weight for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise, err := a.store.GetExerciseByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			suggested := a.analyzer.SuggestNextWeight(cmd.Context(), exercise.ID)
			if suggested == 0 {
				fmt.Printf("No sets logged for %s yet.\n", exercise.Name)
				return nil
			}
			fmt.Printf("Suggested next weight for %s: %.1f\n", exercise.Name, suggested)
			return nil
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	var periodMonths int
	var exerciseName string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly frequency and, per exercise, weight progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			fmt.Printf("Training days this month: %d\n",
				a.cache.MonthlyTrainingDayCount(cmd.Context(), now))

			top := a.analyzer.MostFrequentExercises(cmd.Context(), now.AddDate(0, -periodMonths, 0), now, 5)
			if len(top) > 0 {
				fmt.Println("Most trained exercises:")
				for _, e := range top {
					fmt.Printf("  %s\n", e.Name)
				}
			}

			if exerciseName == "" {
				return nil
			}
			exercise, err := a.store.GetExerciseByName(cmd.Context(), exerciseName)
			if err != nil {
				return err
			}
			points, err := a.cache.ChartSeries(cmd.Context(), exercise.ID, periodMonths, now)
			if err != nil {
				return err
			}
			fmt.Printf("Weight progress for %s:\n", exercise.Name)
			for _, p := range points {
				fmt.Printf("  %s  %.1f\n", p.Day.Format(time.DateOnly), p.Weight)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&periodMonths, "period", 1, "period in months [1 | 3 | 6 | 12]")
	cmd.Flags().StringVar(&exerciseName, "exercise", "", "exercise to chart")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a versioned JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := snapshot.Export(cmd.Context(), a.store)
			if err != nil {
				return err
			}
			data, err := snapshot.Encode(doc)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Printf("Exported snapshot to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func importCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			doc, err := snapshot.Decode(data)
			if err != nil {
				return err
			}
			if err := snapshot.Import(cmd.Context(), a.store, doc); err != nil {
				return err
			}
			fmt.Printf("Imported %d exercises\n", len(doc.Exercises))
			return nil
		},
	}
}

func resetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all training data and custom exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			if err := a.store.ResetTrainingData(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All training data deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func parseDateFlag(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return day, nil
}

func exerciseNames(a *app, cmd *cobra.Command) map[int64]string {
	names := make(map[int64]string)
	for _, e := range a.store.ListExercises(cmd.Context(), workout.FilterAll) {
		names[e.ID] = e.Name
	}
	return names
}

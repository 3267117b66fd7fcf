package main

import (
	"fmt"
	"os"

	"github.com/2beens/musclelog/internal/config"
	"github.com/2beens/musclelog/internal/logging"
	"github.com/2beens/musclelog/internal/workout"
	"github.com/2beens/musclelog/internal/workout/events"
	"github.com/2beens/musclelog/internal/workout/stats"

	log "github.com/sirupsen/logrus"
)

// app is the composition root: it owns the store lifecycle and hands
// explicit instances to the commands, no global singletons.
type app struct {
	cfg      *config.Config
	bus      *events.Bus
	store    *workout.Store
	analyzer *stats.Analyzer
	cache    *stats.Cache
}

func (a *app) setup(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
	})
	log.Debugf("running in [%s] environment", cfg.Environment)
	log.Debugf("using database: %s", cfg.DBPath)

	a.bus = events.NewBus()
	store, err := workout.NewStore(cfg.DBPath, a.bus)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store
	a.analyzer = stats.NewAnalyzer(store)
	a.cache = stats.NewCache(a.analyzer, a.bus, cfg.BusDebounceWindow())

	return nil
}

func (a *app) close() {
	if a.cache != nil {
		a.cache.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Errorf("close store: %s", err)
		}
	}
}

func main() {
	a := &app{}
	rootCmd := SetupCommands(a)
	defer a.close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

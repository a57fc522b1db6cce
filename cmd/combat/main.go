// Command combat runs one battle to completion and prints the rendered
// grid, the surviving roster and the outcome score.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/config"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/events"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/mapgen"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/scenario"
)

func main() {
	var (
		mapPath      = pflag.String("map", "", "path to a map file")
		scenarioPath = pflag.String("scenario", "", "path to a scenario YAML file")
		demo         = pflag.Bool("demo", false, "run on a randomly generated cavern")
		seed         = pflag.Int64("seed", 0, "demo map seed (0 = time-based)")
		configPath   = pflag.String("config", "", "path to a config file")
		colored      = pflag.Bool("color", false, "colorize the grid output")
		verbose      = pflag.Bool("verbose", false, "log every move, attack and death")
		watch        = pflag.Bool("watch", false, "re-run the battle whenever the config file changes")
	)
	pflag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := setupLogger(config.Get().Logging, *verbose)
	if path := config.ConfigFilePath(); path != "" {
		logger.Info().Str("config", path).Msg("Loaded config file")
	}

	runBattle := func() {
		cfg := config.Get()
		grid, opts, err := buildBattle(cfg, logger, *mapPath, *scenarioPath, *demo, *seed)
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not set up battle")
		}

		if *verbose {
			bus := events.NewEventBus(logger)
			bus.Subscribe(subscribers.NewLoggerSubscriber("combat-cli", logger))
			opts.EventBus = bus
		}

		engine := game.NewEngine(grid, opts, logger)
		fmt.Println(engine.Render(*colored))

		stats := engine.Run()

		fmt.Println(engine.Render(*colored))
		printStats(stats)
	}

	runBattle()

	if *watch {
		logger.Info().Str("config", config.ConfigFilePath()).Msg("Watching config, battle re-runs on change")
		config.WatchConfig(func() {
			logger.Info().Msg("Config changed, re-running battle")
			runBattle()
		})

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	}
}

// buildBattle resolves the input source: scenario file, map file, or a
// generated demo cavern, in that priority order.
func buildBattle(cfg *config.Config, logger zerolog.Logger, mapPath, scenarioPath string, demo bool, seed int64) (*core.Grid, game.Options, error) {
	opts := game.Options{
		UnitHealth:   cfg.Combat.UnitHealth,
		ElfAttack:    cfg.Combat.ElfAttack,
		GoblinAttack: cfg.Combat.GoblinAttack,
	}

	switch {
	case scenarioPath != "":
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, opts, err
		}
		logger.Info().Str("scenario", s.Name).Msg("Loaded scenario")
		g, err := s.Grid()
		if err != nil {
			return nil, opts, err
		}
		scenarioOpts := s.Options()
		if scenarioOpts.UnitHealth > 0 {
			opts.UnitHealth = scenarioOpts.UnitHealth
		}
		if scenarioOpts.ElfAttack > 0 {
			opts.ElfAttack = scenarioOpts.ElfAttack
		}
		if scenarioOpts.GoblinAttack > 0 {
			opts.GoblinAttack = scenarioOpts.GoblinAttack
		}
		return g, opts, nil

	case mapPath != "":
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return nil, opts, fmt.Errorf("read map: %w", err)
		}
		g, err := core.ParseGrid(string(data))
		return g, opts, err

	case demo:
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Info().Int64("seed", seed).Msg("Generating demo cavern")
		gen := mapgen.NewGenerator(mapgen.MapConfig{
			Width:           cfg.Demo.Width,
			Height:          cfg.Demo.Height,
			WallRatio:       cfg.Demo.WallRatio,
			UnitsPerFaction: cfg.Demo.UnitsPerFaction,
		}, rand.New(rand.NewSource(seed)))
		return gen.Generate(), opts, nil

	default:
		return nil, opts, fmt.Errorf("one of --map, --scenario or --demo is required")
	}
}

func printStats(stats game.BattleStats) {
	if stats.HasWinner {
		fmt.Printf("Winner: %s\n", stats.Winner)
	} else {
		fmt.Println("Winner: none")
	}
	fmt.Printf("Completed rounds: %d\n", stats.CompletedRounds)
	for _, f := range []core.Faction{core.FactionElf, core.FactionGoblin} {
		fs := stats.Factions[f]
		fmt.Printf("  %-6s living=%d casualties=%d health=%d\n", f, fs.Living, fs.Casualties, fs.TotalHealth)
	}
	fmt.Printf("Outcome: %d\n", stats.Outcome)
}

func setupLogger(cfg config.LoggingConfig, verbose bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

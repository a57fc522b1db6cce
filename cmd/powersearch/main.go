// Command powersearch scans ascending attack powers for one faction
// until it wins a battle without a single loss, and reports the minimal
// sufficient power with its outcome.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/config"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/scenario"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/search"
)

func main() {
	var (
		mapPath      = pflag.String("map", "", "path to a map file")
		scenarioPath = pflag.String("scenario", "", "path to a scenario YAML file")
		configPath   = pflag.String("config", "", "path to a config file")
		factionName  = pflag.String("faction", "", "faction to boost: elf or goblin (default from config)")
	)
	pflag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()
	logger := setupLogger(cfg.Logging)

	grid, err := loadGrid(*mapPath, *scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load map")
	}

	name := cfg.Search.Faction
	if *factionName != "" {
		name = *factionName
	}
	faction, err := parseFaction(name)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid faction")
	}

	searchCfg := search.Config{
		Faction:    faction,
		Floor:      cfg.Search.Floor,
		Ceiling:    cfg.Search.Ceiling,
		UnitHealth: cfg.Combat.UnitHealth,
	}
	if faction == core.FactionElf {
		searchCfg.EnemyAttack = cfg.Combat.GoblinAttack
	} else {
		searchCfg.EnemyAttack = cfg.Combat.ElfAttack
	}

	result, err := search.NewSearcher(grid, searchCfg, logger).Run()
	if err != nil {
		logger.Fatal().Err(err).Msg("Search failed")
	}

	fmt.Printf("Minimal %s attack power: %d (after %d trials)\n", faction, result.AttackPower, result.Trials)
	fmt.Printf("Completed rounds: %d\n", result.Stats.CompletedRounds)
	fmt.Printf("Outcome: %d\n", result.Stats.Outcome)
}

func loadGrid(mapPath, scenarioPath string) (*core.Grid, error) {
	switch {
	case scenarioPath != "":
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, err
		}
		return s.Grid()
	case mapPath != "":
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
		return core.ParseGrid(string(data))
	default:
		return nil, fmt.Errorf("one of --map or --scenario is required")
	}
}

func parseFaction(name string) (core.Faction, error) {
	switch name {
	case "elf":
		return core.FactionElf, nil
	case "goblin":
		return core.FactionGoblin, nil
	default:
		return 0, fmt.Errorf("unknown faction %q", name)
	}
}

func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// Package scenario loads battle definitions from YAML files: a map
// block plus optional combat overrides and, for regression fixtures,
// the expected result.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// Expected holds the documented result of a scenario, when known.
type Expected struct {
	Outcome         int `yaml:"outcome"`
	CompletedRounds int `yaml:"completed_rounds"`
	MinAttackPower  int `yaml:"min_attack_power"`
	SearchOutcome   int `yaml:"search_outcome"`
}

// Scenario is one YAML battle definition.
type Scenario struct {
	Name         string    `yaml:"name"`
	Map          string    `yaml:"map"`
	UnitHealth   int       `yaml:"unit_health"`
	ElfAttack    int       `yaml:"elf_attack"`
	GoblinAttack int       `yaml:"goblin_attack"`
	Expected     *Expected `yaml:"expected"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML and checks that the map parses.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if s.Map == "" {
		return nil, fmt.Errorf("scenario %q has no map", s.Name)
	}
	if _, err := core.ParseGrid(s.Map); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

// Grid parses the scenario's map into a fresh grid.
func (s *Scenario) Grid() (*core.Grid, error) {
	return core.ParseGrid(s.Map)
}

// Options converts the scenario overrides into battle options. Zero
// fields fall back to the engine defaults.
func (s *Scenario) Options() game.Options {
	return game.Options{
		UnitHealth:   s.UnitHealth,
		ElfAttack:    s.ElfAttack,
		GoblinAttack: s.GoblinAttack,
	}
}

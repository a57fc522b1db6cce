package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Combat  CombatConfig  `mapstructure:"combat"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// CombatConfig holds the default combat parameters
type CombatConfig struct {
	UnitHealth   int `mapstructure:"unit_health"`
	ElfAttack    int `mapstructure:"elf_attack"`
	GoblinAttack int `mapstructure:"goblin_attack"`
}

// SearchConfig holds attack-power search settings
type SearchConfig struct {
	Faction string `mapstructure:"faction"`
	Floor   int    `mapstructure:"floor"`
	Ceiling int    `mapstructure:"ceiling"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds random-map demo settings
type DemoConfig struct {
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	WallRatio       float64 `mapstructure:"wall_ratio"`
	UnitsPerFaction int     `mapstructure:"units_per_faction"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Combat defaults
	v.SetDefault("combat.unit_health", 200)
	v.SetDefault("combat.elf_attack", 3)
	v.SetDefault("combat.goblin_attack", 3)

	// Search defaults
	v.SetDefault("search.faction", "elf")
	v.SetDefault("search.floor", 3)
	v.SetDefault("search.ceiling", 200)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Demo defaults
	v.SetDefault("demo.width", 16)
	v.SetDefault("demo.height", 12)
	v.SetDefault("demo.wall_ratio", 0.15)
	v.SetDefault("demo.units_per_faction", 4)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/cavern-combat")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("CCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Validate checks that the configuration values are usable
func Validate(c *Config) error {
	if c.Combat.UnitHealth <= 0 {
		return fmt.Errorf("combat.unit_health must be positive, got %d", c.Combat.UnitHealth)
	}
	if c.Combat.ElfAttack <= 0 || c.Combat.GoblinAttack <= 0 {
		return fmt.Errorf("attack powers must be positive, got elf=%d goblin=%d",
			c.Combat.ElfAttack, c.Combat.GoblinAttack)
	}
	if c.Search.Faction != "elf" && c.Search.Faction != "goblin" {
		return fmt.Errorf("search.faction must be elf or goblin, got %q", c.Search.Faction)
	}
	if c.Search.Floor <= 0 || c.Search.Ceiling < c.Search.Floor {
		return fmt.Errorf("invalid search power range [%d, %d]", c.Search.Floor, c.Search.Ceiling)
	}
	if c.Demo.Width < 4 || c.Demo.Height < 4 {
		return fmt.Errorf("demo map must be at least 4x4, got %dx%d", c.Demo.Width, c.Demo.Height)
	}
	if c.Demo.WallRatio < 0 || c.Demo.WallRatio >= 1 {
		return fmt.Errorf("demo.wall_ratio must be in [0, 1), got %v", c.Demo.WallRatio)
	}
	if c.Demo.UnitsPerFaction < 1 {
		return fmt.Errorf("demo.units_per_faction must be at least 1, got %d", c.Demo.UnitsPerFaction)
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

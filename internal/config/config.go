package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Hunting    HuntingConfig    `yaml:"hunting"`
	DeerAI     DeerAIConfig     `yaml:"deer_ai"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize  float64 `yaml:"tile_size"`
	MapWidth  int     `yaml:"map_width"`
	MapHeight int     `yaml:"map_height"`
	Seed      int64   `yaml:"seed"`

	PondCount    int `yaml:"pond_count"`
	PondSize     int `yaml:"pond_size"`
	ThicketCount int `yaml:"thicket_count"`
	ThicketSize  int `yaml:"thicket_size"`
}

type SimulationConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	DeerCount      int `yaml:"deer_count"`
}

// HuntingConfig tunes the shot pipeline and the wounding rules.
type HuntingConfig struct {
	RifleRange float64 `yaml:"rifle_range"`

	// Shot-angle classification thresholds, degrees (search: shot-angle).
	FrontalAngle float64 `yaml:"frontal_angle"`
	RearAngle    float64 `yaml:"rear_angle"`

	// |dot(targetForward, toShooter)| below this counts as broadside
	// for lung disambiguation. Narrower than the frontal/rear split.
	BroadsideDot float64 `yaml:"broadside_dot"`

	// Cumulative non-fatal wounds that force a kill.
	ThreeStrikeLimit int `yaml:"three_strike_limit"`

	// A bedded wounded deer is jumped back into flight when the hunter
	// closes within this radius.
	JumpRadius float64 `yaml:"jump_radius"`
}

type DeerAIConfig struct {
	AlertRadius   float64 `yaml:"alert_radius"`
	FleeRadius    float64 `yaml:"flee_radius"`
	FleeDuration  float64 `yaml:"flee_duration"`
	WanderSpeed   float64 `yaml:"wander_speed"`
	FleeSpeed     float64 `yaml:"flee_speed"`
	WoundRunSpeed float64 `yaml:"wound_run_speed"`
	GrazeChance   float64 `yaml:"graze_chance"`
	ThirstChance  float64 `yaml:"thirst_chance"`
	DrinkDuration float64 `yaml:"drink_duration"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Default returns a configuration usable without a config.yaml, primarily
// for tests and headless runs.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 1280
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 800
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Whitetail"
	}
	if c.World.TileSize <= 0 {
		c.World.TileSize = 8
	}
	if c.World.MapWidth <= 0 {
		c.World.MapWidth = 128
	}
	if c.World.MapHeight <= 0 {
		c.World.MapHeight = 128
	}
	if c.World.PondCount <= 0 {
		c.World.PondCount = 2
	}
	if c.World.PondSize <= 0 {
		c.World.PondSize = 5
	}
	if c.World.ThicketCount <= 0 {
		c.World.ThicketCount = 6
	}
	if c.World.ThicketSize <= 0 {
		c.World.ThicketSize = 4
	}
	if c.Simulation.TicksPerSecond <= 0 {
		c.Simulation.TicksPerSecond = 60
	}
	if c.Simulation.DeerCount <= 0 {
		c.Simulation.DeerCount = 8
	}
	if c.Hunting.RifleRange <= 0 {
		c.Hunting.RifleRange = 300
	}
	if c.Hunting.FrontalAngle <= 0 {
		c.Hunting.FrontalAngle = 135
	}
	if c.Hunting.RearAngle <= 0 {
		c.Hunting.RearAngle = 45
	}
	if c.Hunting.BroadsideDot <= 0 {
		c.Hunting.BroadsideDot = 0.5
	}
	if c.Hunting.ThreeStrikeLimit <= 0 {
		c.Hunting.ThreeStrikeLimit = 3
	}
	if c.Hunting.JumpRadius <= 0 {
		c.Hunting.JumpRadius = 15
	}
	if c.DeerAI.AlertRadius <= 0 {
		c.DeerAI.AlertRadius = 60
	}
	if c.DeerAI.FleeRadius <= 0 {
		c.DeerAI.FleeRadius = 30
	}
	if c.DeerAI.FleeDuration <= 0 {
		c.DeerAI.FleeDuration = 8
	}
	if c.DeerAI.WanderSpeed <= 0 {
		c.DeerAI.WanderSpeed = 2.5
	}
	if c.DeerAI.FleeSpeed <= 0 {
		c.DeerAI.FleeSpeed = 9
	}
	if c.DeerAI.WoundRunSpeed <= 0 {
		c.DeerAI.WoundRunSpeed = 8
	}
	if c.DeerAI.GrazeChance <= 0 {
		c.DeerAI.GrazeChance = 0.4
	}
	if c.DeerAI.ThirstChance <= 0 {
		c.DeerAI.ThirstChance = 0.2
	}
	if c.DeerAI.DrinkDuration <= 0 {
		c.DeerAI.DrinkDuration = 6
	}
}

// GetTPS returns the configured simulation tick rate.
func (c *Config) GetTPS() int {
	if c == nil || c.Simulation.TicksPerSecond <= 0 {
		return 60
	}
	return c.Simulation.TicksPerSecond
}

// GetScreenWidth returns the configured screen width.
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

// GetScreenHeight returns the configured screen height.
func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

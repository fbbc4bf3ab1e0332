package wound

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileDefinition holds the configuration for a wound category from YAML
type ProfileDefinition struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	MinDistance     float64 `yaml:"min_distance"`
	MaxDistance     float64 `yaml:"max_distance"`
	EnergyDrainRate float64 `yaml:"energy_drain_rate"`
	BleedRate       float64 `yaml:"bleed_rate"`
	Pattern         string  `yaml:"movement_pattern"`

	SeeksWater      bool `yaml:"seeks_water"`
	SeeksCover      bool `yaml:"seeks_cover"`
	CanBed          bool `yaml:"can_bed"`
	LooksBack       bool `yaml:"looks_back"`
	IsLimping       bool `yaml:"is_limping"`
	Recovers        bool `yaml:"recovers"`
	PrefersDownhill bool `yaml:"prefers_downhill"`
	StopStart       bool `yaml:"stop_start"`

	SurvivalChance float64 `yaml:"survival_chance"`
	WobbleAmount   float64 `yaml:"wobble_amount"`
}

type catalogFile struct {
	Wounds map[string]ProfileDefinition `yaml:"wounds"`
}

// parseType maps a YAML key to its wound type.
func parseType(name string) (Type, error) {
	for t := Heart; t <= Generic; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return Generic, fmt.Errorf("unknown wound type %q", name)
}

// parsePattern maps a YAML movement-pattern name to its enum value.
func parsePattern(name string) (MovementPattern, error) {
	for p := PatternStraight; p <= PatternDeliberate; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return PatternStraight, fmt.Errorf("unknown movement pattern %q", name)
}

// LoadCatalog loads the wound catalogue from a YAML file, layered over the
// built-in defaults so a partial file only overrides what it names.
func LoadCatalog(filename string) (ProfileTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read wound catalogue: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wound catalogue YAML: %w", err)
	}

	table := DefaultProfiles()
	for name, def := range file.Wounds {
		typ, err := parseType(name)
		if err != nil {
			return nil, err
		}
		pattern, err := parsePattern(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("wound %q: %w", name, err)
		}
		if def.MaxDistance < def.MinDistance {
			return nil, fmt.Errorf("wound %q: max_distance %.0f below min_distance %.0f",
				name, def.MaxDistance, def.MinDistance)
		}
		table[typ] = &Profile{
			Name:            name,
			SpeedMultiplier: def.SpeedMultiplier,
			MinDistance:     def.MinDistance,
			MaxDistance:     def.MaxDistance,
			EnergyDrainRate: def.EnergyDrainRate,
			BleedRate:       def.BleedRate,
			Pattern:         pattern,
			SeeksWater:      def.SeeksWater,
			SeeksCover:      def.SeeksCover,
			CanBed:          def.CanBed,
			LooksBack:       def.LooksBack,
			IsLimping:       def.IsLimping,
			Recovers:        def.Recovers,
			PrefersDownhill: def.PrefersDownhill,
			StopStart:       def.StopStart,
			SurvivalChance:  def.SurvivalChance,
			WobbleAmount:    def.WobbleAmount,
		}
	}

	return table, nil
}

// MustLoadCatalog loads the wound catalogue and panics on error.
func MustLoadCatalog(filename string) ProfileTable {
	table, err := LoadCatalog(filename)
	if err != nil {
		panic("Failed to load wound catalogue: " + err.Error())
	}
	return table
}

package wound

// Type identifies one category of non-instant-kill damage.
type Type int

const (
	Heart Type = iota
	DoubleLung
	SingleLung
	Liver
	Gut
	Muscle
	Shoulder
	Generic
)

func (t Type) String() string {
	switch t {
	case Heart:
		return "heart"
	case DoubleLung:
		return "double_lung"
	case SingleLung:
		return "single_lung"
	case Liver:
		return "liver"
	case Gut:
		return "gut"
	case Muscle:
		return "muscle"
	case Shoulder:
		return "shoulder"
	case Generic:
		return "generic"
	default:
		return "unknown"
	}
}

// MovementPattern selects how a wounded deer covers ground while fleeing.
type MovementPattern int

const (
	PatternStraight MovementPattern = iota
	PatternArc
	PatternErratic
	PatternDeliberate
)

func (p MovementPattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternArc:
		return "arc"
	case PatternErratic:
		return "erratic"
	case PatternDeliberate:
		return "deliberate"
	default:
		return "unknown"
	}
}

// Profile is the static parameter set governing one wound category.
// Profiles are constructed once at startup and shared by reference.
type Profile struct {
	Name            string
	SpeedMultiplier float64
	MinDistance     float64
	MaxDistance     float64
	EnergyDrainRate float64 // energy per second
	BleedRate       float64 // blood drops per second
	Pattern         MovementPattern

	SeeksWater      bool
	SeeksCover      bool
	CanBed          bool
	LooksBack       bool
	IsLimping       bool
	Recovers        bool
	PrefersDownhill bool
	StopStart       bool

	// SurvivalChance is a probability density factor, not a single-shot
	// probability: it gates distance-collapse and scales recovery rolls.
	SurvivalChance float64

	// WobbleAmount is the visual distress baseline; 0 disables wobble.
	WobbleAmount float64
}

// SeeksTarget reports whether applying this wound should resolve a
// water/cover target location.
func (p *Profile) SeeksTarget() bool {
	return p.SeeksWater || p.SeeksCover || p.CanBed
}

// ProfileTable maps each wound type to its profile. Every Type has an entry.
type ProfileTable map[Type]*Profile

// ProfileFor returns the profile for a wound type, falling back to the
// generic profile for anything unrecognized. Never returns nil for a
// table produced by DefaultProfiles or LoadCatalog.
func (t ProfileTable) ProfileFor(typ Type) *Profile {
	if p, ok := t[typ]; ok {
		return p
	}
	return t[Generic]
}

// DefaultProfiles returns the built-in wound catalogue. Values can be
// overridden by assets/wounds.yaml; the defaults keep the simulation
// functional when the file is absent.
func DefaultProfiles() ProfileTable {
	return ProfileTable{
		Heart: {
			Name:            "heart",
			SpeedMultiplier: 1.3,
			MinDistance:     20,
			MaxDistance:     80,
			EnergyDrainRate: 35,
			BleedRate:       3.0,
			Pattern:         PatternStraight,
			SurvivalChance:  0,
			WobbleAmount:    0.4,
		},
		DoubleLung: {
			Name:            "double_lung",
			SpeedMultiplier: 1.2,
			MinDistance:     30,
			MaxDistance:     120,
			EnergyDrainRate: 25,
			BleedRate:       2.5,
			Pattern:         PatternStraight,
			SurvivalChance:  0,
			WobbleAmount:    0.5,
		},
		SingleLung: {
			Name:            "single_lung",
			SpeedMultiplier: 1.0,
			MinDistance:     100,
			MaxDistance:     400,
			EnergyDrainRate: 4,
			BleedRate:       1.2,
			Pattern:         PatternArc,
			SeeksCover:      true,
			CanBed:          true,
			LooksBack:       true,
			StopStart:       true,
			SurvivalChance:  0.2,
			WobbleAmount:    0.8,
		},
		Liver: {
			Name:            "liver",
			SpeedMultiplier: 0.8,
			MinDistance:     150,
			MaxDistance:     450,
			EnergyDrainRate: 3,
			BleedRate:       0.8,
			Pattern:         PatternDeliberate,
			SeeksCover:      true,
			CanBed:          true,
			LooksBack:       true,
			StopStart:       true,
			PrefersDownhill: true,
			SurvivalChance:  0.1,
			WobbleAmount:    1.0,
		},
		Gut: {
			Name:            "gut",
			SpeedMultiplier: 0.6,
			MinDistance:     200,
			MaxDistance:     500,
			EnergyDrainRate: 2,
			BleedRate:       0.5,
			Pattern:         PatternDeliberate,
			SeeksWater:      true,
			CanBed:          true,
			LooksBack:       true,
			StopStart:       true,
			PrefersDownhill: true,
			SurvivalChance:  0.6,
			WobbleAmount:    1.2,
		},
		Muscle: {
			Name:            "muscle",
			SpeedMultiplier: 1.4,
			MinDistance:     400,
			MaxDistance:     900,
			EnergyDrainRate: 0.5,
			BleedRate:       0.3,
			Pattern:         PatternErratic,
			LooksBack:       true,
			IsLimping:       true,
			Recovers:        true,
			StopStart:       true,
			SurvivalChance:  0.3,
			WobbleAmount:    0.3,
		},
		Shoulder: {
			Name:            "shoulder",
			SpeedMultiplier: 0.5,
			MinDistance:     80,
			MaxDistance:     300,
			EnergyDrainRate: 1.5,
			BleedRate:       0.6,
			Pattern:         PatternDeliberate,
			SeeksCover:      true,
			CanBed:          true,
			LooksBack:       true,
			IsLimping:       true,
			SurvivalChance:  0.15,
			WobbleAmount:    0.9,
		},
		Generic: {
			Name:            "generic",
			SpeedMultiplier: 1.0,
			MinDistance:     200,
			MaxDistance:     600,
			EnergyDrainRate: 1.0,
			BleedRate:       0.4,
			Pattern:         PatternStraight,
			Recovers:        true,
			SurvivalChance:  0.5,
			WobbleAmount:    0.5,
		},
	}
}

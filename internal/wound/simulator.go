package wound

import (
	"math"
	"math/rand"

	"whitetail/internal/mathutil"
)

// Result is the terminal outcome of one simulation tick.
type Result int

const (
	ResultNone Result = iota
	ResultKilled
	ResultBedded
	ResultRecovered
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultKilled:
		return "killed"
	case ResultBedded:
		return "bedded"
	case ResultRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

const (
	maxEnergy = 100.0

	// Post-injury adrenaline window for recovering profiles (seconds),
	// and the fixed speed adjustment once it expires.
	adrenalineDuration  = 30.0
	postAdrenalineSpeed = 0.6

	// Stop/start behavior: gate distance, per-second entry chance,
	// and the uniform stop-phase duration bounds (seconds).
	stopGateDistance   = 30.0
	stopChancePerSec   = 0.10
	stopDurationMin    = 2.0
	stopDurationExtent = 4.0

	// Bedding.
	bedChancePerSec     = 0.05
	bedNearCoverFactor  = 3.0
	bedNearCoverRadius  = 20.0
	beddingFractionMin  = 0.3
	beddingFractionSpan = 0.4

	// Recovery rolls, scaled by the profile's survival chance.
	recoverChancePerSec = 0.02

	// Target seeking blends the flee direction toward the target.
	blendBase          = 0.5
	blendBaseWater     = 0.8
	blendEnergyWeight  = 0.3
	blendApproachBonus = 0.2
	approachRadius     = 50.0
	arriveRadius       = 10.0

	// Wobble sinusoid.
	wobbleFrequency = 6.0

	// Look-back window (distance units).
	lookBackMin = 20.0
	lookBackMax = 40.0

	// Arc pattern rotation per tick, radians.
	arcAngleMin  = 0.01
	arcAngleSpan = 0.02

	survivalCollapseBar = 0.5
)

// Simulator is the per-wounded-target time-stepped state machine: energy
// drain, movement pattern, bedding/collapse/recovery decisions. One live
// instance exists per actively-wounded target; applying a new wound fully
// resets it.
type Simulator struct {
	rng    *rand.Rand
	seeker *Seeker

	profile *Profile
	applied bool

	energy           float64
	distanceTraveled float64
	lastPosition     mathutil.Vec3
	timeSinceWound   float64

	isBedded  bool
	stopped   bool
	stopTimer float64

	adrenalineTimer float64
	speedAdjust     float64

	wobbleOffset float64

	fleeDirection mathutil.Vec3
	arcAngle      float64

	targetLocation mathutil.Vec3
	hasTarget      bool
	reachedTarget  bool

	// Resolved exactly once, lazily, and held constant thereafter.
	maxTravelDistance float64
	maxTravelResolved bool
	beddingDistance   float64
	beddingResolved   bool

	lookedBack bool
}

// NewSimulator builds a simulator drawing all randomness from rng.
// The seeker may be nil, which disables water/cover target seeking.
func NewSimulator(rng *rand.Rand, seeker *Seeker) *Simulator {
	return &Simulator{rng: rng, seeker: seeker}
}

// Profile returns the active wound profile, or nil before any wound.
func (s *Simulator) Profile() *Profile {
	return s.profile
}

// Energy returns remaining energy in [0, 100].
func (s *Simulator) Energy() float64 {
	return s.energy
}

// DistanceTraveled returns the accumulated movement since the wound.
func (s *Simulator) DistanceTraveled() float64 {
	return s.distanceTraveled
}

// IsBedded reports whether the target has bedded down.
func (s *Simulator) IsBedded() bool {
	return s.isBedded
}

// TargetLocation returns the resolved water/cover point, if any.
func (s *Simulator) TargetLocation() (mathutil.Vec3, bool) {
	return s.targetLocation, s.hasTarget
}

// ApplyWound resets the full wound state for a fresh profile. A new wound
// always supersedes a prior one.
func (s *Simulator) ApplyWound(profile *Profile, hitPoint, shooterPos, targetPos mathutil.Vec3) {
	s.profile = profile
	s.applied = true

	s.energy = maxEnergy
	s.distanceTraveled = 0
	s.lastPosition = targetPos
	s.timeSinceWound = 0
	s.isBedded = false
	s.stopped = false
	s.stopTimer = 0
	s.wobbleOffset = 0
	s.speedAdjust = 1.0
	s.reachedTarget = false
	s.hasTarget = false
	s.maxTravelResolved = false
	s.beddingResolved = false
	s.lookedBack = false

	s.fleeDirection = targetPos.Sub(shooterPos).FlattenXZ().Normalized()
	if s.fleeDirection.IsZero() {
		yaw := s.rng.Float64() * 2 * math.Pi
		s.fleeDirection = mathutil.YawForward(yaw)
	}

	s.adrenalineTimer = 0
	if profile.Recovers {
		s.adrenalineTimer = adrenalineDuration
	}

	s.arcAngle = 0
	if profile.Pattern == PatternArc {
		s.arcAngle = arcAngleMin + s.rng.Float64()*arcAngleSpan
		if s.rng.Intn(2) == 0 {
			s.arcAngle = -s.arcAngle
		}
	}

	if profile.SeeksTarget() && s.seeker != nil {
		if target, ok := s.seeker.FindTargetLocation(profile, targetPos, shooterPos, s.fleeDirection); ok {
			s.targetLocation = target
			s.hasTarget = true
		}
	}
}

// Reset discards all wound state, e.g. on respawn.
func (s *Simulator) Reset() {
	*s = Simulator{rng: s.rng, seeker: s.seeker}
}

// Rouse clears a bedded state and points the flee direction away from the
// given position. Used when a hunter jumps a bedded animal.
func (s *Simulator) Rouse(awayFrom mathutil.Vec3) {
	if !s.applied {
		return
	}
	s.isBedded = false
	s.stopped = false
	dir := s.lastPosition.Sub(awayFrom).FlattenXZ().Normalized()
	if !dir.IsZero() {
		s.fleeDirection = dir
	}
}

// maxTravel resolves the collapse distance once, uniformly between the
// profile's min and max distance, and holds it fixed thereafter.
func (s *Simulator) maxTravel() float64 {
	if !s.maxTravelResolved {
		s.maxTravelDistance = s.profile.MinDistance +
			s.rng.Float64()*(s.profile.MaxDistance-s.profile.MinDistance)
		s.maxTravelResolved = true
	}
	return s.maxTravelDistance
}

// bedDistance resolves the earliest bedding distance once.
func (s *Simulator) bedDistance() float64 {
	if !s.beddingResolved {
		s.beddingDistance = s.profile.MinDistance *
			(beddingFractionMin + s.rng.Float64()*beddingFractionSpan)
		s.beddingResolved = true
	}
	return s.beddingDistance
}

// Update advances the wound by delta seconds. moved is the distance the
// movement consumer actually covered since the last tick; position is the
// target's current location. Calling Update before ApplyWound is a no-op.
func (s *Simulator) Update(delta, moved float64, position mathutil.Vec3) Result {
	if !s.applied || delta <= 0 {
		return ResultNone
	}

	s.timeSinceWound += delta
	s.distanceTraveled += moved
	s.lastPosition = position

	s.energy -= s.profile.EnergyDrainRate * delta
	if s.energy < 0 {
		s.energy = 0
	}

	if s.adrenalineTimer > 0 {
		s.adrenalineTimer -= delta
		if s.adrenalineTimer <= 0 {
			s.adrenalineTimer = 0
			s.speedAdjust = postAdrenalineSpeed
		}
	}

	if s.profile.StopStart {
		if s.stopped {
			s.stopTimer -= delta
			if s.stopTimer <= 0 {
				s.stopped = false
			}
		} else if s.distanceTraveled > stopGateDistance &&
			s.rng.Float64() < stopChancePerSec*delta {
			s.stopped = true
			s.stopTimer = stopDurationMin + s.rng.Float64()*stopDurationExtent
		}
	}

	if s.profile.WobbleAmount > 0 {
		// Distress amplitude grows as energy falls.
		amplitude := s.profile.WobbleAmount * (1 + (maxEnergy-s.energy)/maxEnergy)
		s.wobbleOffset = math.Sin(s.timeSinceWound*wobbleFrequency) * amplitude
	}

	// Terminal conditions, strict priority: collapse, bedding, recovery.
	if s.energy <= 0 {
		return ResultKilled
	}
	if s.distanceTraveled >= s.maxTravel() && s.profile.SurvivalChance < survivalCollapseBar {
		return ResultKilled
	}

	if s.profile.CanBed && !s.isBedded {
		if s.distanceTraveled >= s.profile.MaxDistance || s.reachedTarget {
			s.isBedded = true
			return ResultBedded
		}
		if s.distanceTraveled >= s.bedDistance() && s.profile.MinDistance > 0 {
			chance := (s.distanceTraveled / s.profile.MinDistance) * bedChancePerSec * delta
			if s.nearCover() {
				chance *= bedNearCoverFactor
			}
			if s.rng.Float64() < chance {
				s.isBedded = true
				return ResultBedded
			}
		}
	}

	// A bedded animal rests until it dies or is jumped; recovery rolls
	// only run while it is still on its feet.
	if s.profile.Recovers && !s.isBedded && s.adrenalineTimer <= 0 {
		if s.rng.Float64() < recoverChancePerSec*s.profile.SurvivalChance*delta {
			return ResultRecovered
		}
	}

	return ResultNone
}

// nearCover reports whether the resolved target is recognized cover close by.
func (s *Simulator) nearCover() bool {
	if !s.hasTarget || !s.profile.SeeksCover {
		return false
	}
	return s.lastPosition.DistanceXZ(s.targetLocation) <= bedNearCoverRadius
}

// MovementDirection returns the unit direction the target should flee in
// this tick, blending toward a resolved water/cover target and applying
// the arc pattern's incremental rotation. Zero once bedded, stopped at
// the target, or before any wound.
func (s *Simulator) MovementDirection() mathutil.Vec3 {
	if !s.applied || s.isBedded || s.reachedTarget {
		return mathutil.Vec3{}
	}

	if s.profile.Pattern == PatternArc {
		s.fleeDirection = s.fleeDirection.RotateY(s.arcAngle).Normalized()
	}

	dir := s.fleeDirection
	if s.hasTarget {
		distToTarget := s.lastPosition.DistanceXZ(s.targetLocation)
		if distToTarget <= arriveRadius {
			// Arrived: stop moving and bed on the next update.
			s.reachedTarget = true
			return mathutil.Vec3{}
		}

		blend := blendBase
		if s.profile.SeeksWater {
			blend = blendBaseWater
		}
		blend += (maxEnergy - s.energy) / maxEnergy * blendEnergyWeight
		if distToTarget <= approachRadius {
			blend += blendApproachBonus
		}
		blend = mathutil.Clamp(blend, 0, 1)

		toTarget := s.targetLocation.Sub(s.lastPosition).FlattenXZ().Normalized()
		dir = s.fleeDirection.Scale(1 - blend).Add(toTarget.Scale(blend)).Normalized()
	}

	return dir
}

// SpeedMultiplier returns the current speed factor: zero during a stop
// phase, near-constant for deliberate movers, energy-proportional for
// everything else, scaled by the profile's base multiplier and any
// post-adrenaline adjustment.
func (s *Simulator) SpeedMultiplier() float64 {
	if !s.applied || s.stopped || s.isBedded || s.reachedTarget {
		return 0
	}

	energyFrac := s.energy / maxEnergy
	if s.profile.Pattern == PatternDeliberate {
		return s.profile.SpeedMultiplier * (0.8 + 0.2*energyFrac) * s.speedAdjust
	}
	return s.profile.SpeedMultiplier * (0.3 + 0.7*energyFrac) * s.speedAdjust
}

// Wobble returns the current visual distress offset.
func (s *Simulator) Wobble() float64 {
	return s.wobbleOffset
}

// BloodDropInterval returns the seconds between blood drops for the
// visual-effects collaborator. +Inf when the profile does not bleed.
func (s *Simulator) BloodDropInterval() float64 {
	if !s.applied || s.profile.BleedRate <= 0 {
		return math.Inf(1)
	}
	return 1 / s.profile.BleedRate
}

// ShouldLookBack is one-shot true the first time a looks-back profile's
// travel distance falls inside the look-back window.
func (s *Simulator) ShouldLookBack() bool {
	if !s.applied || !s.profile.LooksBack || s.lookedBack {
		return false
	}
	if s.distanceTraveled > lookBackMin && s.distanceTraveled < lookBackMax {
		s.lookedBack = true
		return true
	}
	return false
}

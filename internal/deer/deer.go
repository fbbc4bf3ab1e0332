package deer

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"whitetail/internal/config"
	"whitetail/internal/mathutil"
	"whitetail/internal/shot"
	"whitetail/internal/wound"
)

// BehaviorState is the deer's top-level behavioral state.
type BehaviorState int

const (
	StateIdle BehaviorState = iota
	StateWandering
	StateThirsty
	StateGrazing
	StateDrinking
	StateAlert
	StateFleeing
	StateWounded
	StateBedded
	StateKilled
	StateRecovered
)

func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWandering:
		return "wandering"
	case StateThirsty:
		return "thirsty"
	case StateGrazing:
		return "grazing"
	case StateDrinking:
		return "drinking"
	case StateAlert:
		return "alert"
	case StateFleeing:
		return "fleeing"
	case StateWounded:
		return "wounded"
	case StateBedded:
		return "bedded"
	case StateKilled:
		return "killed"
	case StateRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// WoundSim is the slice of the wound simulator the state machine needs.
// The deer owns zero or one of these through this interface.
type WoundSim interface {
	ApplyWound(profile *wound.Profile, hitPoint, shooterPos, targetPos mathutil.Vec3)
	Update(delta, moved float64, position mathutil.Vec3) wound.Result
	MovementDirection() mathutil.Vec3
	SpeedMultiplier() float64
	Wobble() float64
	BloodDropInterval() float64
	ShouldLookBack() bool
	Rouse(awayFrom mathutil.Vec3)
	Reset()
}

// MovementEnv lets the deer move through the world. A nil env permits all
// movement on a flat plane.
type MovementEnv interface {
	CanMoveTo(x, z float64) bool
	HeightAt(x, z float64) float64
}

// HitResult summarizes what one shot did to this deer, for the scoring
// collaborator.
type HitResult struct {
	Zone        shot.Zone
	Fatal       bool
	ThreeStrike bool
	Wounded     bool
	Wound       wound.Type
}

// Deer is one animal target: position, facing, behavioral state machine,
// and at most one live wound simulation.
type Deer struct {
	ID        string
	Position  mathutil.Vec3
	FacingYaw float64

	State      BehaviorState
	StateTimer float64
	WoundCount int
	Tagged     bool

	sim      WoundSim
	rng      *rand.Rand
	cfg      *config.Config
	profiles wound.ProfileTable
	seeker   *wound.Seeker

	spawn          mathutil.Vec3
	wanderYaw      float64
	drinkTarget    mathutil.Vec3
	hasDrinkTarget bool
	lookingBack    bool
}

// New creates a deer at the given position. The seeker may be nil.
func New(pos mathutil.Vec3, yaw float64, cfg *config.Config, profiles wound.ProfileTable, seeker *wound.Seeker, rng *rand.Rand) *Deer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Deer{
		ID:        uuid.NewString(),
		Position:  pos,
		FacingYaw: yaw,
		State:     StateIdle,
		rng:       rng,
		cfg:       cfg,
		profiles:  profiles,
		seeker:    seeker,
		spawn:     pos,
		wanderYaw: yaw,
	}
}

// Sim exposes the live wound simulator, or nil when unwounded. Movement
// and effects consumers read wobble and blood-drop pacing through it.
func (d *Deer) Sim() WoundSim {
	return d.sim
}

// IsAlive reports whether the deer can still be hunted.
func (d *Deer) IsAlive() bool {
	return d.State != StateKilled
}

// LookingBack reports whether the deer is in its one-shot look-back pose.
func (d *Deer) LookingBack() bool {
	return d.lookingBack
}

func (d *Deer) transitionTo(state BehaviorState) {
	d.State = state
	d.StateTimer = 0
}

// Respawn discards all wound and behavioral state and places the deer at
// the given position.
func (d *Deer) Respawn(pos mathutil.Vec3) {
	d.Position = pos
	d.spawn = pos
	d.WoundCount = 0
	d.Tagged = false
	d.lookingBack = false
	d.hasDrinkTarget = false
	if d.sim != nil {
		d.sim.Reset()
	}
	d.transitionTo(StateIdle)
}

// ApplyShot applies a resolved, classified shot to this deer. A lethal
// vitals/head classification kills outright with no wound state; a
// non-lethal damaging hit wounds (or kills on the third cumulative wound);
// a clean miss spooks any passive deer into flight.
func (d *Deer) ApplyShot(outcome shot.HitOutcome, class shot.Classification, shooterPos mathutil.Vec3) HitResult {
	if d.State == StateKilled {
		return HitResult{Zone: shot.ZoneNone}
	}

	if outcome.Zone == shot.ZoneNone {
		if d.State != StateWounded && d.State != StateBedded {
			d.fleeFrom(shooterPos)
			d.transitionTo(StateFleeing)
		}
		return HitResult{Zone: shot.ZoneNone}
	}

	if outcome.Zone == shot.ZoneHead ||
		(outcome.Zone == shot.ZoneVitals && class.LethalForVitals()) {
		d.kill()
		return HitResult{Zone: outcome.Zone, Fatal: true}
	}

	// Rear-raking vitals hits are non-lethal hindquarter wounds.
	zone := outcome.Zone
	if zone == shot.ZoneVitals {
		zone = shot.ZoneRear
	}

	woundType := shot.AssignWound(zone, outcome.LocalOffset, class)
	d.WoundCount++

	limit := d.cfg.Hunting.ThreeStrikeLimit
	if limit <= 0 {
		limit = 3
	}
	if d.WoundCount >= limit {
		d.kill()
		return HitResult{Zone: zone, Fatal: true, ThreeStrike: true, Wound: woundType}
	}

	if d.sim == nil {
		d.sim = wound.NewSimulator(d.rng, d.seeker)
	}
	profile := d.profiles.ProfileFor(woundType)
	d.sim.ApplyWound(profile, outcome.Point, shooterPos, d.Position)
	d.lookingBack = false
	d.transitionTo(StateWounded)

	return HitResult{Zone: zone, Wounded: true, Wound: woundType}
}

func (d *Deer) kill() {
	d.transitionTo(StateKilled)
	if d.sim != nil {
		d.sim.Reset()
	}
}

func (d *Deer) fleeFrom(threat mathutil.Vec3) {
	away := d.Position.Sub(threat).FlattenXZ()
	if away.IsZero() {
		d.wanderYaw = d.rng.Float64() * 2 * math.Pi
		return
	}
	d.wanderYaw = math.Atan2(away.X, away.Z)
}

// Update advances the deer by delta seconds. hunterPos is the current
// hunter position; env supplies terrain and movement checks.
func (d *Deer) Update(delta float64, hunterPos mathutil.Vec3, env MovementEnv) {
	if delta <= 0 || d.State == StateKilled {
		return
	}
	d.StateTimer += delta

	switch d.State {
	case StateWounded:
		d.updateWounded(delta, env)
	case StateBedded:
		d.updateBedded(delta, hunterPos)
	case StateRecovered:
		// Brief settling pause, then back to ordinary wandering.
		if d.StateTimer > 2 {
			d.transitionTo(StateWandering)
		}
	case StateIdle:
		d.updateIdle(hunterPos)
	case StateWandering:
		d.updateWandering(delta, hunterPos, env)
	case StateGrazing:
		d.watchForHunter(hunterPos)
		if d.State == StateGrazing && d.StateTimer > 10 {
			d.transitionTo(StateIdle)
		}
	case StateThirsty:
		d.updateThirsty(delta, hunterPos, env)
	case StateDrinking:
		d.watchForHunter(hunterPos)
		if d.State == StateDrinking && d.StateTimer > d.cfg.DeerAI.DrinkDuration {
			d.transitionTo(StateIdle)
		}
	case StateAlert:
		d.updateAlert(hunterPos)
	case StateFleeing:
		d.updateFleeing(delta, hunterPos, env)
	}
}

// updateWounded runs one wound-simulation tick: read direction and speed,
// move, report the actual distance covered back into the simulator, and
// act on any terminal result.
func (d *Deer) updateWounded(delta float64, env MovementEnv) {
	dir := d.sim.MovementDirection()
	speed := d.sim.SpeedMultiplier() * d.cfg.DeerAI.WoundRunSpeed

	moved := 0.0
	if !dir.IsZero() && speed > 0 {
		moved = d.tryMove(env, dir, speed*delta)
		if moved > 0 {
			d.FacingYaw = math.Atan2(dir.X, dir.Z)
		}
	}

	if d.sim.ShouldLookBack() {
		d.lookingBack = true
	}

	switch d.sim.Update(delta, moved, d.Position) {
	case wound.ResultKilled:
		d.kill()
	case wound.ResultBedded:
		d.transitionTo(StateBedded)
	case wound.ResultRecovered:
		d.transitionTo(StateRecovered)
	}
}

// updateBedded keeps the wound draining while the animal rests. A hunter
// closing inside the jump radius rouses it back into flight.
func (d *Deer) updateBedded(delta float64, hunterPos mathutil.Vec3) {
	if d.Position.DistanceXZ(hunterPos) <= d.cfg.Hunting.JumpRadius {
		d.sim.Rouse(hunterPos)
		d.transitionTo(StateWounded)
		return
	}
	if d.sim.Update(delta, 0, d.Position) == wound.ResultKilled {
		d.kill()
	}
}

func (d *Deer) updateIdle(hunterPos mathutil.Vec3) {
	if d.watchForHunter(hunterPos) {
		return
	}
	if d.StateTimer < 2 {
		return
	}
	roll := d.rng.Float64()
	switch {
	case roll < d.cfg.DeerAI.ThirstChance:
		d.hasDrinkTarget = false
		d.transitionTo(StateThirsty)
	case roll < d.cfg.DeerAI.ThirstChance+d.cfg.DeerAI.GrazeChance:
		d.transitionTo(StateGrazing)
	default:
		d.wanderYaw = d.rng.Float64() * 2 * math.Pi
		d.transitionTo(StateWandering)
	}
}

func (d *Deer) updateWandering(delta float64, hunterPos mathutil.Vec3, env MovementEnv) {
	if d.watchForHunter(hunterPos) {
		return
	}
	// Drift the heading a little so paths meander.
	d.wanderYaw += (d.rng.Float64() - 0.5) * 0.5 * delta
	dir := mathutil.YawForward(d.wanderYaw)
	if d.tryMove(env, dir, d.cfg.DeerAI.WanderSpeed*delta) > 0 {
		d.FacingYaw = d.wanderYaw
	} else {
		d.wanderYaw = d.rng.Float64() * 2 * math.Pi
	}
	if d.StateTimer > 12 {
		d.transitionTo(StateIdle)
	}
}

func (d *Deer) updateThirsty(delta float64, hunterPos mathutil.Vec3, env MovementEnv) {
	if d.watchForHunter(hunterPos) {
		return
	}
	if !d.hasDrinkTarget {
		target, ok := d.seeker.FindNearestWater(d.Position)
		if !ok {
			// No water anywhere in range; give up and wander.
			d.transitionTo(StateWandering)
			return
		}
		d.drinkTarget = target
		d.hasDrinkTarget = true
	}

	toWater := d.drinkTarget.Sub(d.Position).FlattenXZ()
	if toWater.Length() < 2 {
		d.transitionTo(StateDrinking)
		return
	}
	dir := toWater.Normalized()
	if d.tryMove(env, dir, d.cfg.DeerAI.WanderSpeed*delta) > 0 {
		d.FacingYaw = math.Atan2(dir.X, dir.Z)
	}
}

func (d *Deer) updateAlert(hunterPos mathutil.Vec3) {
	dist := d.Position.DistanceXZ(hunterPos)
	if dist <= d.cfg.DeerAI.FleeRadius {
		d.fleeFrom(hunterPos)
		d.transitionTo(StateFleeing)
		return
	}
	// Hysteresis: relax only once the hunter has clearly backed off.
	if dist > d.cfg.DeerAI.AlertRadius*1.5 {
		d.transitionTo(StateIdle)
	}
}

func (d *Deer) updateFleeing(delta float64, hunterPos mathutil.Vec3, env MovementEnv) {
	d.fleeFrom(hunterPos)
	dir := mathutil.YawForward(d.wanderYaw)
	if d.tryMove(env, dir, d.cfg.DeerAI.FleeSpeed*delta) > 0 {
		d.FacingYaw = d.wanderYaw
	}
	if d.StateTimer > d.cfg.DeerAI.FleeDuration {
		d.transitionTo(StateAlert)
	}
}

// watchForHunter moves any passive state to alert when the hunter gets
// close. Returns true when a transition happened.
func (d *Deer) watchForHunter(hunterPos mathutil.Vec3) bool {
	if d.Position.DistanceXZ(hunterPos) <= d.cfg.DeerAI.AlertRadius {
		d.transitionTo(StateAlert)
		return true
	}
	return false
}

// tryMove attempts to cover dist along dir and returns the distance
// actually covered. Height follows the terrain.
func (d *Deer) tryMove(env MovementEnv, dir mathutil.Vec3, dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	newX := d.Position.X + dir.X*dist
	newZ := d.Position.Z + dir.Z*dist
	if env != nil && !env.CanMoveTo(newX, newZ) {
		return 0
	}
	d.Position.X = newX
	d.Position.Z = newZ
	if env != nil {
		d.Position.Y = env.HeightAt(newX, newZ)
	}
	return dist
}

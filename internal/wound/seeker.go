package wound

import (
	"math"

	"whitetail/internal/mathutil"
)

// Terrain answers height queries. A nil Terrain degrades to height 0.
type Terrain interface {
	HeightAt(x, z float64) float64
}

// Water answers point-in-water queries. A nil Water makes water seeking
// a no-op rather than an error.
type Water interface {
	IsWaterAt(x, z float64) bool
}

// CoverRegistry exposes the known cover anchor positions.
type CoverRegistry interface {
	CoverAnchors() []mathutil.Vec3
}

const (
	// Spatial search bounds (search: seek-radius).
	seekSearchRadius = 200.0
	seekFanCount     = 16
	seekRadiusStep   = 10.0

	// Cover scoring.
	coverDensityRadius = 15.0
	coverDensityBonus  = 5.0
	downhillBonus      = 10.0

	// Flee-direction alignment discounts up to 30% of a water
	// candidate's effective distance.
	alignmentDiscount = 0.3
)

// Seeker resolves a water or cover point matching a wound profile's
// preferences. It runs a synchronous, bounded scan at wound-application
// time only.
type Seeker struct {
	terrain Terrain
	water   Water
	cover   CoverRegistry
}

// NewSeeker builds a seeker over the given collaborators. Any of them
// may be nil; the corresponding category is simply skipped.
func NewSeeker(terrain Terrain, water Water, cover CoverRegistry) *Seeker {
	return &Seeker{terrain: terrain, water: water, cover: cover}
}

func (s *Seeker) heightAt(x, z float64) float64 {
	if s == nil || s.terrain == nil {
		return 0
	}
	return s.terrain.HeightAt(x, z)
}

// FindTargetLocation scores water and cover candidates matching the
// profile's flags and returns the single best, or false when nothing
// suitable exists within range.
func (s *Seeker) FindTargetLocation(p *Profile, from, shooter, fleeDir mathutil.Vec3) (mathutil.Vec3, bool) {
	if s == nil || p == nil {
		return mathutil.Vec3{}, false
	}

	best := mathutil.Vec3{}
	bestScore := 0.0
	found := false

	if p.SeeksWater && s.water != nil {
		for _, candidate := range s.waterCandidates(from) {
			dist := from.DistanceXZ(candidate)
			if dist < 1e-6 {
				continue
			}
			toCandidate := candidate.Sub(from).FlattenXZ().Normalized()
			align := toCandidate.Dot(fleeDir)
			if align < 0 {
				align = 0
			}
			effective := dist * (1 - alignmentDiscount*align)
			score := shooter.DistanceXZ(candidate)*0.5 - effective
			if !found || score > bestScore {
				best, bestScore, found = candidate, score, true
			}
		}
	}

	if (p.SeeksCover || p.CanBed) && s.cover != nil {
		anchors := s.cover.CoverAnchors()
		fromHeight := s.heightAt(from.X, from.Z)
		for i, anchor := range anchors {
			dist := from.DistanceXZ(anchor)
			if dist > seekSearchRadius || dist < 1e-6 {
				continue
			}
			score := shooter.DistanceXZ(anchor)*0.5 - dist
			if p.PrefersDownhill && s.heightAt(anchor.X, anchor.Z) < fromHeight {
				score += downhillBonus
			}
			// Denser cover scores higher.
			for j, other := range anchors {
				if i != j && anchor.DistanceXZ(other) <= coverDensityRadius {
					score += coverDensityBonus
				}
			}
			if !found || score > bestScore {
				best, bestScore, found = anchor, score, true
			}
		}
	}

	if !found {
		return mathutil.Vec3{}, false
	}
	best.Y = s.heightAt(best.X, best.Z)
	return best, true
}

// FindNearestWater samples a fixed angular fan at expanding radii and
// returns the first point that tests in-water, or false when no water
// exists within the search radius.
func (s *Seeker) FindNearestWater(from mathutil.Vec3) (mathutil.Vec3, bool) {
	if s == nil || s.water == nil {
		return mathutil.Vec3{}, false
	}
	for radius := seekRadiusStep; radius <= seekSearchRadius; radius += seekRadiusStep {
		for i := 0; i < seekFanCount; i++ {
			dir := mathutil.YawForward(2 * math.Pi * float64(i) / seekFanCount)
			x := from.X + dir.X*radius
			z := from.Z + dir.Z*radius
			if s.water.IsWaterAt(x, z) {
				return mathutil.Vec3{X: x, Y: s.heightAt(x, z), Z: z}, true
			}
		}
	}
	return mathutil.Vec3{}, false
}

// waterCandidates collects every in-water sample point within range.
func (s *Seeker) waterCandidates(from mathutil.Vec3) []mathutil.Vec3 {
	var candidates []mathutil.Vec3
	for radius := seekRadiusStep; radius <= seekSearchRadius; radius += seekRadiusStep {
		for i := 0; i < seekFanCount; i++ {
			dir := mathutil.YawForward(2 * math.Pi * float64(i) / seekFanCount)
			x := from.X + dir.X*radius
			z := from.Z + dir.Z*radius
			if s.water.IsWaterAt(x, z) {
				candidates = append(candidates, mathutil.Vec3{X: x, Z: z})
			}
		}
	}
	return candidates
}

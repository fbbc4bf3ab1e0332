package game

import (
	"fmt"
	"math"

	"whitetail/internal/deer"
	"whitetail/internal/mathutil"
	"whitetail/internal/shot"
)

const (
	missSpookRadius = 80.0 // gunshot noise radius for untargeted deer
	tagRadius       = 6.0

	// Elevation is auto-leveled to chest height; only yaw is aimed.
	shotAimHeight = 0.7
)

// FireShot runs the full shot pipeline for one trigger pull: cast the
// ray against every live deer, resolve the zone on the nearest animal
// crossed, classify the geometry, apply the hit, and record the outcome.
func (g *HuntGame) FireShot() ShotRecord {
	origin := g.eyePosition()

	var target *deer.Deer
	var outcome shot.HitOutcome
	bestDist := math.Inf(1)
	for _, d := range g.deer {
		if !d.IsAlive() {
			continue
		}
		dist := origin.DistanceXZ(d.Position)
		if dist > g.cfg.Hunting.RifleRange || dist < 1e-6 {
			continue
		}
		dir := g.aimRay(origin, d, dist)
		crossings := d.IntersectShot(origin, dir, g.cfg.Hunting.RifleRange)
		if len(crossings) == 0 {
			continue
		}
		res := shot.Resolve(crossings)
		if res.Zone == shot.ZoneNone {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			target = d
			outcome = res
		}
	}

	// The report spooks everything in earshot, hit or miss.
	g.spookNearby(origin, target)

	if target == nil {
		g.lastShotMsg = "miss"
		return g.report.RecordShot(ShotRecord{Zone: shot.ZoneNone.String()})
	}

	moving := target.State == deer.StateFleeing || target.State == deer.StateWounded
	class := g.classifier.Classify(origin, target.Position, target.FacingYaw)
	hit := target.ApplyShot(outcome, class, origin)

	rec := ShotRecord{
		Distance:     bestDist,
		Zone:         hit.Zone.String(),
		Fatal:        hit.Fatal,
		ThreeStrike:  hit.ThreeStrike,
		TargetMoving: moving,
	}
	if hit.Wounded || hit.ThreeStrike {
		rec.Wound = hit.Wound.String()
	}

	switch {
	case hit.Zone == shot.ZoneNone:
		g.lastShotMsg = "grazed past"
	case hit.ThreeStrike:
		g.lastShotMsg = fmt.Sprintf("down at %.0fu, worn out", bestDist)
	case hit.Fatal:
		g.lastShotMsg = fmt.Sprintf("clean kill at %.0fu (%s)", bestDist, hit.Zone)
	default:
		g.lastShotMsg = fmt.Sprintf("wounded at %.0fu: %s", bestDist, hit.Wound)
	}
	if hit.Fatal {
		g.report.Kills++
	}
	return g.report.RecordShot(rec)
}

// aimRay builds the shot ray toward one candidate: the XZ heading comes
// from the hunter's yaw, while the pitch levels out to chest height at
// the candidate's ground elevation.
func (g *HuntGame) aimRay(origin mathutil.Vec3, d *deer.Deer, dist float64) mathutil.Vec3 {
	heading := mathutil.YawForward(g.hunterYaw)
	drop := (d.Position.Y + shotAimHeight) - origin.Y
	return heading.Scale(dist).Add(mathutil.Vec3{Y: drop}).Normalized()
}

// spookNearby puts every non-target deer within earshot of the muzzle
// into flight via the clean-miss path of the shot rules.
func (g *HuntGame) spookNearby(origin mathutil.Vec3, except *deer.Deer) {
	for _, d := range g.deer {
		if d == except || !d.IsAlive() {
			continue
		}
		if d.Position.DistanceXZ(origin) <= missSpookRadius {
			d.ApplyShot(shot.HitOutcome{Zone: shot.ZoneNone}, shot.Classification{}, origin)
		}
	}
}

// TagNearestKill tags the closest untagged carcass within reach. It
// returns false when no carcass is close enough.
func (g *HuntGame) TagNearestKill() bool {
	var nearest *deer.Deer
	best := tagRadius
	for _, d := range g.deer {
		if d.IsAlive() || d.Tagged {
			continue
		}
		dist := d.Position.DistanceXZ(g.hunterPos)
		if dist <= best {
			best = dist
			nearest = d
		}
	}
	if nearest == nil {
		return false
	}
	nearest.Tagged = true
	g.report.Tagged++
	g.lastShotMsg = "carcass tagged"
	return true
}

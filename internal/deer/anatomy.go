package deer

import (
	"math"
	"sort"

	"whitetail/internal/mathutil"
	"whitetail/internal/shot"
)

// hitVolume is one named box of the deer's hit-volume hierarchy, expressed
// in the deer's local frame: origin at ground center, +Z forward, Y up.
type hitVolume struct {
	zone     shot.Zone
	min, max mathutil.Vec3
}

// Anatomy of a standing adult deer, roughly 1.8 units nose to tail and
// 1.4 at the head. The body box encloses everything and acts as the
// fallback zone; the resolver sorts out priority.
var hitVolumes = []hitVolume{
	{shot.ZoneBody, mathutil.Vec3{X: -0.25, Y: 0, Z: -0.9}, mathutil.Vec3{X: 0.25, Y: 1.4, Z: 0.9}},
	{shot.ZoneVitals, mathutil.Vec3{X: -0.18, Y: 0.45, Z: 0.1}, mathutil.Vec3{X: 0.18, Y: 0.95, Z: 0.55}},
	{shot.ZoneHead, mathutil.Vec3{X: -0.12, Y: 1.0, Z: 0.75}, mathutil.Vec3{X: 0.12, Y: 1.4, Z: 1.05}},
	{shot.ZoneNeck, mathutil.Vec3{X: -0.12, Y: 0.8, Z: 0.5}, mathutil.Vec3{X: 0.12, Y: 1.15, Z: 0.85}},
	{shot.ZoneGut, mathutil.Vec3{X: -0.22, Y: 0.4, Z: -0.45}, mathutil.Vec3{X: 0.22, Y: 1.0, Z: 0.1}},
	{shot.ZoneShoulderLeft, mathutil.Vec3{X: 0.1, Y: 0.4, Z: 0.25}, mathutil.Vec3{X: 0.3, Y: 1.0, Z: 0.6}},
	{shot.ZoneShoulderRight, mathutil.Vec3{X: -0.3, Y: 0.4, Z: 0.25}, mathutil.Vec3{X: -0.1, Y: 1.0, Z: 0.6}},
	{shot.ZoneRear, mathutil.Vec3{X: -0.22, Y: 0.4, Z: -0.9}, mathutil.Vec3{X: 0.22, Y: 1.0, Z: -0.45}},
}

// IntersectShot casts a world-space shot ray against the deer's hit
// volumes and returns the crossings ordered by distance along the ray.
// An empty result is a miss.
func (d *Deer) IntersectShot(origin, dir mathutil.Vec3, maxRange float64) []shot.Intersection {
	dir = dir.Normalized()
	if dir.IsZero() {
		return nil
	}

	// Transform the ray into the deer's local frame.
	localOrigin := origin.Sub(d.Position).RotateY(-d.FacingYaw)
	localDir := dir.RotateY(-d.FacingYaw)

	type tHit struct {
		t   float64
		hit shot.Intersection
	}
	var hits []tHit

	for _, vol := range hitVolumes {
		t, ok := rayBoxEntry(localOrigin, localDir, vol.min, vol.max)
		if !ok || t > maxRange {
			continue
		}
		localPoint := localOrigin.Add(localDir.Scale(t))
		worldPoint := origin.Add(dir.Scale(t))
		hits = append(hits, tHit{t, shot.Intersection{
			Zone:        vol.zone,
			Point:       worldPoint,
			LocalOffset: localPoint,
		}})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	out := make([]shot.Intersection, len(hits))
	for i, h := range hits {
		out[i] = h.hit
	}
	return out
}

// rayBoxEntry returns the entry distance of a ray into an AABB using the
// slab method, or false when the ray misses or starts past the box.
func rayBoxEntry(origin, dir, min, max mathutil.Vec3) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)

	axes := [3][3]float64{
		{origin.X, dir.X, 0}, {origin.Y, dir.Y, 1}, {origin.Z, dir.Z, 2},
	}
	lows := [3]float64{min.X, min.Y, min.Z}
	highs := [3]float64{max.X, max.Y, max.Z}

	for i, axis := range axes {
		o, d := axis[0], axis[1]
		if math.Abs(d) < 1e-12 {
			if o < lows[i] || o > highs[i] {
				return 0, false
			}
			continue
		}
		t1 := (lows[i] - o) / d
		t2 := (highs[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

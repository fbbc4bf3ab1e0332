package deer

import (
	"math"
	"testing"

	"whitetail/internal/mathutil"
	"whitetail/internal/shot"
)

func TestIntersectShotBroadsideChest(t *testing.T) {
	d := testDeer(nil) // at origin, facing +Z

	// Ray through the chest from the deer's left side, at lung height,
	// just behind the shoulder line.
	origin := mathutil.Vec3{X: 10, Y: 0.7, Z: 0.15}
	dir := mathutil.Vec3{X: -1}
	hits := d.IntersectShot(origin, dir, 300)

	if len(hits) == 0 {
		t.Fatal("broadside chest ray missed entirely")
	}
	// Entry order: the enclosing body box first, then the vitals.
	if hits[0].Zone != shot.ZoneBody {
		t.Errorf("first crossing = %v, want body", hits[0].Zone)
	}
	found := false
	for _, h := range hits {
		if h.Zone == shot.ZoneVitals {
			found = true
			if math.Abs(h.LocalOffset.X-0.18) > 1e-6 {
				t.Errorf("vitals entry x = %v, want 0.18", h.LocalOffset.X)
			}
		}
	}
	if !found {
		t.Error("chest ray did not cross the vitals")
	}

	if res := shot.Resolve(hits); res.Zone != shot.ZoneVitals {
		t.Errorf("resolved zone = %v, want vitals", res.Zone)
	}
}

func TestIntersectShotRespectsFacing(t *testing.T) {
	d := testDeer(nil)
	d.FacingYaw = math.Pi / 2 // facing +X, so the long axis lies along X

	// A ray down the world Z axis at chest height now crosses the animal
	// side-on; the local offset must be expressed in the rotated frame.
	origin := mathutil.Vec3{Y: 0.7, Z: 10}
	dir := mathutil.Vec3{Z: -1}
	hits := d.IntersectShot(origin, dir, 300)
	if len(hits) == 0 {
		t.Fatal("rotated deer not hit")
	}
	for _, h := range hits {
		if math.Abs(h.LocalOffset.X) > 0.26 {
			t.Errorf("local offset %v outside the body's lateral extent", h.LocalOffset)
		}
	}
}

func TestIntersectShotGutAndRear(t *testing.T) {
	d := testDeer(nil)

	// Abdomen-height ray behind the shoulder line.
	hits := d.IntersectShot(mathutil.Vec3{X: 10, Y: 0.6, Z: -0.3}, mathutil.Vec3{X: -1}, 300)
	if res := shot.Resolve(hits); res.Zone != shot.ZoneGut {
		t.Errorf("abdomen ray resolved to %v, want gut", res.Zone)
	}

	// Hindquarters.
	hits = d.IntersectShot(mathutil.Vec3{X: 10, Y: 0.6, Z: -0.7}, mathutil.Vec3{X: -1}, 300)
	if res := shot.Resolve(hits); res.Zone != shot.ZoneRear {
		t.Errorf("hindquarter ray resolved to %v, want rear", res.Zone)
	}
}

func TestIntersectShotMisses(t *testing.T) {
	d := testDeer(nil)

	// Over the back.
	if hits := d.IntersectShot(mathutil.Vec3{X: 10, Y: 3, Z: 0}, mathutil.Vec3{X: -1}, 300); len(hits) != 0 {
		t.Errorf("ray over the back hit %d volumes", len(hits))
	}

	// Out of range.
	if hits := d.IntersectShot(mathutil.Vec3{X: 10, Y: 0.7, Z: 0.3}, mathutil.Vec3{X: -1}, 5); len(hits) != 0 {
		t.Errorf("out-of-range ray hit %d volumes", len(hits))
	}

	// Pointing away.
	if hits := d.IntersectShot(mathutil.Vec3{X: 10, Y: 0.7, Z: 0.3}, mathutil.Vec3{X: 1}, 300); len(hits) != 0 {
		t.Errorf("ray pointing away hit %d volumes", len(hits))
	}

	// Degenerate direction.
	if hits := d.IntersectShot(mathutil.Vec3{X: 10}, mathutil.Vec3{}, 300); hits != nil {
		t.Error("zero direction should miss")
	}
}

package shot

import (
	"math"
	"testing"

	"whitetail/internal/mathutil"
)

func TestClassifyFrontal(t *testing.T) {
	c := NewClassifier()

	// Target facing +Z with the shot traveling along +Z: the shot angle
	// formula yields 180, the frontal/lethal case.
	shooter := mathutil.Vec3{Z: -50}
	target := mathutil.Vec3{}
	got := c.Classify(shooter, target, 0)

	if math.Abs(got.ShotAngle-180) > 1e-6 {
		t.Errorf("shotAngle = %v, want 180", got.ShotAngle)
	}
	if got.Category != CategoryFrontal {
		t.Errorf("category = %v, want frontal", got.Category)
	}
	if !got.LethalForVitals() {
		t.Error("frontal vitals hit must be lethal")
	}
}

func TestClassifyRear(t *testing.T) {
	c := NewClassifier()

	// Shot traveling opposite the target's facing: shot angle 0, the rear
	// case, where a vitals hit is downgraded to a hindquarter wound.
	shooter := mathutil.Vec3{Z: 50}
	target := mathutil.Vec3{}
	got := c.Classify(shooter, target, 0)

	if math.Abs(got.ShotAngle) > 1e-6 {
		t.Errorf("shotAngle = %v, want 0", got.ShotAngle)
	}
	if got.Category != CategoryRear {
		t.Errorf("category = %v, want rear", got.Category)
	}
	if got.LethalForVitals() {
		t.Error("rear vitals hit must not be lethal")
	}
}

func TestClassifyBroadside(t *testing.T) {
	c := NewClassifier()

	// Shooter perpendicular to the facing: shot angle 90, broadside, and
	// the lung-disambiguation flag is set.
	shooter := mathutil.Vec3{X: 50}
	target := mathutil.Vec3{}
	got := c.Classify(shooter, target, 0)

	if math.Abs(got.ShotAngle-90) > 1e-6 {
		t.Errorf("shotAngle = %v, want 90", got.ShotAngle)
	}
	if got.Category != CategoryBroadside {
		t.Errorf("category = %v, want broadside", got.Category)
	}
	if !got.IsBroadside {
		t.Error("perpendicular geometry should set isBroadside")
	}
	if !got.LethalForVitals() {
		t.Error("broadside vitals hit must be lethal")
	}
}

func TestIsBroadsideIsNarrowerThanTheCategorySplit(t *testing.T) {
	c := NewClassifier()
	target := mathutil.Vec3{}

	// 50 degrees off the rear axis: inside the broadside category band
	// (45..135) but outside the |dot| < 0.5 lung band.
	yaw := 0.0
	angleOff := 50 * math.Pi / 180
	shooter := mathutil.Vec3{X: 50 * math.Sin(angleOff), Z: 50 * math.Cos(angleOff)}
	got := c.Classify(shooter, target, yaw)

	if got.Category != CategoryBroadside {
		t.Fatalf("category = %v, want broadside", got.Category)
	}
	if got.IsBroadside {
		t.Error("50 degrees off-axis should fail the narrow lung band")
	}
}

func TestClassifyIgnoresHeight(t *testing.T) {
	c := NewClassifier()
	flat := c.Classify(mathutil.Vec3{Z: -50}, mathutil.Vec3{}, 0)
	raised := c.Classify(mathutil.Vec3{Y: 12, Z: -50}, mathutil.Vec3{Y: 1}, 0)
	if math.Abs(flat.ShotAngle-raised.ShotAngle) > 1e-6 {
		t.Errorf("elevated shooter changed the shot angle: %v vs %v",
			flat.ShotAngle, raised.ShotAngle)
	}
}

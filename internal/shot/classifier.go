package shot

import (
	"math"

	"whitetail/internal/mathutil"
)

// Category is the coarse shooting-geometry class.
type Category int

const (
	CategoryBroadside Category = iota
	CategoryFrontal
	CategoryRear
)

func (c Category) String() string {
	switch c {
	case CategoryBroadside:
		return "broadside"
	case CategoryFrontal:
		return "frontal"
	case CategoryRear:
		return "rear"
	default:
		return "unknown"
	}
}

// Classification captures the shot geometry relative to the target's facing.
type Classification struct {
	// ShotAngle is 180 minus the angle between target forward and shot
	// direction: 180 means the shooter is dead ahead of the target, 0
	// means directly behind it.
	ShotAngle float64
	Category  Category

	// IsBroadside uses a narrower threshold than the frontal/rear split
	// and only disambiguates lung wounds.
	IsBroadside bool
}

// LethalForVitals reports whether a vitals hit under this geometry kills
// outright. Rear-raking vitals hits are reclassified as hindquarter wounds.
func (c Classification) LethalForVitals() bool {
	return c.Category != CategoryRear
}

// Classifier computes shot angles from shooter/target geometry.
// Thresholds are configurable; zero values fall back to the standard
// 135/45-degree split and 0.5 broadside dot.
type Classifier struct {
	FrontalAngle float64
	RearAngle    float64
	BroadsideDot float64
}

// NewClassifier returns a classifier with the standard thresholds.
func NewClassifier() *Classifier {
	return &Classifier{FrontalAngle: 135, RearAngle: 45, BroadsideDot: 0.5}
}

// Classify derives the shot classification for a shooter firing at a
// target facing the given yaw. Of the two inverse angle conventions that
// appeared over this system's history, the one where >135 degrees means
// frontal is used; see DESIGN.md.
func (c *Classifier) Classify(shooterPos, targetPos mathutil.Vec3, targetYaw float64) Classification {
	frontal := c.FrontalAngle
	if frontal <= 0 {
		frontal = 135
	}
	rear := c.RearAngle
	if rear <= 0 {
		rear = 45
	}
	broadsideDot := c.BroadsideDot
	if broadsideDot <= 0 {
		broadsideDot = 0.5
	}

	shotDirection := targetPos.Sub(shooterPos).FlattenXZ().Normalized()
	targetForward := mathutil.YawForward(targetYaw)

	dot := mathutil.Clamp(targetForward.Dot(shotDirection), -1, 1)
	angle := mathutil.Degrees(math.Acos(dot))
	shotAngle := 180 - angle

	category := CategoryBroadside
	switch {
	case shotAngle > frontal:
		category = CategoryFrontal
	case shotAngle < rear:
		category = CategoryRear
	}

	toShooter := shooterPos.Sub(targetPos).FlattenXZ().Normalized()
	isBroadside := math.Abs(targetForward.Dot(toShooter)) < broadsideDot

	return Classification{
		ShotAngle:   shotAngle,
		Category:    category,
		IsBroadside: isBroadside,
	}
}

package mathutil

import "math"

// Vec3 is a world-space vector. Y is up; movement happens on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit-length copy, or the zero vector for near-zero input.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsZero reports whether the vector is (numerically) the zero vector.
func (v Vec3) IsZero() bool {
	return v.Length() < 1e-9
}

// DistanceTo returns the euclidean distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// DistanceXZ returns the ground-plane distance between two points,
// ignoring height.
func (v Vec3) DistanceXZ(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// FlattenXZ drops the vertical component.
func (v Vec3) FlattenXZ() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// RotateY rotates the vector about the vertical axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// YawForward returns the unit forward vector for a yaw angle.
// Yaw 0 faces +Z (search: yaw-forward).
func YawForward(yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{X: sin, Z: cos}
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

package gamemath

import "math"

// Vec3 is a point or direction in world space, in metres.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Pose is a viewer or anchor transform reduced to what the game needs.
// ZAxis is the third basis column of the transform. A camera looks along
// its negation.
type Pose struct {
	Position Vec3
	ZAxis    Vec3
}

// Forward returns the direction the pose looks at.
func (p Pose) Forward() Vec3 {
	return p.ZAxis.Neg()
}

// PitchedPose returns a pose at pos whose view direction is pitched by angle
// radians above the -Z horizon.
func PitchedPose(pos Vec3, angle float64) Pose {
	return Pose{
		Position: pos,
		ZAxis:    Vec3{X: 0, Y: -math.Sin(angle), Z: math.Cos(angle)},
	}
}

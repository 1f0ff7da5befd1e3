package physics

import "math"

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

var (
	Zero    = Vec3{}
	WorldUp = Vec3{Y: WorldUpY}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns the unit vector along v. Vectors shorter than
// NormalizeEpsilon normalize to Zero and ok=false.
func (v Vec3) Normalize() (Vec3, bool) {
	length := v.Length()
	if length <= NormalizeEpsilon || math.IsNaN(length) || math.IsInf(length, 0) {
		return Zero, false
	}
	return v.Scale(1 / length), true
}

// ProjectOnPlane removes the component of v along normal. A degenerate
// normal leaves v unchanged.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	n, ok := normal.Normalize()
	if !ok {
		return v
	}
	return v.Sub(n.Scale(v.Dot(n)))
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

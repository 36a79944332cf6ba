package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// Vec2 is a point or offset in logical pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistSq returns squared distance between two points, avoids sqrt in hit loops
func DistSq(a, b Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// FromPolar returns the cartesian point at radius r and angle theta
func FromPolar(r, theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}.Scale(r)
}

// ToPolar returns radius and angle of v
// Origin maps to (0, 0): atan2(0, 0) is 0 by convention
func ToPolar(v Vec2) (r, theta float64) {
	if v.X == 0 && v.Y == 0 {
		return 0, 0
	}
	return v.Len(), math.Atan2(v.Y, v.X)
}

// InBounds reports whether p lies inside [minX, maxX] x [minY, maxY]
func InBounds(p Vec2, minX, minY, maxX, maxY float64) bool {
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

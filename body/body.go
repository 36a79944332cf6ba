// Package body holds celestial body records and the registry that owns them
//
// A body's orbital state has two representations: the cartesian offset Pos
// and the polar pair (OrbitRadius, Angle). They are only ever changed through
// SetByAngle, SetByPosition or SetOrbit, each of which recomputes the other
// representation, so at rest Pos == FromPolar(OrbitRadius, Angle).
package body

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lixenwraith/orrery/vmath"
)

// Kind classifies a body, cosmetic only
type Kind string

const (
	KindRocky    Kind = "rocky"
	KindGasGiant Kind = "gas-giant"
	KindIceGiant Kind = "ice-giant"
	KindDwarf    Kind = "dwarf"
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindRocky, KindGasGiant, KindIceGiant, KindDwarf:
		return true
	}
	return false
}

// Label returns the display form ("gas giant")
func (k Kind) Label() string {
	switch k {
	case KindGasGiant:
		return "gas giant"
	case KindIceGiant:
		return "ice giant"
	case KindRocky, KindDwarf:
		return string(k)
	default:
		return "unknown"
	}
}

// Body is one celestial object on a circular orbit around the system center
type Body struct {
	ID   string
	Kind Kind
	Name string

	Radius float64 // Visual radius in logical pixels
	Color  string  // Fill style, used verbatim

	Pos          vmath.Vec2 // Offset from system center
	OrbitRadius  float64
	Angle        float64 // Radians
	AngularSpeed float64 // Radians per tick before the global speed multiplier

	Mass float64 // Informational

	HasRings     bool
	Moons        int
	Habitability *float64 // [0, 1], nil when unknown
	Description  string
}

// SetByAngle moves the body along its orbit, radius is held
func (b *Body) SetByAngle(angle float64) {
	b.Angle = angle
	b.Pos = vmath.FromPolar(b.OrbitRadius, angle)
}

// SetByPosition places the body at p and derives a new orbit from it
func (b *Body) SetByPosition(p vmath.Vec2) {
	b.Pos = p
	b.OrbitRadius, b.Angle = vmath.ToPolar(p)
}

// SetOrbit sets radius and angle together, negative radius clamps to 0
func (b *Body) SetOrbit(radius, angle float64) {
	b.OrbitRadius = math.Max(radius, 0)
	b.SetByAngle(angle)
}

// Consistent reports whether Pos matches (OrbitRadius, Angle) within tol
// Tolerance is absolute for small orbits and relative for large ones
func (b *Body) Consistent(tol float64) bool {
	want := vmath.FromPolar(b.OrbitRadius, b.Angle)
	return scalar.EqualWithinAbsOrRel(b.Pos.X, want.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(b.Pos.Y, want.Y, tol, tol)
}

// Clone returns a deep copy, Habitability is not shared
func (b Body) Clone() Body {
	if b.Habitability != nil {
		h := *b.Habitability
		b.Habitability = &h
	}
	return b
}

// Template describes a body to be added; the registry assigns the id
type Template struct {
	Kind         Kind
	Name         string
	Radius       float64
	Color        string
	OrbitRadius  float64
	Angle        float64
	AngularSpeed float64
	Mass         float64
	HasRings     bool
	Moons        int
	Habitability *float64
	Description  string
}

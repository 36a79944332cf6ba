package body

import "github.com/lixenwraith/orrery/vmath"

type placementMode uint8

const (
	placeByAngle placementMode = iota + 1
	placeByPosition
	placeOnOrbit
)

// Placement is an orbital edit, always applied through a consistency mutator
type Placement struct {
	mode   placementMode
	angle  float64
	radius float64
	pos    vmath.Vec2
}

// AtAngle keeps the orbit radius and moves the body to angle
func AtAngle(angle float64) *Placement {
	return &Placement{mode: placeByAngle, angle: angle}
}

// AtPosition moves the body to p, orbit radius and angle follow
func AtPosition(p vmath.Vec2) *Placement {
	return &Placement{mode: placeByPosition, pos: p}
}

// OnOrbit sets orbit radius and angle together
func OnOrbit(radius, angle float64) *Placement {
	return &Placement{mode: placeOnOrbit, radius: radius, angle: angle}
}

// Angle returns the requested angle for angle-based placements
func (p *Placement) Angle() (float64, bool) {
	if p == nil || p.mode == placeByPosition {
		return 0, false
	}
	return p.angle, true
}

// Position returns the requested point for position-based placements
func (p *Placement) Position() (vmath.Vec2, bool) {
	if p == nil || p.mode != placeByPosition {
		return vmath.Vec2{}, false
	}
	return p.pos, true
}

func (p *Placement) apply(b *Body) {
	switch p.mode {
	case placeByAngle:
		b.SetByAngle(p.angle)
	case placeByPosition:
		b.SetByPosition(p.pos)
	case placeOnOrbit:
		b.SetOrbit(p.radius, p.angle)
	}
}

// Patch is a partial update, nil fields are left untouched
type Patch struct {
	Placement *Placement

	Kind         *Kind
	Name         *string
	Radius       *float64
	Color        *string
	AngularSpeed *float64
	Mass         *float64
	HasRings     *bool
	Moons        *int
	Habitability *float64
	Description  *string
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Placement == nil && p.Kind == nil && p.Name == nil && p.Radius == nil &&
		p.Color == nil && p.AngularSpeed == nil && p.Mass == nil && p.HasRings == nil &&
		p.Moons == nil && p.Habitability == nil && p.Description == nil
}

// Apply merges the patch into b
func (p Patch) Apply(b *Body) {
	if p.Kind != nil {
		b.Kind = *p.Kind
	}
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Radius != nil {
		b.Radius = *p.Radius
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	if p.AngularSpeed != nil {
		b.AngularSpeed = *p.AngularSpeed
	}
	if p.Mass != nil {
		b.Mass = *p.Mass
	}
	if p.HasRings != nil {
		b.HasRings = *p.HasRings
	}
	if p.Moons != nil {
		b.Moons = max(*p.Moons, 0)
	}
	if p.Habitability != nil {
		h := min(max(*p.Habitability, 0), 1)
		b.Habitability = &h
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Placement != nil {
		p.Placement.apply(b)
	}
}

// Ptr returns a pointer to v, shorthand for building patches
func Ptr[T any](v T) *T {
	return &v
}

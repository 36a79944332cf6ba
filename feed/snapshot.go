package feed

import "github.com/lixenwraith/orrery/body"

// BodyView is the wire form of a body
type BodyView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         string   `json:"type"`
	Radius       float64  `json:"size"`
	Color        string   `json:"color"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	OrbitRadius  float64  `json:"orbitRadius"`
	Angle        float64  `json:"angle"`
	AngularSpeed float64  `json:"orbitSpeed"`
	Mass         float64  `json:"mass"`
	HasRings     bool     `json:"hasRings,omitempty"`
	Moons        int      `json:"moons,omitempty"`
	Habitability *float64 `json:"habitability,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Snapshot is one broadcast of the whole system
type Snapshot struct {
	Type       string     `json:"type"`
	Version    uint64     `json:"version"`
	Simulating bool       `json:"simulating"`
	Speed      float64    `json:"speed"`
	Bodies     []BodyView `json:"bodies"`
}

// NewSnapshot builds the wire form of bodies
func NewSnapshot(bodies []body.Body, simulating bool, speed float64, version uint64) Snapshot {
	views := make([]BodyView, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		views[i] = BodyView{
			ID:           b.ID,
			Name:         b.Name,
			Kind:         string(b.Kind),
			Radius:       b.Radius,
			Color:        b.Color,
			X:            b.Pos.X,
			Y:            b.Pos.Y,
			OrbitRadius:  b.OrbitRadius,
			Angle:        b.Angle,
			AngularSpeed: b.AngularSpeed,
			Mass:         b.Mass,
			HasRings:     b.HasRings,
			Moons:        b.Moons,
			Habitability: b.Habitability,
			Description:  b.Description,
		}
	}
	return Snapshot{
		Type:       "system",
		Version:    version,
		Simulating: simulating,
		Speed:      speed,
		Bodies:     views,
	}
}

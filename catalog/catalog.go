// Package catalog lists the preset bodies offered by the builder
package catalog

import (
	"math/rand/v2"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

// Placement range for bodies added from the catalog
const (
	MinOrbitRadius = 100.0
	MaxOrbitRadius = 400.0
)

// Preset is a catalog entry without placement
type Preset struct {
	Name         string
	Kind         body.Kind
	Radius       float64
	Color        string
	Mass         float64
	AngularSpeed float64
	HasRings     bool
	Moons        int
	Habitability *float64
	Description  string
}

func score(v float64) *float64 { return &v }

var presets = []Preset{
	// Inner rocky planets
	{Name: "Mercury", Kind: body.KindRocky, Radius: 8, Color: "#8C7853", Mass: 0.33, AngularSpeed: 0.048,
		Habitability: score(0.1), Description: "Closest to the sun, extreme temperatures"},
	{Name: "Venus", Kind: body.KindRocky, Radius: 12, Color: "#FFC649", Mass: 0.82, AngularSpeed: 0.035,
		Habitability: score(0.2), Description: "Hottest planet, thick atmosphere"},
	{Name: "Earth", Kind: body.KindRocky, Radius: 13, Color: "#6B93D6", Mass: 1, AngularSpeed: 0.03,
		Habitability: score(1.0), Description: "Perfect for life, liquid water"},
	{Name: "Mars", Kind: body.KindRocky, Radius: 10, Color: "#CD5C5C", Mass: 0.64, AngularSpeed: 0.024,
		Habitability: score(0.6), Description: "Red planet, polar ice caps"},

	// Gas giants
	{Name: "Jupiter", Kind: body.KindGasGiant, Radius: 45, Color: "#D8CA9D", Mass: 11.2, AngularSpeed: 0.013,
		Moons: 79, Description: "Largest planet, Great Red Spot"},
	{Name: "Saturn", Kind: body.KindGasGiant, Radius: 38, Color: "#FAD5A5", Mass: 9.4, AngularSpeed: 0.0096,
		HasRings: true, Moons: 82, Description: "Beautiful ring system"},

	// Ice giants
	{Name: "Uranus", Kind: body.KindIceGiant, Radius: 25, Color: "#4FD0E7", Mass: 4.0, AngularSpeed: 0.0068,
		HasRings: true, Moons: 27, Description: "Tilted on its side, methane atmosphere"},
	{Name: "Neptune", Kind: body.KindIceGiant, Radius: 24, Color: "#4B70DD", Mass: 3.9, AngularSpeed: 0.0054,
		Moons: 14, Description: "Windiest planet, deep blue color"},

	// Dwarf planets
	{Name: "Pluto", Kind: body.KindDwarf, Radius: 6, Color: "#C4A484", Mass: 0.18, AngularSpeed: 0.0047,
		Moons: 5, Description: "Former ninth planet, icy surface"},
	{Name: "Ceres", Kind: body.KindDwarf, Radius: 5, Color: "#A8A8A8", Mass: 0.15, AngularSpeed: 0.021,
		Description: "Largest asteroid, water ice"},

	// Exoplanets
	{Name: "Kepler-452b", Kind: body.KindRocky, Radius: 16, Color: "#7FB069", Mass: 1.6, AngularSpeed: 0.027,
		Habitability: score(0.9), Description: "Earth's cousin, potentially habitable"},
	{Name: "HD 209458 b", Kind: body.KindGasGiant, Radius: 42, Color: "#FF6B35", Mass: 8.3, AngularSpeed: 0.089,
		Description: "Hot Jupiter, evaporating atmosphere"},
}

// Palette is the fixed set of colors offered when customizing a body
var Palette = []string{
	"#8C7853", "#FFC649", "#6B93D6", "#CD5C5C",
	"#D8CA9D", "#FAD5A5", "#4FD0E7", "#4B70DD",
	"#C4A484", "#A8A8A8", "#7FB069", "#FF6B35",
}

// Presets returns a copy of the catalog in display order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Len returns the catalog size
func Len() int { return len(presets) }

// At returns the preset at index i
func At(i int) (Preset, bool) {
	if i < 0 || i >= len(presets) {
		return Preset{}, false
	}
	return presets[i], true
}

// Lookup finds a preset by name
func Lookup(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Place returns an add template for p at a random orbit
// Angle is uniform in [0, 2π), radius uniform in [MinOrbitRadius, MaxOrbitRadius)
func Place(p Preset, rng *rand.Rand) body.Template {
	angle := rng.Float64() * vmath.TwoPi
	radius := MinOrbitRadius + rng.Float64()*(MaxOrbitRadius-MinOrbitRadius)
	return p.Template(radius, angle)
}

// Template returns an add template for p on the given orbit
func (p Preset) Template(orbitRadius, angle float64) body.Template {
	t := body.Template{
		Kind:         p.Kind,
		Name:         p.Name,
		Radius:       p.Radius,
		Color:        p.Color,
		OrbitRadius:  orbitRadius,
		Angle:        angle,
		AngularSpeed: p.AngularSpeed,
		Mass:         p.Mass,
		HasRings:     p.HasRings,
		Moons:        p.Moons,
		Description:  p.Description,
	}
	if p.Habitability != nil {
		t.Habitability = score(*p.Habitability)
	}
	return t
}

// NextColor returns the palette entry after current, wrapping
// Unknown colors restart at the first entry
func NextColor(current string) string {
	for i, c := range Palette {
		if c == current {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

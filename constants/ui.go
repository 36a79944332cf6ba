package constants

// Scene Geometry (logical pixels)
const (
	// StarCount is the number of background stars generated per mount
	StarCount = 150

	// StarMinSize and StarSizeRange bound background star sizes to [0.5, 2)
	StarMinSize   = 0.5
	StarSizeRange = 1.5

	// StarMinOpacity and StarOpacityRange bound background star opacity to [0.3, 0.9)
	StarMinOpacity   = 0.3
	StarOpacityRange = 0.6

	// SunRadius is the central star gradient radius
	SunRadius = 25

	// SunMidStop is the gradient offset of the orange stop
	SunMidStop = 0.7

	// CullMargin extends the viewport when culling body discs
	CullMargin = 50

	// RingPadding is added to the body radius for the ring ellipse
	RingPadding = 8

	// RingFlatten is the vertical-to-horizontal ratio of the ring ellipse
	RingFlatten = 0.15

	// LabelOffset is the gap from disc center to name label, on top of the radius
	LabelOffset = 16

	// OrbitLineWidth is the orbit stroke width
	OrbitLineWidth = 1
)

// Terminal Layout
const (
	// DefaultCellWidth is the logical pixel width of one terminal cell; height is twice that
	DefaultCellWidth = 8

	// HeaderRows is the number of rows reserved above the viewport
	HeaderRows = 1

	// DotAlphaThreshold is the minimum coverage for a braille dot to light
	DotAlphaThreshold = 0.04
)

// Simulation Controls
const (
	SpeedMin  = 0.1
	SpeedMax  = 5.0
	SpeedStep = 0.1

	SizeMin  = 5
	SizeMax  = 50
	SizeStep = 1

	AngularSpeedMin  = 0.001
	AngularSpeedMax  = 0.1
	AngularSpeedStep = 0.0005

	MassMin  = 0.1
	MassMax  = 20.0
	MassStep = 0.1

	// NameMaxLen caps the rename prompt, in runes
	NameMaxLen = 32
)

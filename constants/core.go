package constants

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the host vsync interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KinematicTickInterval is the minimum spacing of kinematic updates (60 updates/s)
	KinematicTickInterval = 16670 * time.Microsecond

	// ResizeDebounce is the trailing-edge window for container resize handling
	ResizeDebounce = 50 * time.Millisecond

	// ShareInterval is the default minimum spacing of live feed snapshots
	ShareInterval = 100 * time.Millisecond
)

// Event Plumbing
const (
	// EventChannelSize is the capacity of the terminal event channel
	EventChannelSize = 256

	// ShareClientBuffer is the per-client snapshot queue depth before a client is dropped
	ShareClientBuffer = 8
)

package render

// Priority determines draw order. Lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityStar
	PriorityOrbits
	PriorityBodies
	PriorityLabels
)

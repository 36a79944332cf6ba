package audio

// Cue identifies a builder sound
type Cue int

const (
	CueSelect Cue = iota // Body picked
	CuePlace             // Body added
	CueRemove            // Body deleted
	CueClear             // System cleared
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CuePlace:
		return "place"
	case CueRemove:
		return "remove"
	case CueClear:
		return "clear"
	default:
		return "unknown"
	}
}

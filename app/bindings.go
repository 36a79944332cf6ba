package app

import "github.com/gdamore/tcell/v2"

// Action is a builder command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleSimulation
	ActionSpeedUp
	ActionSpeedDown
	ActionAddPreset // Preset index carried in Binding.Preset
	ActionAddRandom
	ActionNextSelection
	ActionCloseSelection
	ActionDeleteSelected
	ActionClearSystem
	ActionSizeDown
	ActionSizeUp
	ActionOrbitSpeedDown
	ActionOrbitSpeedUp
	ActionMassDown
	ActionMassUp
	ActionNextColor
	ActionToggleRings
	ActionRename
	ActionToggleMute
	ActionQuit
)

// Binding maps a key to its action
type Binding struct {
	Action Action
	Preset int
}

// BindingTable resolves key events to bindings
type BindingTable struct {
	runes map[rune]Binding
	keys  map[tcell.Key]Binding
}

// DefaultBindings returns the builder key map
func DefaultBindings() *BindingTable {
	t := &BindingTable{
		runes: map[rune]Binding{
			' ': {Action: ActionToggleSimulation},
			'+': {Action: ActionSpeedUp},
			'=': {Action: ActionSpeedUp},
			'-': {Action: ActionSpeedDown},
			'r': {Action: ActionAddRandom},
			'x': {Action: ActionDeleteSelected},
			'C': {Action: ActionClearSystem},
			'[': {Action: ActionSizeDown},
			']': {Action: ActionSizeUp},
			'{': {Action: ActionOrbitSpeedDown},
			'}': {Action: ActionOrbitSpeedUp},
			'm': {Action: ActionMassDown},
			'M': {Action: ActionMassUp},
			'k': {Action: ActionNextColor},
			'g': {Action: ActionToggleRings},
			'n': {Action: ActionRename},
			'a': {Action: ActionToggleMute},
			'q': {Action: ActionQuit},
		},
		keys: map[tcell.Key]Binding{
			tcell.KeyTab:    {Action: ActionNextSelection},
			tcell.KeyEscape: {Action: ActionCloseSelection},
			tcell.KeyDelete: {Action: ActionDeleteSelected},
			tcell.KeyCtrlC:  {Action: ActionQuit},
		},
	}

	// 1..9 then 0 add the first ten presets
	for i := range 9 {
		t.runes['1'+rune(i)] = Binding{Action: ActionAddPreset, Preset: i}
	}
	t.runes['0'] = Binding{Action: ActionAddPreset, Preset: 9}

	// Shifted 1 and 2 add the last two
	t.runes['!'] = Binding{Action: ActionAddPreset, Preset: 10}
	t.runes['@'] = Binding{Action: ActionAddPreset, Preset: 11}
	return t
}

// Lookup returns the binding for ev
func (t *BindingTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := t.runes[ev.Rune()]
		return b, ok
	}
	b, ok := t.keys[ev.Key()]
	return b, ok
}

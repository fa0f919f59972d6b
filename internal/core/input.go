package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four move actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions triggered during one tick.
// Directional actions are also kept in arrival order, so two moves
// pressed within one tick are both applied.
type InputFrame struct {
	Actions map[Action]bool
	moves   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.moves = append(f.moves, a)
	}
}

// Directions returns the directional actions of this frame in the order
// they were set, repeats included. A frame filled through Actions alone
// yields its directions in Up, Down, Left, Right order.
func (f InputFrame) Directions() []Action {
	if len(f.moves) > 0 {
		return f.moves
	}
	var dirs []Action
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Actions[a] {
			dirs = append(dirs, a)
		}
	}
	return dirs
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all actions so the frame can be reused.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.moves = f.moves[:0]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

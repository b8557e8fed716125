package core

// Action represents a semantic game action, abstracted from physical key presses.
// The game works with intents rather than raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, H, A - shift tiles left
	ActionRight             // Right arrow, L, D - shift tiles right
	ActionUp                // Up arrow, K, W - shift tiles up
	ActionDown              // Down arrow, J, S - shift tiles down
	ActionNewGame           // N - start a new game at any time
	ActionEndGame           // E - give up the current game
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionNewGame:    "NewGame",
	ActionEndGame:    "EndGame",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
	ActionPause:      "Pause",
	ActionScreenshot: "Screenshot",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsDirection reports whether a is one of the four shift actions.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Order keeps directional presses in arrival order; the game applies at
	// most one shift per tick and takes the first.
	Order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if a.IsDirection() && !f.Actions[a] {
		f.Order = append(f.Order, a)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the first directional action of the frame, or
// ActionNone.
func (f InputFrame) Direction() Action {
	if len(f.Order) == 0 {
		return ActionNone
	}
	return f.Order[0]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Order = f.Order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	c.Order = append([]Action(nil), f.Order...)
	return c
}

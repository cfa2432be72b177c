package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// IntentLatch turns discrete key presses into a held steering intent.
// Terminals report presses (and auto-repeats) but no releases, so a press
// keeps its direction active for holdTicks ticks. The most recent press wins.
type IntentLatch struct {
	holdTicks int
	dir       Action
	remaining int
}

// NewIntentLatch creates a latch that holds each press for holdTicks ticks.
func NewIntentLatch(holdTicks int) *IntentLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &IntentLatch{holdTicks: holdTicks}
}

// Press records a steering press. Non-steering actions are ignored.
func (l *IntentLatch) Press(a Action) {
	if a != ActionLeft && a != ActionRight {
		return
	}
	l.dir = a
	l.remaining = l.holdTicks
}

// Release drops any held direction immediately.
func (l *IntentLatch) Release() {
	l.dir = ActionNone
	l.remaining = 0
}

// Held returns the currently held direction, or ActionNone.
func (l *IntentLatch) Held() Action {
	if l.remaining <= 0 {
		return ActionNone
	}
	return l.dir
}

// Apply sets the held direction on the frame and consumes one tick of hold.
func (l *IntentLatch) Apply(f *InputFrame) {
	if held := l.Held(); held != ActionNone {
		f.Set(held)
		l.remaining--
	}
}

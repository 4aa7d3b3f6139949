package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C, closed terminal
	IntentResize // Terminal resize event

	// Game intents
	IntentClick    // Left button pressed at X, Y
	IntentNavLeft  // Left arrow
	IntentNavRight // Right arrow
	IntentRetry    // r on a finished match
	IntentStart    // Enter or space on the start screen
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentClick:
		return "click"
	case IntentNavLeft:
		return "nav-left"
	case IntentNavRight:
		return "nav-right"
	case IntentRetry:
		return "retry"
	case IntentStart:
		return "start"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
type Intent struct {
	Type IntentType
	X, Y int // Cell of a click
	W, H int // New size of a resize
}

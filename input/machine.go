package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into Intents. tcell reports the button mask on every mouse
// event, so a click is emitted only on the transition from released to pressed.
type Machine struct {
	keyTable   *KeyTable
	buttonDown bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset forgets the held-button state, e.g. after the screen was rebuilt
func (m *Machine) Reset() {
	m.buttonDown = false
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no game meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, W: w, H: h}
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	pressed := ev.Buttons()&tcell.Button1 != 0
	defer func() { m.buttonDown = pressed }()

	if pressed && !m.buttonDown {
		x, y := ev.Position()
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	return nil
}

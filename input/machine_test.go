package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"Ctrl+C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"Left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentNavLeft},
		{"Right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentNavRight},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentStart},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentStart},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRetry},
		{"R", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), IntentRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			intent := m.Process(tt.ev)
			if intent == nil {
				t.Fatalf("Expected %v, got nil", tt.want)
			}
			if intent.Type != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, intent.Type)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if intent := m.Process(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); intent != nil {
		t.Errorf("Expected nil for unbound key, got %v", intent.Type)
	}
	if intent := m.Process(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); intent != nil {
		t.Errorf("Expected nil for up arrow, got %v", intent.Type)
	}
}

func TestClickIsEdgeTriggered(t *testing.T) {
	m := NewMachine()

	intent := m.Process(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if intent == nil || intent.Type != IntentClick {
		t.Fatalf("Expected click on press, got %+v", intent)
	}
	if intent.X != 12 || intent.Y != 7 {
		t.Errorf("Expected click at (12,7), got (%d,%d)", intent.X, intent.Y)
	}

	// Drag with the button held reports the same mask
	if intent := m.Process(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone)); intent != nil {
		t.Errorf("Expected held button to produce nothing, got %+v", intent)
	}

	if intent := m.Process(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone)); intent != nil {
		t.Errorf("Expected release to produce nothing, got %+v", intent)
	}

	intent = m.Process(tcell.NewEventMouse(30, 2, tcell.Button1, tcell.ModNone))
	if intent == nil || intent.Type != IntentClick || intent.X != 30 {
		t.Errorf("Expected second click at x=30, got %+v", intent)
	}
}

func TestOtherButtonsIgnored(t *testing.T) {
	m := NewMachine()
	for _, btn := range []tcell.ButtonMask{tcell.Button2, tcell.Button3, tcell.WheelUp} {
		if intent := m.Process(tcell.NewEventMouse(1, 1, btn, tcell.ModNone)); intent != nil {
			t.Errorf("Expected button %v to be ignored, got %+v", btn, intent)
		}
	}
}

func TestResetReleasesHeldButton(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	m.Reset()
	if intent := m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); intent == nil {
		t.Error("Expected click after reset")
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	intent := m.Process(tcell.NewEventResize(100, 30))
	if intent == nil || intent.Type != IntentResize {
		t.Fatalf("Expected resize, got %+v", intent)
	}
	if intent.W != 100 || intent.H != 30 {
		t.Errorf("Expected 100x30, got %dx%d", intent.W, intent.H)
	}
}

func TestIntentTypeString(t *testing.T) {
	if IntentClick.String() != "click" || IntentNone.String() != "none" {
		t.Errorf("Unexpected names %q %q", IntentClick.String(), IntentNone.String())
	}
}

package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]IntentType

	// Printable keys
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentNavLeft,
			tcell.KeyRight:  IntentNavRight,
			tcell.KeyEnter:  IntentStart,
		},
		Runes: map[rune]IntentType{
			'r': IntentRetry,
			'R': IntentRetry,
			' ': IntentStart,
		},
	}
}

// Lookup returns the intent bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			return IntentQuit
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}

package terminal

import (
	"time"
	"unicode"

	"PongArena/core"

	"github.com/gdamore/tcell"
)

type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionQuit
)

// ActionFor maps a key event to a game action. W/S drive the left paddle, the arrow keys the
// right one. Unknown keys map to ActionNone.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionRightUp
	case tcell.KeyDown:
		return ActionRightDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return ActionLeftUp
		case 's':
			return ActionLeftDown
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyState turns key presses into held buttons. Terminals only report presses and auto-repeats,
// never releases, so a button stays held for the hold window after its last press.
type KeyState struct {
	hold    time.Duration
	pressed map[Action]time.Time
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold, pressed: make(map[Action]time.Time)}
}

// opposite returns the other button of the same paddle.
func opposite(a Action) Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	}
	return ActionNone
}

// Press records a paddle button press and releases the opposite button of that paddle.
func (k *KeyState) Press(a Action, at time.Time) {
	if opposite(a) == ActionNone {
		return
	}
	k.pressed[a] = at
	delete(k.pressed, opposite(a))
}

func (k *KeyState) held(a Action, now time.Time) bool {
	at, ok := k.pressed[a]
	return ok && now.Sub(at) < k.hold
}

func (k *KeyState) Input(now time.Time) core.Input {
	return core.Input{
		LeftUp:    k.held(ActionLeftUp, now),
		LeftDown:  k.held(ActionLeftDown, now),
		RightUp:   k.held(ActionRightUp, now),
		RightDown: k.held(ActionRightDown, now),
	}
}

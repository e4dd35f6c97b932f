package term

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pongcade/pong"
)

// Terminals report key presses and auto-repeats but never releases. A held
// movement key is considered released once no repeat arrives before its
// deadline. The first deadline covers the keyboard's repeat delay.
const (
	initialHold = 550 * time.Millisecond
	repeatHold  = 120 * time.Millisecond
)

var runeKeys = map[rune]pong.Key{
	'w': pong.KeyP1Up,
	'W': pong.KeyP1Up,
	's': pong.KeyP1Down,
	'S': pong.KeyP1Down,
	' ': pong.KeyServe,
	'f': pong.KeyFullscreen,
	'F': pong.KeyFullscreen,
}

var specialKeys = map[tcell.Key]pong.Key{
	tcell.KeyUp:   pong.KeyP2Up,
	tcell.KeyDown: pong.KeyP2Down,
}

// Translate maps a terminal key to a game key. quit is true for the keys
// that leave the game.
func Translate(ev *tcell.EventKey) (k pong.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pong.KeyNone, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return pong.KeyNone, true
		}
		return runeKeys[ev.Rune()], false
	}
	return specialKeys[ev.Key()], false
}

// Input tracks held movement keys and synthesizes their release
type Input struct {
	held map[pong.Key]time.Time
}

// NewInput creates an empty key tracker
func NewInput() *Input {
	return &Input{held: make(map[pong.Key]time.Time)}
}

// Press records a movement key seen at now. Any other key held for the
// same paddle is forgotten without a release, since the terminal stops
// repeating it as soon as the new key goes down.
func (in *Input) Press(k pong.Key, now time.Time) {
	side, ok := k.Paddle()
	if !ok {
		return
	}
	for other := range in.held {
		if s, _ := other.Paddle(); s == side && other != k {
			delete(in.held, other)
		}
	}
	if _, repeat := in.held[k]; repeat {
		in.held[k] = now.Add(repeatHold)
	} else {
		in.held[k] = now.Add(initialHold)
	}
}

// Expired returns, in key order, the keys whose deadline has passed and
// stops tracking them.
func (in *Input) Expired(now time.Time) []pong.Key {
	var keys []pong.Key
	for k, deadline := range in.held {
		if !now.Before(deadline) {
			keys = append(keys, k)
			delete(in.held, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Held reports whether k is currently considered down
func (in *Input) Held(k pong.Key) bool {
	_, ok := in.held[k]
	return ok
}

package pong

import (
	"reflect"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		cur     GameState
		ev      Event
		next    GameState
		effects []Effect
	}{
		{StateWait, EventServe, StateActive, []Effect{EffectServe}},
		{StateActive, EventServe, StateActive, nil},
		{StateEnd, EventServe, StateWait, []Effect{EffectResetScores, EffectPark}},
		{StateActive, EventPoint, StateWait, []Effect{EffectPark}},
		{StateActive, EventMatchPoint, StateEnd, []Effect{EffectPark}},
		{StateWait, EventPoint, StateWait, nil},
		{StateEnd, EventMatchPoint, StateEnd, nil},
		{StateWait, EventMatchPoint, StateEnd, []Effect{EffectPark}},
		{StateActive, Event(99), StateActive, nil},
	}

	for _, tc := range tests {
		next, effects := Transition(tc.cur, tc.ev)
		if next != tc.next {
			t.Errorf("%s on %d: expected %s, got %s", tc.cur, tc.ev, tc.next, next)
		}
		if len(effects) != 0 || len(tc.effects) != 0 {
			if !reflect.DeepEqual(effects, tc.effects) {
				t.Errorf("%s on %d: expected effects %v, got %v", tc.cur, tc.ev, tc.effects, effects)
			}
		}
	}
}

func TestGameStateString(t *testing.T) {
	for s, want := range map[GameState]string{
		StateWait:     "wait",
		StateActive:   "active",
		StateEnd:      "end",
		GameState(42): "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectAt(Vec{X: 10, Y: 10}, Vec{X: 10, Y: 10})
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", RectAt(Vec{X: 10, Y: 10}, Vec{X: 2, Y: 2}), true},
		{"corner overlap", RectAt(Vec{X: 18, Y: 18}, Vec{X: 10, Y: 10}), true},
		{"touching edge", RectAt(Vec{X: 20, Y: 10}, Vec{X: 10, Y: 10}), false},
		{"apart", RectAt(Vec{X: 50, Y: 50}, Vec{X: 10, Y: 10}), false},
		{"x overlap only", RectAt(Vec{X: 10, Y: 40}, Vec{X: 10, Y: 10}), false},
	}

	for _, tc := range tests {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s reversed: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

package pong

import (
	"fmt"
	"image/color"
)

// Vec is a set of coordinates in 2-D plan. The origin is the bottom left
// corner of the court and y grows upward.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of v and o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned box
type Rect struct {
	Min Vec `json:"min"`
	Max Vec `json:"max"`
}

// RectAt returns the box of the given size centered on c
func RectAt(c, size Vec) Rect {
	return Rect{
		Min: Vec{X: c.X - size.X/2, Y: c.Y - size.Y/2},
		Max: Vec{X: c.X + size.X/2, Y: c.Y + size.Y/2},
	}
}

// Overlaps reports whether r and o share any area. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Size returns the width and height of r
func (r Rect) Size() Vec {
	return Vec{X: r.Max.X - r.Min.X, Y: r.Max.Y - r.Min.Y}
}

// GameState is an enum that represents all possible game states
type GameState byte

const (
	StateWait GameState = iota
	StateActive
	StateEnd
)

func (s GameState) String() string {
	switch s {
	case StateWait:
		return "wait"
	case StateActive:
		return "active"
	case StateEnd:
		return "end"
	}
	return "unknown"
}

// MarshalText encodes the state by name so spectators don't depend on the
// numeric values.
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name written by MarshalText
func (s *GameState) UnmarshalText(b []byte) error {
	for _, st := range []GameState{StateWait, StateActive, StateEnd} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", b)
}

var (
	BgColor   = color.Black
	TextColor = color.White
)

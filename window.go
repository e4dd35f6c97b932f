package main

import (
	"github.com/hajimehoshi/ebiten"

	"github.com/jtestard/pongcade/pong"
)

// window implements pong.Display on top of ebiten's global window state
type window struct {
	left, right, bottom, top float64
}

func newWindow(r pong.Rules) *window {
	return &window{right: r.Width, top: r.Height}
}

func (w *window) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

func (w *window) IsFullscreen() bool { return ebiten.IsFullscreen() }

// SetViewport sets the world area mapped onto the logical screen
func (w *window) SetViewport(left, right, bottom, top float64) {
	w.left, w.right, w.bottom, w.top = left, right, bottom, top
}

func (w *window) layout() (int, int) {
	return int(w.right - w.left), int(w.top - w.bottom)
}

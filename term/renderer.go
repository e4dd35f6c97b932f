// Package term runs the game in a terminal on top of tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pongcade/pong"
)

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[pong.Sprite]glyph{
	pong.SpritePlayer1: {'█', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	pong.SpritePlayer2: {'█', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	pong.SpriteBall:    {'O', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
}

// Renderer draws world coordinates onto a tcell screen, scaling the court
// to whatever size the terminal has.
type Renderer struct {
	screen tcell.Screen
	world  pong.Vec
}

// NewRenderer creates a renderer for a court of the given size
func NewRenderer(s tcell.Screen, world pong.Vec) *Renderer {
	return &Renderer{screen: s, world: world}
}

func (r *Renderer) scale() (sx, sy float64, w, h int) {
	w, h = r.screen.Size()
	return float64(w) / r.world.X, float64(h) / r.world.Y, w, h
}

// DrawSprite fills every cell the box covers. Boxes smaller than a cell
// still get one.
func (r *Renderer) DrawSprite(s pong.Sprite, b pong.Rect) {
	g, ok := glyphs[s]
	if !ok {
		return
	}
	sx, sy, w, h := r.scale()

	left := int(math.Floor(b.Min.X * sx))
	right := int(math.Ceil(b.Max.X*sx)) - 1
	top := h - int(math.Ceil(b.Max.Y*sy))
	bottom := h - 1 - int(math.Floor(b.Min.Y*sy))
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}

	for y := max(top, 0); y <= min(bottom, h-1); y++ {
		for x := max(left, 0); x <= min(right, w-1); x++ {
			r.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

// DrawText writes text starting at the cell holding (x, y). Terminals have a
// single font size, so size is ignored.
func (r *Renderer) DrawText(text string, x, y float64, c color.Color, size float64) {
	sx, sy, w, h := r.scale()
	col := int(math.Floor(x * sx))
	row := h - 1 - int(math.Floor(y*sy))
	if row < 0 || row >= h {
		return
	}
	cr, cg, cb, _ := c.RGBA()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8)))
	for _, ch := range text {
		if col >= w {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

package main

import (
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"

	"github.com/jtestard/pongcade/pong"
)

const dpi = 72

var (
	arcadeFont *truetype.Font
	faces      = map[float64]font.Face{}
)

func initFonts() error {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		return err
	}
	arcadeFont = tt
	return nil
}

// face returns the arcade font at size, creating it on first use
func face(size float64) font.Face {
	if f, ok := faces[size]; ok {
		return f
	}
	f := truetype.NewFace(arcadeFont, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	faces[size] = f
	return f
}

// renderer draws world coordinates onto an ebiten screen. The world's y
// axis points up, the screen's points down.
type renderer struct {
	screen  *ebiten.Image
	sprites map[pong.Sprite]*ebiten.Image
	height  float64
}

func (r *renderer) DrawSprite(s pong.Sprite, b pong.Rect) {
	img, ok := r.sprites[s]
	if !ok {
		return
	}
	w, h := img.Size()
	size := b.Size()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(w), size.Y/float64(h))
	op.GeoM.Translate(b.Min.X, r.height-b.Max.Y)
	r.screen.DrawImage(img, op)
}

// DrawText places the text baseline at (x, y)
func (r *renderer) DrawText(s string, x, y float64, c color.Color, size float64) {
	text.Draw(r.screen, s, face(size), int(math.Round(x)), int(math.Round(r.height-y)), c)
}

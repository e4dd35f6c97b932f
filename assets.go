package main

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"

	"github.com/jtestard/pongcade/pong"
)

var (
	spriteScaling = map[pong.Sprite]float64{
		pong.SpritePlayer1: pong.PaddleScaling,
		pong.SpritePlayer2: pong.PaddleScaling,
		pong.SpriteBall:    pong.BallScaling,
	}
	fallbackColor = map[pong.Sprite]color.Color{
		pong.SpritePlayer1: color.RGBA{120, 226, 160, 255},
		pong.SpritePlayer2: color.RGBA{240, 240, 240, 255},
		pong.SpriteBall:    color.RGBA{255, 200, 40, 255},
	}
)

// loadSprites loads every sprite image from dir and returns the world size
// of each, which is the image size times its scaling. A missing image is
// replaced by a plain rectangle of the default size.
func loadSprites(dir string) (map[pong.Sprite]*ebiten.Image, map[pong.Sprite]pong.Vec, error) {
	defaults := pong.DefaultRules()
	defaultSize := map[pong.Sprite]pong.Vec{
		pong.SpritePlayer1: defaults.PaddleSize[pong.Left],
		pong.SpritePlayer2: defaults.PaddleSize[pong.Right],
		pong.SpriteBall:    defaults.BallSize,
	}

	images := make(map[pong.Sprite]*ebiten.Image, len(pong.Sprites))
	sizes := make(map[pong.Sprite]pong.Vec, len(pong.Sprites))
	for _, s := range pong.Sprites {
		path := filepath.Join(dir, pong.SpritePaths[s])
		img, _, err := ebitenutil.NewImageFromFile(path, ebiten.FilterDefault)
		if err == nil {
			w, h := img.Size()
			images[s] = img
			sizes[s] = pong.Vec{X: float64(w) * spriteScaling[s], Y: float64(h) * spriteScaling[s]}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("load sprite %s: %w", path, err)
		}

		log.Printf("sprite %s not found, drawing a rectangle", path)
		size := defaultSize[s]
		img, err = ebiten.NewImage(int(size.X), int(size.Y), ebiten.FilterDefault)
		if err != nil {
			return nil, nil, fmt.Errorf("create placeholder sprite: %w", err)
		}
		img.Fill(fallbackColor[s])
		images[s] = img
		sizes[s] = size
	}
	return images, sizes, nil
}

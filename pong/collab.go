package pong

import (
	"image/color"
	"math/rand/v2"
)

// Sound identifies one of the game's sound effects
type Sound byte

const (
	SoundScore Sound = iota
	SoundHitLeft
	SoundHitRight
	SoundBounce
)

// Sounds lists every sound effect
var Sounds = []Sound{SoundScore, SoundHitLeft, SoundHitRight, SoundBounce}

// Sprite identifies one of the game's images
type Sprite byte

const (
	SpritePlayer1 Sprite = iota
	SpritePlayer2
	SpriteBall
)

// Sprites lists every sprite
var Sprites = []Sprite{SpritePlayer1, SpritePlayer2, SpriteBall}

// Asset paths, relative to the resource directory.
var (
	SoundPaths = map[Sound]string{
		SoundScore:    "sound/score.wav",
		SoundHitLeft:  "sound/hit-player1.wav",
		SoundHitRight: "sound/hit-player2.wav",
		SoundBounce:   "sound/bounce.wav",
	}
	SpritePaths = map[Sprite]string{
		SpritePlayer1: "images/clown.png",
		SpritePlayer2: "images/sheep.png",
		SpriteBall:    "images/ball-sun.png",
	}
)

// SoundPlayer plays a sound without waiting for it to finish.
type SoundPlayer interface {
	Play(Sound)
}

// Display controls the window the game is drawn into.
type Display interface {
	SetFullscreen(bool)
	IsFullscreen() bool
	SetViewport(left, right, bottom, top float64)
}

// Renderer draws one frame. Rectangles and text positions are in world
// coordinates.
type Renderer interface {
	DrawSprite(s Sprite, bounds Rect)
	DrawText(text string, x, y float64, c color.Color, size float64)
}

// Rand is the source of serve and kick speeds. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type nopSounds struct{}

func (nopSounds) Play(Sound) {}

type nopDisplay struct{ fullscreen bool }

func (d *nopDisplay) SetFullscreen(on bool)          { d.fullscreen = on }
func (d *nopDisplay) IsFullscreen() bool             { return d.fullscreen }
func (d *nopDisplay) SetViewport(_, _, _, _ float64) {}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

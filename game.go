package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/jtestard/pongcade/pong"
	"github.com/jtestard/pongcade/spectate"
)

type binding struct {
	key  ebiten.Key
	game pong.Key
}

var bindings = []binding{
	{ebiten.KeyF, pong.KeyFullscreen},
	{ebiten.KeySpace, pong.KeyServe},
	{ebiten.KeyW, pong.KeyP1Up},
	{ebiten.KeyS, pong.KeyP1Down},
	{ebiten.KeyUp, pong.KeyP2Up},
	{ebiten.KeyDown, pong.KeyP2Down},
}

// Game adapts a pong.Game to the ebiten run loop
type Game struct {
	game    *pong.Game
	sprites map[pong.Sprite]*ebiten.Image
	window  *window
	hub     *spectate.Hub
}

// Update polls input and advances the game by one frame
func (g *Game) Update(screen *ebiten.Image) error {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.game.KeyPress(b.game)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.game.KeyRelease(b.game)
		}
	}
	if g.hub != nil {
		g.drainRemote()
	}

	g.game.Update(1 / float64(ebiten.MaxTPS()))

	if g.hub != nil {
		g.hub.Publish(g.game.Snapshot())
	}
	return nil
}

func (g *Game) drainRemote() {
	for {
		select {
		case ev := <-g.hub.Events():
			if ev.Down {
				g.game.KeyPress(ev.Key)
			} else {
				g.game.KeyRelease(ev.Key)
			}
		default:
			return
		}
	}
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pong.BgColor)
	g.game.Draw(&renderer{
		screen:  screen,
		sprites: g.sprites,
		height:  g.game.Rules().Height,
	})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.layout()
}

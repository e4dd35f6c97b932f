package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten"

	"github.com/jtestard/pongcade/audio"
	"github.com/jtestard/pongcade/config"
	"github.com/jtestard/pongcade/pong"
	"github.com/jtestard/pongcade/spectate"
)

const windowTitle = "Pongcade"

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PONGCADE] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	sprites, sizes, err := loadSprites(cfg.Resources)
	if err != nil {
		return err
	}
	if err := initFonts(); err != nil {
		return err
	}

	sounds := audio.NewService(cfg.Volume)
	if err := sounds.LoadDir(cfg.Resources); err != nil {
		log.Printf("some sounds will be silent: %v", err)
	}
	if err := sounds.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sounds.Stop()
	sounds.SetMuted(cfg.Mute)

	rules := pong.DefaultRules()
	rules.PaddleSize = [2]pong.Vec{sizes[pong.SpritePlayer1], sizes[pong.SpritePlayer2]}
	rules.BallSize = sizes[pong.SpriteBall]

	win := newWindow(rules)
	g := &Game{
		game:    pong.NewGame(rules, pong.WithSounds(sounds), pong.WithDisplay(win)),
		sprites: sprites,
		window:  win,
	}

	if cfg.SpectateAddr != "" {
		g.hub = spectate.NewHub(64)
		go func() {
			log.Printf("starting spectator websocket on %s", cfg.SpectateAddr)
			if err := spectate.ListenAndServe(ctx, cfg.SpectateAddr, g.hub); err != nil {
				log.Printf("spectator server: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(int(rules.Width), int(rules.Height))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetRunnableOnUnfocused(true)
	if cfg.Fullscreen {
		win.SetFullscreen(true)
	}

	log.Println("starting the game...")
	return ebiten.RunGame(g)
}

// Package main runs Pongcade in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pongcade/audio"
	"github.com/jtestard/pongcade/config"
	"github.com/jtestard/pongcade/pong"
	"github.com/jtestard/pongcade/spectate"
	"github.com/jtestard/pongcade/term"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PONGTERM] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// The terminal belongs to tcell while the game runs.
	logFile, err := os.CreateTemp("", "pongterm-*.log")
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	defer log.SetOutput(os.Stderr)

	sounds := audio.NewService(cfg.Volume)
	if err := sounds.LoadDir(cfg.Resources); err != nil {
		log.Printf("some sounds will be silent: %v", err)
	}
	if err := sounds.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sounds.Stop()
	sounds.SetMuted(cfg.Mute)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g := pong.NewGame(pong.DefaultRules(), pong.WithSounds(sounds))
	loop := term.NewLoop(screen, g, cfg.TPS)

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(64)
		loop.Remote = hub.Events()
		loop.Publish = hub.Publish
		go func() {
			log.Printf("starting spectator websocket on %s", cfg.SpectateAddr)
			if err := spectate.ListenAndServe(ctx, cfg.SpectateAddr, hub); err != nil {
				log.Printf("spectator server: %v", err)
			}
		}()
	}

	return loop.Run(ctx)
}

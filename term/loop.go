package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pongcade/pong"
	"github.com/jtestard/pongcade/spectate"
)

// Loop drives a game from terminal events at a fixed tick rate. All game
// calls happen on the goroutine running Run.
type Loop struct {
	Screen   tcell.Screen
	Game     *pong.Game
	Input    *Input
	Renderer *Renderer
	TPS      int

	// Remote carries key events from spectators; nil disables it.
	Remote <-chan spectate.KeyEvent
	// Publish receives a snapshot after every tick; nil disables it.
	Publish func(pong.Snapshot)
}

// NewLoop wires a game to a screen
func NewLoop(s tcell.Screen, g *pong.Game, tps int) *Loop {
	r := g.Rules()
	return &Loop{
		Screen:   s,
		Game:     g,
		Input:    NewInput(),
		Renderer: NewRenderer(s, pong.Vec{X: r.Width, Y: r.Height}),
		TPS:      tps,
	}
}

// HandleKey applies a terminal key event and reports whether to quit
func (l *Loop) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	k, quit := Translate(ev)
	if quit {
		return true
	}
	l.Input.Press(k, now)
	l.Game.KeyPress(k)
	return false
}

// HandleRemote applies a key event received from a spectator
func (l *Loop) HandleRemote(ev spectate.KeyEvent) {
	if ev.Down {
		l.Game.KeyPress(ev.Key)
	} else {
		l.Game.KeyRelease(ev.Key)
	}
}

// Tick releases expired keys, advances the game one frame and redraws
func (l *Loop) Tick(now time.Time) {
	for _, k := range l.Input.Expired(now) {
		l.Game.KeyRelease(k)
	}
	l.Game.Update(1 / float64(l.TPS))

	l.Screen.Clear()
	l.Game.Draw(l.Renderer)
	l.Screen.Show()

	if l.Publish != nil {
		l.Publish(l.Game.Snapshot())
	}
}

// Run processes events and ticks until ctx is done or a quit key is
// pressed.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := l.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(l.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if l.HandleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				l.Screen.Sync()
			}
		case ev := <-l.Remote:
			l.HandleRemote(ev)
		case now := <-ticker.C:
			l.Tick(now)
		}
	}
}

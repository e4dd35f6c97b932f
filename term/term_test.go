package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pongcade/pong"
	"github.com/jtestard/pongcade/spectate"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	mainc, _, _, _ := s.GetContent(x, y)
	return mainc
}

func TestRendererDrawsCourt(t *testing.T) {
	screen := newScreen(t)
	g := pong.NewGame(pong.DefaultRules())
	r := NewRenderer(screen, pong.Vec{X: pong.ScreenWidth, Y: pong.ScreenHeight})

	g.Draw(r)

	// Left paddle spans x 80..120 and y 370..530: columns 4-5, rows 9-14.
	for _, c := range [][2]int{{4, 9}, {5, 14}, {4, 12}} {
		if got := runeAt(screen, c[0], c[1]); got != '█' {
			t.Errorf("expected paddle at %v, got %q", c, got)
		}
	}
	if got := runeAt(screen, 6, 12); got == '█' {
		t.Error("paddle drawn one column too wide")
	}
	// Right paddle spans x 1480..1520: columns 74-75.
	if got := runeAt(screen, 74, 12); got != '█' {
		t.Errorf("expected right paddle, got %q", got)
	}
	if got := runeAt(screen, 40, 12); got != 'O' {
		t.Errorf("expected ball at center, got %q", got)
	}
	// Score text at (750, 860).
	if got := runeAt(screen, 37, 1); got != '0' {
		t.Errorf("expected score at top, got %q", got)
	}
}

func TestRendererClipsOffscreen(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.Vec{X: pong.ScreenWidth, Y: pong.ScreenHeight})

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("drawing off screen panicked: %v", rec)
		}
	}()
	r.DrawSprite(pong.SpriteBall, pong.RectAt(pong.Vec{X: -500, Y: 2000}, pong.Vec{X: 20, Y: 20}))
	r.DrawText("far away", 5000, -100, pong.TextColor, 30)
	r.DrawText("long line of text past the edge", 1500, 450, pong.TextColor, 30)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		key  pong.Key
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), pong.KeyP1Up, false},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), pong.KeyP1Down, false},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), pong.KeyP2Up, false},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), pong.KeyP2Down, false},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), pong.KeyServe, false},
		{tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), pong.KeyFullscreen, false},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), pong.KeyNone, false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), pong.KeyNone, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), pong.KeyNone, true},
	}

	for _, tc := range tests {
		key, quit := Translate(tc.ev)
		if key != tc.key || quit != tc.quit {
			t.Errorf("%s: expected %s %v, got %s %v", tc.ev.Name(), tc.key, tc.quit, key, quit)
		}
	}
}

func TestInputSynthesizesRelease(t *testing.T) {
	in := NewInput()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	in.Press(pong.KeyP1Up, t0)
	if keys := in.Expired(t0.Add(initialHold - time.Millisecond)); len(keys) != 0 {
		t.Fatalf("released during repeat delay: %v", keys)
	}

	// An auto-repeat shortens the next deadline.
	in.Press(pong.KeyP1Up, t0.Add(500*time.Millisecond))
	if keys := in.Expired(t0.Add(600 * time.Millisecond)); len(keys) != 0 {
		t.Fatalf("released before repeat deadline: %v", keys)
	}
	keys := in.Expired(t0.Add(500*time.Millisecond + repeatHold))
	if len(keys) != 1 || keys[0] != pong.KeyP1Up {
		t.Fatalf("expected p1-up released, got %v", keys)
	}
	if in.Held(pong.KeyP1Up) {
		t.Error("key still held after release")
	}
}

func TestInputSwitchingDirection(t *testing.T) {
	in := NewInput()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	in.Press(pong.KeyP1Up, t0)
	in.Press(pong.KeyP2Down, t0)
	in.Press(pong.KeyP1Down, t0.Add(10*time.Millisecond))

	if in.Held(pong.KeyP1Up) {
		t.Error("opposite key of the same paddle still held")
	}
	keys := in.Expired(t0.Add(time.Second))
	if len(keys) != 2 || keys[0] != pong.KeyP1Down || keys[1] != pong.KeyP2Down {
		t.Fatalf("expected p1-down and p2-down, got %v", keys)
	}
}

func TestInputIgnoresControlKeys(t *testing.T) {
	in := NewInput()
	in.Press(pong.KeyServe, time.Now())
	if in.Held(pong.KeyServe) {
		t.Fatal("serve key tracked as held")
	}
}

func TestLoopTick(t *testing.T) {
	screen := newScreen(t)
	g := pong.NewGame(pong.DefaultRules())
	l := NewLoop(screen, g, 60)
	var published []pong.Snapshot
	l.Publish = func(s pong.Snapshot) { published = append(published, s) }
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if quit := l.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), t0); quit {
		t.Fatal("serve key quit the loop")
	}
	if g.State() != pong.StateActive {
		t.Fatalf("expected active state, got %s", g.State())
	}

	l.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), t0)
	l.Tick(t0.Add(16 * time.Millisecond))
	if y := g.Paddle(pong.Left).Pos.Y; y != pong.ScreenHeight/2+pong.PaddleSpeed {
		t.Fatalf("expected paddle moved up, got y %v", y)
	}

	l.Tick(t0.Add(time.Second))
	if vy := g.Paddle(pong.Left).VY; vy != 0 {
		t.Fatalf("expected synthesized release to stop paddle, got vy %v", vy)
	}
	if len(published) != 2 || published[1].State != pong.StateActive {
		t.Fatalf("unexpected snapshots %+v", published)
	}
	if quit := l.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), t0); !quit {
		t.Error("escape did not quit")
	}
}

func TestLoopRemoteKeys(t *testing.T) {
	screen := newScreen(t)
	g := pong.NewGame(pong.DefaultRules())
	l := NewLoop(screen, g, 60)

	l.HandleRemote(spectate.KeyEvent{Key: pong.KeyP2Down, Down: true})
	if vy := g.Paddle(pong.Right).VY; vy != -pong.PaddleSpeed {
		t.Fatalf("expected vy %v, got %v", -pong.PaddleSpeed, vy)
	}
	l.HandleRemote(spectate.KeyEvent{Key: pong.KeyP2Down})
	if vy := g.Paddle(pong.Right).VY; vy != 0 {
		t.Fatalf("expected paddle stopped, got %v", vy)
	}
}

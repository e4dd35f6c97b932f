package pong

import (
	"fmt"
)

// Score holds both players' points
type Score struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

// Game is the structure of the game state. It owns the paddles, the ball,
// the score and the current state, and is driven by a single run loop:
// key events and Update calls must not happen concurrently.
type Game struct {
	rules   Rules
	state   GameState
	score   Score
	ball    Ball
	paddles [2]Paddle

	sounds  SoundPlayer
	display Display
	rand    Rand
}

// Option configures the collaborators of a Game
type Option func(*Game)

// WithSounds sets the player for sound effects
func WithSounds(s SoundPlayer) Option {
	return func(g *Game) { g.sounds = s }
}

// WithDisplay sets the window the fullscreen key controls
func WithDisplay(d Display) Option {
	return func(g *Game) { g.display = d }
}

// WithRand sets the source of serve and kick speeds
func WithRand(r Rand) Option {
	return func(g *Game) { g.rand = r }
}

// NewGame creates and sets up a new game
func NewGame(rules Rules, opts ...Option) *Game {
	g := &Game{
		rules:   rules,
		sounds:  nopSounds{},
		display: &nopDisplay{},
		rand:    globalRand{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Setup()
	return g
}

// Setup places the paddles and the ball and starts a new match in the wait
// state.
func (g *Game) Setup() {
	r := g.rules
	g.paddles[Left] = Paddle{
		Pos:  Vec{X: r.PaddleInset, Y: r.Height / 2},
		Size: r.PaddleSize[Left],
	}
	g.paddles[Right] = Paddle{
		Pos:  Vec{X: r.Width - r.PaddleInset, Y: r.Height / 2},
		Size: r.PaddleSize[Right],
	}
	g.ball = Ball{Size: r.BallSize}
	g.SetDefaultBallPosition()
	g.state = StateWait
	g.score = Score{}
}

// KeyPress handles a key going down
func (g *Game) KeyPress(k Key) {
	if m, ok := movementKeys[k]; ok {
		g.paddles[m.side].VY = m.sign * g.rules.PaddleSpeed
		return
	}
	switch k {
	case KeyFullscreen:
		g.display.SetFullscreen(!g.display.IsFullscreen())
		g.display.SetViewport(0, g.rules.Width, 0, g.rules.Height)
	case KeyServe:
		g.apply(EventServe)
	}
}

// KeyRelease handles a key going up. Releasing either movement key of a
// paddle stops it, even while the other one is still held.
func (g *Game) KeyRelease(k Key) {
	if m, ok := movementKeys[k]; ok {
		g.paddles[m.side].VY = 0
	}
}

// Update advances the game by one frame. Velocities are per frame, so dt is
// only accepted to match run loops that report it.
func (g *Game) Update(dt float64) {
	for i := range g.paddles {
		g.paddles[i].Update()
	}
	g.ball.Update()

	g.checkScore()
	g.checkWalls()
	g.checkPaddles()
}

func (g *Game) checkScore() {
	x := g.ball.Pos.X
	if x >= 0 && x <= g.rules.Width {
		return
	}
	if x < 0 {
		g.score.P2++
	}
	if x > g.rules.Width {
		g.score.P1++
	}
	g.SetDefaultBallPosition()
	g.sounds.Play(SoundScore)
	if g.score.P1 == g.rules.WinScore || g.score.P2 == g.rules.WinScore {
		g.apply(EventMatchPoint)
	} else {
		g.apply(EventPoint)
	}
}

func (g *Game) checkWalls() {
	y := g.ball.Pos.Y
	if y < 0 || y > g.rules.Height {
		g.ball.Vel.Y = -g.ball.Vel.Y
		g.sounds.Play(SoundBounce)
	}
}

// checkPaddles kicks the ball away from any paddle it overlaps. The check
// runs regardless of the ball's direction, so a ball still inside a paddle
// is kicked again on the next frame.
func (g *Game) checkPaddles() {
	ball := g.ball.Bounds()
	if ball.Overlaps(g.paddles[Left].Bounds()) {
		g.ball.Vel.X = float64(g.randSpeed())
		g.sounds.Play(SoundHitLeft)
	}
	if ball.Overlaps(g.paddles[Right].Bounds()) {
		g.ball.Vel.X = -float64(g.randSpeed())
		g.sounds.Play(SoundHitRight)
	}
}

// SetDefaultBallPosition centers the ball without touching its velocity
func (g *Game) SetDefaultBallPosition() {
	g.ball.Pos = g.rules.Center()
}

// SetGameState switches to s. Switching to the current state is a no-op.
func (g *Game) SetGameState(s GameState) {
	g.applyEffects(enter(g.state, s))
	g.state = s
}

func (g *Game) apply(ev Event) {
	next, effects := Transition(g.state, ev)
	g.applyEffects(effects)
	g.state = next
}

func (g *Game) applyEffects(effects []Effect) {
	for _, e := range effects {
		switch e {
		case EffectServe:
			g.serve()
		case EffectPark:
			g.ball.Park()
		case EffectResetScores:
			g.score = Score{}
		}
	}
}

func (g *Game) serve() {
	g.ball.Vel = Vec{
		X: g.randDirection() * float64(g.randSpeed()),
		Y: g.randDirection() * g.rules.YSpeed,
	}
}

// randSpeed returns an integer speed in [MinXSpeed, MaxXSpeed]
func (g *Game) randSpeed() int {
	n := g.rules.MaxXSpeed - g.rules.MinXSpeed + 1
	if n <= 1 {
		return g.rules.MinXSpeed
	}
	return g.rules.MinXSpeed + g.rand.IntN(n)
}

func (g *Game) randDirection() float64 {
	if g.rand.IntN(2) == 0 {
		return 1
	}
	return -1
}

// State returns the current game state
func (g *Game) State() GameState { return g.state }

// Score returns the current score
func (g *Game) Score() Score { return g.score }

// Ball returns a copy of the ball
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle on side s
func (g *Game) Paddle(s Side) Paddle { return g.paddles[s] }

// Rules returns the rules the game was created with
func (g *Game) Rules() Rules { return g.rules }

// Winner returns the side that won the match. ok is false unless the game
// has ended.
func (g *Game) Winner() (s Side, ok bool) {
	if g.state != StateEnd {
		return Left, false
	}
	if g.score.P1 == g.rules.WinScore {
		return Left, true
	}
	return Right, true
}

// Draw emits the current frame to r
func (g *Game) Draw(r Renderer) {
	r.DrawSprite(SpritePlayer1, g.paddles[Left].Bounds())
	r.DrawSprite(SpritePlayer2, g.paddles[Right].Bounds())
	r.DrawSprite(SpriteBall, g.ball.Bounds())

	w, h := g.rules.Width, g.rules.Height
	r.DrawText(fmt.Sprintf("%d --- %d", g.score.P1, g.score.P2), w/2-50, h-40, TextColor, 30)
	if winner, ok := g.Winner(); ok {
		r.DrawText(fmt.Sprintf("%s wins!", winner), w/2-300, h/2-40, TextColor, 80)
	}
}

// Snapshot is the state of a game at the end of a frame
type Snapshot struct {
	Player1 Paddle    `json:"player1"`
	Player2 Paddle    `json:"player2"`
	Ball    Ball      `json:"ball"`
	Score   Score     `json:"score"`
	State   GameState `json:"status"`
}

// Snapshot captures the current state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player1: g.paddles[Left],
		Player2: g.paddles[Right],
		Ball:    g.ball,
		Score:   g.score,
		State:   g.state,
	}
}

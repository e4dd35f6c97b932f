package pong

// Default court and movement constants. Speeds are in world units per frame.
const (
	ScreenWidth  = 1600
	ScreenHeight = 900

	PaddleInset = 100
	PaddleSpeed = 7
	MinXSpeed   = 5
	MaxXSpeed   = 10
	YSpeed      = 10
	WinScore    = 5

	// Sprite scaling applied by front-ends to the loaded images.
	PaddleScaling = 0.2
	BallScaling   = 0.1
)

// Rules holds the dimensions and speeds a Game plays with.
type Rules struct {
	Width, Height float64
	PaddleInset   float64
	PaddleSpeed   float64
	MinXSpeed     int
	MaxXSpeed     int
	YSpeed        float64
	WinScore      int
	PaddleSize    [2]Vec
	BallSize      Vec
}

// DefaultRules returns the classic court. PaddleSize (indexed by Side) and
// BallSize are placeholders until a front-end replaces them with its sprite
// bounds.
func DefaultRules() Rules {
	return Rules{
		Width:       ScreenWidth,
		Height:      ScreenHeight,
		PaddleInset: PaddleInset,
		PaddleSpeed: PaddleSpeed,
		MinXSpeed:   MinXSpeed,
		MaxXSpeed:   MaxXSpeed,
		YSpeed:      YSpeed,
		WinScore:    WinScore,
		PaddleSize:  [2]Vec{{X: 40, Y: 160}, {X: 40, Y: 160}},
		BallSize:    Vec{X: 20, Y: 20},
	}
}

// Center returns the middle of the court
func (r Rules) Center() Vec {
	return Vec{X: r.Width / 2, Y: r.Height / 2}
}

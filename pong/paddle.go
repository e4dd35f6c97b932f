package pong

// Side identifies a player's half of the court
type Side byte

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "player 1"
	}
	return "player 2"
}

// Paddle is a player's bat. X never changes after setup; Y moves with VY
// every frame and is not clamped to the court.
type Paddle struct {
	Pos  Vec     `json:"position"`
	VY   float64 `json:"vy"`
	Size Vec     `json:"size"`
}

// Update applies the paddle's vertical velocity
func (p *Paddle) Update() {
	p.Pos.Y += p.VY
}

// Bounds returns the paddle's collision box
func (p *Paddle) Bounds() Rect {
	return RectAt(p.Pos, p.Size)
}

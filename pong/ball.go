package pong

// Ball is the single ball in play
type Ball struct {
	Pos  Vec `json:"position"`
	Vel  Vec `json:"velocity"`
	Size Vec `json:"size"`
}

// Update applies the ball's velocity
func (b *Ball) Update() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Bounds returns the ball's collision box
func (b *Ball) Bounds() Rect {
	return RectAt(b.Pos, b.Size)
}

// Park stops the ball where it is
func (b *Ball) Park() {
	b.Vel = Vec{}
}

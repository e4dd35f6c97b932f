package pong

// Key is an input the game reacts to. Front-ends translate their own key
// codes into these.
type Key byte

const (
	KeyNone Key = iota
	KeyFullscreen
	KeyServe
	KeyP1Up
	KeyP1Down
	KeyP2Up
	KeyP2Down
)

var keyNames = map[Key]string{
	KeyNone:       "none",
	KeyFullscreen: "fullscreen",
	KeyServe:      "serve",
	KeyP1Up:       "p1-up",
	KeyP1Down:     "p1-down",
	KeyP2Up:       "p2-up",
	KeyP2Down:     "p2-down",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// movement binds a key to a paddle and the sign of the velocity it applies
type movement struct {
	side Side
	sign float64
}

var movementKeys = map[Key]movement{
	KeyP1Up:   {Left, +1},
	KeyP1Down: {Left, -1},
	KeyP2Up:   {Right, +1},
	KeyP2Down: {Right, -1},
}

// Paddle returns the side a movement key controls
func (k Key) Paddle() (Side, bool) {
	m, ok := movementKeys[k]
	return m.side, ok
}

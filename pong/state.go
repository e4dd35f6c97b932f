package pong

// Event is something that may move the game between states
type Event byte

const (
	// EventServe is the serve key being pressed.
	EventServe Event = iota
	// EventPoint is a point scored that leaves both players below the win score.
	EventPoint
	// EventMatchPoint is a point scored that reaches the win score.
	EventMatchPoint
)

// Effect is a side effect the controller applies after a transition
type Effect byte

const (
	// EffectServe launches the ball with a random velocity.
	EffectServe Effect = iota
	// EffectPark zeroes the ball velocity.
	EffectPark
	// EffectResetScores sets both scores to zero.
	EffectResetScores
)

// Transition returns the state the game moves to when ev happens in cur,
// together with the effects to apply in order. It has no side effects.
func Transition(cur GameState, ev Event) (GameState, []Effect) {
	var (
		next    GameState
		effects []Effect
	)
	switch ev {
	case EventServe:
		switch cur {
		case StateWait:
			next = StateActive
		case StateEnd:
			next = StateWait
			effects = append(effects, EffectResetScores)
		default:
			return cur, nil
		}
	case EventPoint:
		next = StateWait
	case EventMatchPoint:
		next = StateEnd
	default:
		return cur, nil
	}
	return next, append(effects, enter(cur, next)...)
}

// enter returns the effects of switching from cur to next. Switching to the
// current state does nothing so a repeated call never re-serves.
func enter(cur, next GameState) []Effect {
	if cur == next {
		return nil
	}
	switch next {
	case StateActive:
		return []Effect{EffectServe}
	case StateWait, StateEnd:
		return []Effect{EffectPark}
	}
	return nil
}

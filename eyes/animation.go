package eyes

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownAnimation is returned for an animation index outside the table.
var ErrUnknownAnimation = errors.New("eyes: unknown animation")

// Animation is an animation index as sent by the remote host.
type Animation int

// Animations
const (
	Wakeup Animation = iota
	Reset
	MoveRightBig
	MoveLeftBig
	BlinkLong
	BlinkShort
	Happy
	Sleep
	SaccadeRandom
)

var animationNames = [...]string{
	Wakeup:        "wakeup",
	Reset:         "reset",
	MoveRightBig:  "move_right_big",
	MoveLeftBig:   "move_left_big",
	BlinkLong:     "blink_long",
	BlinkShort:    "blink_short",
	Happy:         "happy",
	Sleep:         "sleep",
	SaccadeRandom: "saccade_random",
}

// Animations lists every animation in index order.
func Animations() []Animation {
	out := make([]Animation, len(animationNames))
	for i := range out {
		out[i] = Animation(i)
	}
	return out
}

// Valid reports whether a is a known animation.
func (a Animation) Valid() bool {
	return a >= 0 && int(a) < len(animationNames)
}

func (a Animation) String() string {
	if !a.Valid() {
		return "animation(" + strconv.Itoa(int(a)) + ")"
	}
	return animationNames[a]
}

// ParseAnimation accepts an animation name or index.
func ParseAnimation(s string) (Animation, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if a := Animation(n); a.Valid() {
			return a, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownAnimation, n)
	}
	for i, name := range animationNames {
		if name == s {
			return Animation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnimation, s)
}

// Play runs animation a.
func (f *Face) Play(a Animation) error {
	switch a {
	case Wakeup:
		return f.Wakeup()
	case Reset:
		return f.Center(true)
	case MoveRightBig:
		return f.MoveBigEye(1)
	case MoveLeftBig:
		return f.MoveBigEye(-1)
	case BlinkLong:
		return f.Blink(10)
	case BlinkShort:
		return f.Blink(20)
	case Happy:
		return f.Happy()
	case Sleep:
		return f.Sleep()
	case SaccadeRandom:
		return f.SaccadeRandom()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAnimation, int(a))
	}
}

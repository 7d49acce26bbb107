// pkg/input/input.go
package input

// Intent is a single player command recognized by the simulation
type Intent uint8

const (
	MoveUp Intent = iota
	MoveDown
	Start
	Pause
	Reset
	Exit
)

// String returns a human-readable intent name
func (i Intent) String() string {
	switch i {
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case Start:
		return "start"
	case Pause:
		return "pause"
	case Reset:
		return "reset"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Intents is the set of intents gathered for one simulation tick.
// The zero value is the empty set. Intents outside the recognized
// range are dropped by With, so stale or malformed values cannot
// reach the simulation.
type Intents struct {
	bits uint8
}

// With returns the set with the given intent added
func (s Intents) With(i Intent) Intents {
	if i > Exit {
		return s
	}
	s.bits |= 1 << i
	return s
}

// Has reports whether the given intent is in the set
func (s Intents) Has(i Intent) bool {
	if i > Exit {
		return false
	}
	return s.bits&(1<<i) != 0
}

// Union returns the combination of two sets
func (s Intents) Union(other Intents) Intents {
	s.bits |= other.bits
	return s
}

// Empty reports whether no intents are set
func (s Intents) Empty() bool {
	return s.bits == 0
}

// Vertical collapses the movement intents into a paddle direction:
// -1 for up, +1 for down, 0 when neither or both are held.
func (s Intents) Vertical() float64 {
	up := s.Has(MoveUp)
	down := s.Has(MoveDown)
	switch {
	case up && !down:
		return -1
	case down && !up:
		return 1
	default:
		return 0
	}
}

// pkg/entity/side.go
package entity

// Side identifies one of the two players by their half of the field
type Side int

const (
	Left Side = iota
	Right
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// String returns a human-readable side name
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// pkg/entity/score.go
package entity

// Score tracks both players' point tallies
type Score struct {
	Left  int
	Right int
}

// Add increments the tally for the given side by one
func (s *Score) Add(side Side) {
	if side == Left {
		s.Left++
	} else {
		s.Right++
	}
}

// Get returns the tally for the given side
func (s *Score) Get(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Reset zeroes both tallies
func (s *Score) Reset() {
	s.Left = 0
	s.Right = 0
}

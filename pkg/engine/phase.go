// pkg/engine/phase.go
package engine

// Phase identifies a state in the game flow.
//
// The machine moves Idle -> Countdown -> Playing, bounces between
// Playing and PointScored while the match runs, and parks in GameOver
// once a side reaches the winning score. Reset returns to Idle from
// anywhere; Pause returns to Idle keeping the score.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhasePlaying
	PhasePointScored
	PhaseGameOver
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePointScored:
		return "point_scored"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// pkg/render/terminal/input.go
package terminal

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pong/pkg/input"
)

// Terminals report key presses but never key releases, so a movement
// key counts as held for this long after each press. Keyboard
// auto-repeat keeps refreshing the window while the key stays down.
const holdWindow = 150 * time.Millisecond

// Source turns terminal key events into simulation intents. A pump
// goroutine drains the screen's event queue; the game loop calls Poll
// once per tick from its own goroutine.
type Source struct {
	screen tcell.Screen

	mu        sync.Mutex
	oneShot   input.Intents
	upUntil   time.Time
	downUntil time.Time
}

// NewSource creates an input source and starts draining events from
// the screen. The source stops when the screen is finalized.
func NewSource(screen tcell.Screen) *Source {
	s := &Source{screen: screen}
	go s.pump()
	return s
}

// pump forwards screen events until the screen shuts down
func (s *Source) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.handle(ev)
	}
}

// handle processes one terminal event
func (s *Source) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// handleKey records the intent behind one key press
func (s *Source) handleKey(ev *tcell.EventKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	switch ev.Key() {
	case tcell.KeyUp:
		s.upUntil = now.Add(holdWindow)
	case tcell.KeyDown:
		s.downUntil = now.Add(holdWindow)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.oneShot = s.oneShot.With(input.Exit)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'k':
			s.upUntil = now.Add(holdWindow)
		case 'j':
			s.downUntil = now.Add(holdWindow)
		case 's':
			s.oneShot = s.oneShot.With(input.Start)
		case 'p':
			s.oneShot = s.oneShot.With(input.Pause)
		case 'r':
			s.oneShot = s.oneShot.With(input.Reset)
		case 'e':
			s.oneShot = s.oneShot.With(input.Exit)
		}
	}
}

// Poll returns the intents gathered since the previous call. One-shot
// intents are consumed; movement intents stay set while their hold
// window is open.
func (s *Source) Poll() input.Intents {
	s.mu.Lock()
	defer s.mu.Unlock()

	intents := s.oneShot
	s.oneShot = input.Intents{}

	now := time.Now()
	if now.Before(s.upUntil) {
		intents = intents.With(input.MoveUp)
	}
	if now.Before(s.downUntil) {
		intents = intents.With(input.MoveDown)
	}
	return intents
}

// pkg/input/input_test.go
package input

import "testing"

func TestIntents_WithHas(t *testing.T) {
	var set Intents

	set = set.With(MoveUp).With(Start)

	if !set.Has(MoveUp) {
		t.Error("Has(MoveUp) = false after With(MoveUp)")
	}
	if !set.Has(Start) {
		t.Error("Has(Start) = false after With(Start)")
	}
	if set.Has(MoveDown) || set.Has(Reset) || set.Has(Exit) {
		t.Error("Has() reports intents that were never added")
	}
}

func TestIntents_ZeroValueIsEmpty(t *testing.T) {
	var set Intents

	if !set.Empty() {
		t.Error("zero value Intents should be empty")
	}
	if set.Vertical() != 0 {
		t.Errorf("Vertical() = %v on empty set, expected 0", set.Vertical())
	}
}

func TestIntents_UnknownIntentDropped(t *testing.T) {
	var set Intents

	set = set.With(Intent(200))

	if !set.Empty() {
		t.Error("unknown intent should be dropped, set should stay empty")
	}
	if set.Has(Intent(200)) {
		t.Error("Has() should never report an unknown intent")
	}
}

func TestIntents_Vertical(t *testing.T) {
	tests := []struct {
		name     string
		set      Intents
		expected float64
	}{
		{
			name:     "up_only",
			set:      Intents{}.With(MoveUp),
			expected: -1,
		},
		{
			name:     "down_only",
			set:      Intents{}.With(MoveDown),
			expected: 1,
		},
		{
			name:     "both_cancel",
			set:      Intents{}.With(MoveUp).With(MoveDown),
			expected: 0,
		},
		{
			name:     "unrelated_intents_ignored",
			set:      Intents{}.With(Start).With(Reset),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Vertical(); got != tt.expected {
				t.Errorf("Vertical() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestIntents_Union(t *testing.T) {
	a := Intents{}.With(MoveUp)
	b := Intents{}.With(Pause)

	merged := a.Union(b)

	if !merged.Has(MoveUp) || !merged.Has(Pause) {
		t.Error("Union() should contain intents from both sets")
	}
	if a.Has(Pause) {
		t.Error("Union() must not mutate its receiver")
	}
}

func TestIntent_String(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected string
	}{
		{intent: MoveUp, expected: "move_up"},
		{intent: MoveDown, expected: "move_down"},
		{intent: Start, expected: "start"},
		{intent: Pause, expected: "pause"},
		{intent: Reset, expected: "reset"},
		{intent: Exit, expected: "exit"},
		{intent: Intent(42), expected: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.expected {
			t.Errorf("Intent(%d).String() = %q, expected %q", int(tt.intent), got, tt.expected)
		}
	}
}

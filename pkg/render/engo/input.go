// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/input"
)

// Button names for the control bindings.
const (
	buttonUp    = "moveUp"
	buttonDown  = "moveDown"
	buttonStart = "start"
	buttonPause = "pause"
	buttonReset = "reset"
	buttonExit  = "exit"
)

// RegisterButtons binds keyboard keys to the game controls. Arrow keys
// and vi-style k/j both steer the paddle.
func RegisterButtons() {
	engo.Input.RegisterButton(buttonUp, engo.KeyArrowUp, engo.KeyK)
	engo.Input.RegisterButton(buttonDown, engo.KeyArrowDown, engo.KeyJ)
	engo.Input.RegisterButton(buttonStart, engo.KeyS)
	engo.Input.RegisterButton(buttonPause, engo.KeyP)
	engo.Input.RegisterButton(buttonReset, engo.KeyR)
	engo.Input.RegisterButton(buttonExit, engo.KeyE, engo.KeyEscape)
}

// PollIntents samples the button states into one set of intents.
// Movement reads held state; everything else fires on the press edge.
func PollIntents() input.Intents {
	intents := input.Intents{}
	if engo.Input.Button(buttonUp).Down() {
		intents = intents.With(input.MoveUp)
	}
	if engo.Input.Button(buttonDown).Down() {
		intents = intents.With(input.MoveDown)
	}
	if engo.Input.Button(buttonStart).JustPressed() {
		intents = intents.With(input.Start)
	}
	if engo.Input.Button(buttonPause).JustPressed() {
		intents = intents.With(input.Pause)
	}
	if engo.Input.Button(buttonReset).JustPressed() {
		intents = intents.With(input.Reset)
	}
	if engo.Input.Button(buttonExit).JustPressed() {
		intents = intents.With(input.Exit)
	}
	return intents
}

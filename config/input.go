package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionToggleDebug
	ActionCharacter1
	ActionCharacter2
	ActionCharacter3
	ActionCharacter4
	ActionCharacter5
	ActionCharacter6
	ActionCharacter7
	ActionCharacter8
	ActionCharacter9
	ActionCount // Must be last - used for array sizing
)

// CharacterActions lists the character select actions in slot order.
var CharacterActions = [...]ActionID{
	ActionCharacter1, ActionCharacter2, ActionCharacter3,
	ActionCharacter4, ActionCharacter5, ActionCharacter6,
	ActionCharacter7, ActionCharacter8, ActionCharacter9,
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionCharacter1: {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionCharacter2: {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionCharacter3: {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionCharacter4: {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionCharacter5: {Keys: []ebiten.Key{ebiten.KeyDigit5}},
			ActionCharacter6: {Keys: []ebiten.Key{ebiten.KeyDigit6}},
			ActionCharacter7: {Keys: []ebiten.Key{ebiten.KeyDigit7}},
			ActionCharacter8: {Keys: []ebiten.Key{ebiten.KeyDigit8}},
			ActionCharacter9: {Keys: []ebiten.Key{ebiten.KeyDigit9}},
		},
	}
}

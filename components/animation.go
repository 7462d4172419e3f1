package components

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/yohamta/donburi"
)

// The three animation components are split by writer: movement owns the
// controller and the Is* flags, the animation system owns the timer and the
// Was* flags.
var (
	AnimationController = donburi.NewComponentType[animations.Controller]()
	AnimationState      = donburi.NewComponentType[animations.State]()
	AnimationTimer      = donburi.NewComponentType[animations.Timer]()
)

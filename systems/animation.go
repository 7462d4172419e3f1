package systems

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var animatedQuery = donburi.NewQuery(filter.Contains(
	components.AnimationController,
	components.AnimationState,
	components.AnimationTimer,
	components.Character,
	components.Sprite,
))

// UpdateAnimation advances every animated character by one tick. It only
// writes the timer and the atlas index.
func UpdateAnimation(ecs *ecs.ECS) {
	targets := animationTargets(ecs.World)
	animations.AnimateAll(targets, clockDelta(ecs.World), cfg.Animation.Workers)
}

// UpdateAnimationFlags commits the motion flags of every character. It must
// run after UpdateAnimation.
func UpdateAnimationFlags(ecs *ecs.ECS) {
	var states []*animations.State
	components.AnimationState.Each(ecs.World, func(e *donburi.Entry) {
		states = append(states, components.AnimationState.Get(e))
	})
	animations.CommitAll(states)
}

func animationTargets(w donburi.World) []animations.Target {
	var targets []animations.Target
	animatedQuery.Each(w, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		target := animations.Target{
			Controller: components.AnimationController.Get(e),
			State:      components.AnimationState.Get(e),
			Timer:      components.AnimationTimer.Get(e),
			Entry:      &components.Character.Get(e).Entry,
			Ready:      sprite.Atlas != nil,
		}
		if sprite.Atlas != nil {
			target.Frame = &sprite.Atlas.Index
		}
		targets = append(targets, target)
	})
	return targets
}

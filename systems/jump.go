package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/config/catalog"
	"github.com/automoto/overworld/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump starts a hop on the jump action and plays it out. While the
// hop runs the character animates with the jump kind.
func UpdateJump(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	dt := float32(clockDelta(ecs.World).Seconds())

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)

		if player.Jump == nil && input.Action(cfg.ActionJump).JustPressed {
			player.Jump = newHop(cfg.Player.JumpHeight, cfg.Player.JumpDuration.Seconds())
		}
		if player.Jump != nil {
			offset, _, done := player.Jump.Update(dt)
			player.JumpOffset = float64(offset)
			if done {
				player.Jump = nil
				player.JumpOffset = 0
			}
		}

		if !playerEntry.HasComponent(components.AnimationState) {
			return
		}
		jumping := player.Jump != nil
		components.AnimationState.Get(playerEntry).IsJumping = jumping
		ctrl := components.AnimationController.Get(playerEntry)
		ctrl.Current = jumpKind(jumping)
	})
}

// newHop rises to height in the first half of duration and falls back in
// the second.
func newHop(height, duration float64) *gween.Sequence {
	half := float32(duration / 2)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, float32(height), half, ease.OutQuad),
		gween.New(float32(height), 0, half, ease.InQuad),
	)
	return seq
}

func jumpKind(jumping bool) catalog.AnimationKind {
	if jumping {
		return catalog.AnimationJump
	}
	return catalog.AnimationWalk
}

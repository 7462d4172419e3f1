package systems

import (
	"math"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns input into movement. It writes the movement-owned
// animation fields: IsMoving every tick and Facing while moving.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	dt := clockDelta(ecs.World).Seconds()

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry, input, dt)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry, input *components.InputData, dt float64) {
	player := components.Player.Get(playerEntry)
	dir := inputDirection(input)
	player.Direction = dir
	moving := dir.X != 0 || dir.Y != 0

	if moving {
		length := math.Hypot(dir.X, dir.Y)
		step := player.Speed * dt / length
		// Direction is Y-up; the arena is Y-down.
		moveObject(components.Object.Get(playerEntry).Object, dir.X*step, -dir.Y*step)
	}

	if !playerEntry.HasComponent(components.AnimationState) {
		return
	}
	state := components.AnimationState.Get(playerEntry)
	state.IsMoving = moving
	if moving {
		ctrl := components.AnimationController.Get(playerEntry)
		ctrl.Facing = animations.FacingFromVector(dir)
	}
}

// inputDirection maps the directional actions to a Y-up vector.
func inputDirection(input *components.InputData) dmath.Vec2 {
	var dir dmath.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y--
	}
	return dir
}

// moveObject moves one axis at a time, stopping at the first solid.
func moveObject(obj *resolv.Object, dx, dy float64) {
	if obj == nil {
		return
	}
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = towardContact(dx, check.ContactWithObject(solids[0]).X())
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = towardContact(dy, check.ContactWithObject(solids[0]).Y())
			}
		}
		obj.Y += dy
	}
	obj.Update()
}

// towardContact shortens a step to the contact distance. The broad phase
// can report a solid that the step would not reach; that step is kept.
func towardContact(step, contact float64) float64 {
	if math.Abs(contact) < math.Abs(step) {
		return contact
	}
	return step
}

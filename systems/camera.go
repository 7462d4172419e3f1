package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player and moves the fog circle
// onto the player.
func UpdateCamera(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
		if config.Camera.PixelSnap {
			camera.Position.X = math.Round(camera.Position.X)
			camera.Position.Y = math.Round(camera.Position.Y)
		}
	}

	if fogEntry, ok := components.Fog.First(e.World); ok {
		fog := components.Fog.Get(fogEntry)
		fog.Center.X = targetX
		fog.Center.Y = targetY
		fog.Radius = config.Fog.VisionRadius
	}
}

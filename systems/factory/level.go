package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, the collision space sized to it and
// a wall for every solid.
func CreateLevel(ecs *ecs.ECS, level assets.Level, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: &level})

	CreateSpace(ecs, level.Width, level.Height, cellWidth, cellHeight)
	for _, solid := range level.Solids {
		CreateWall(ecs, solid.X, solid.Y, solid.Width, solid.Height)
	}
	return entry
}

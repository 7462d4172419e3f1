package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
	return camera
}

func CreateFog(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	fog := archetypes.Fog.Spawn(ecs)
	components.Fog.Set(fog, &components.FogData{
		Center: math.NewVec2(x, y),
		Radius: cfg.Fog.VisionRadius,
	})
	return fog
}

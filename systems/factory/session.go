package factory

import (
	"time"

	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// monitorWindow is the number of frame samples averaged for FPS.
const monitorWindow = 60

// CreateSession spawns the world resources: clock, input, catalog and
// diagnostics. The catalog starts empty.
func CreateSession(ecs *ecs.ECS, source string, textures *assets.TextureLoader, now func() time.Time) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	if now == nil {
		now = time.Now
	}
	components.Catalog.SetValue(session, components.CatalogData{
		Source:   source,
		Textures: textures,
	})
	components.Diagnostics.SetValue(session, components.DiagnosticsData{
		Monitor: components.PerformanceMonitor{Window: monitorWindow},
		Overlay: cfg.Debug.Overlay,
		Now:     now,
	})
	return session
}

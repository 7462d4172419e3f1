package scenes

import (
	"image/color"
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is the arena with one player walking around in it.
type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close stops the catalog watcher, if one is running.
func (ws *WorldScene) Close() error {
	if ws.ecs == nil {
		return nil
	}
	entry, ok := components.Catalog.First(ws.ecs.World)
	if !ok {
		return nil
	}
	data := components.Catalog.Get(entry)
	if data.Watcher == nil {
		return nil
	}
	err := data.Watcher.Close()
	data.Watcher = nil
	return err
}

func (ws *WorldScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn("fog shader unavailable", "err", err)
	}
	if err := fonts.LoadFontFile(fonts.Debug, cfg.Debug.FontPath, cfg.Debug.FontSize); err != nil {
		log.Warn("debug font unavailable, using built-in face", "err", err)
		_ = fonts.LoadFontFile(fonts.Debug, "", 0)
	}

	ws.ecs = NewWorld(assets.NewTextureLoader(textureRoot(cfg.Assets.CatalogPath)), time.Now)
}

// NewWorld builds the arena ECS in system order and starts loading the
// catalog. textures may be nil to build sprites without images.
func NewWorld(textures *assets.TextureLoader, now func() time.Time) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateCatalog)
	e.AddSystem(systems.InitializePlayerCharacters)
	e.AddSystem(systems.SwitchCharacter)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateJump)
	e.AddSystem(systems.UpdateAnimation)
	e.AddSystem(systems.UpdateAnimationFlags)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateDiagnostics)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawFog)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	level := assets.MustLoadLevel(cfg.Level.Path)
	factory.CreateLevel(e, level, cfg.Level.CellWidth, cfg.Level.CellHeight)

	session := factory.CreateSession(e, cfg.Assets.CatalogPath, textures, now)
	data := components.Catalog.Get(session)
	if cfg.Assets.Watch && cfg.Assets.CatalogPath != "" {
		watcher, err := assets.NewWatcher(cfg.Assets.CatalogPath)
		if err != nil {
			log.Warn("catalog hot reload disabled", "path", cfg.Assets.CatalogPath, "err", err)
		} else {
			data.Watcher = watcher
		}
	}
	systems.StartCatalogLoad(data)

	spawn := level.PlayerSpawns[0]
	factory.CreatePlayer(e, spawn.X, spawn.Y)
	factory.CreateCamera(e, spawn.X, spawn.Y)
	factory.CreateFog(e, spawn.X, spawn.Y)

	log.Info("world ready", "level", level.Name, "solids", len(level.Solids), "catalog", catalogName(cfg.Assets.CatalogPath))
	return e
}

// textureRoot resolves texture paths next to the catalog on disk, or under
// the assets directory for the embedded catalog.
func textureRoot(catalogPath string) string {
	if catalogPath == "" {
		return "assets"
	}
	return filepath.Dir(catalogPath)
}

func catalogName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

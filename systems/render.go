package systems

import (
	"image"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

type frameKey struct {
	sheet *ebiten.Image
	index int
}

// frameCache holds atlas sub-images so each frame is sliced once.
var frameCache = map[frameKey]*ebiten.Image{}

// FrameRect is the source rectangle of frame index in a grid atlas.
func FrameRect(atlas *components.TextureAtlas, index int) image.Rectangle {
	col := index % atlas.Columns
	row := index / atlas.Columns
	x := col * atlas.TileSize
	y := row * atlas.TileSize
	return image.Rect(x, y, x+atlas.TileSize, y+atlas.TileSize)
}

func frameImage(sprite *components.SpriteData) *ebiten.Image {
	atlas := sprite.Atlas
	if atlas.Columns <= 0 || atlas.Index < 0 || atlas.Index >= atlas.Frames() {
		return nil
	}
	key := frameKey{sheet: sprite.Image, index: atlas.Index}
	if img, ok := frameCache[key]; ok {
		return img
	}
	img := sprite.Image.SubImage(FrameRect(atlas, atlas.Index)).(*ebiten.Image)
	frameCache[key] = img
	return img
}

func cameraOffset(w donburi.World, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawArena fills the level floor and its walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs.World, screen)
	if !ok {
		return
	}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			vector.FillRect(screen, float32(camX), float32(camY), float32(level.Width), float32(level.Height), cfg.Level.FloorColor, false)
		}
	}
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Level.WallColor, false)
	})
}

// DrawCharacters draws the current atlas frame of every player, centred on
// its collision box and lifted by the jump offset.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs.World, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || sprite.Atlas == nil {
			return
		}
		img := frameImage(sprite)
		if img == nil {
			return
		}
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		half := float64(sprite.Atlas.TileSize) / 2

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-half, -half)
		drawOp.GeoM.Scale(cfg.Player.Scale, cfg.Player.Scale)
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H/2-player.JumpOffset)
		drawOp.GeoM.Translate(camX, camY)
		screen.DrawImage(img, drawOp)
	})
}

// DrawFog darkens everything outside the vision circle.
func DrawFog(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Fog.Enabled || assets.FogShader == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs.World, screen)
	if !ok {
		return
	}
	fogEntry, ok := components.Fog.First(ecs.World)
	if !ok {
		return
	}
	fog := components.Fog.Get(fogEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Center": []float32{float32(fog.Center.X + camX), float32(fog.Center.Y + camY)},
		"Radius": float32(fog.Radius),
	}
	screen.DrawRectShader(width, height, assets.FogShader, op)
}

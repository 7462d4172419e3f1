package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 14

// DebugLines describes every animated character for the overlay.
func DebugLines(w donburi.World) []string {
	var lines []string
	animatedQuery.Each(w, func(e *donburi.Entry) {
		ctrl := components.AnimationController.Get(e)
		state := components.AnimationState.Get(e)
		character := components.Character.Get(e)
		sprite := components.Sprite.Get(e)

		if sprite.Atlas == nil {
			lines = append(lines, fmt.Sprintf("%s: atlas pending", character.Entry.Name))
			return
		}
		clipText := "unresolved"
		if clip, ok := animations.ResolveClip(*ctrl, &character.Entry); ok {
			clipText = clip.String()
		}
		lines = append(lines, fmt.Sprintf("%s %s/%s frame %d clip %s moving=%t jumping=%t",
			character.Entry.Name, ctrl.Current, ctrl.Facing, sprite.Atlas.Index, clipText,
			state.IsMoving, state.IsJumping))
	})
	return lines
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	diagEntry, ok := components.Diagnostics.First(ecs.World)
	if !ok {
		return
	}
	diag := components.Diagnostics.Get(diagEntry)
	if !diag.Overlay {
		return
	}

	drawCollisionOutlines(ecs.World, screen)

	lines := append([]string{fmt.Sprintf("fps %.1f  tick %d", diag.Monitor.FPS(), diag.Frames)}, DebugLines(ecs.World)...)
	vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(len(lines)*debugLineHeight+6), cfg.BlackOverlay, false)
	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 4, (i+1)*debugLineHeight, cfg.White)
	}
}

func drawCollisionOutlines(w donburi.World, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(w, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.LightBlue
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}

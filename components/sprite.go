package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TextureAtlas describes a uniform grid of frames. Index is the frame the
// renderer draws.
type TextureAtlas struct {
	Columns  int
	Rows     int
	TileSize int
	Index    int
}

// Frames is the number of cells in the grid.
func (a *TextureAtlas) Frames() int {
	return a.Columns * a.Rows
}

type SpriteData struct {
	Image *ebiten.Image
	// Atlas is nil until the character's texture has been loaded.
	Atlas *TextureAtlas
}

var Sprite = donburi.NewComponentType[SpriteData]()

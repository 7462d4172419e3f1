package factory

import (
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config/catalog"
	"github.com/yohamta/donburi"
)

// CharacterSprite builds the sprite for a catalog entry. The atlas grid is
// AtlasColumns wide and tall enough for the highest animation row. With a
// nil loader the sprite has a layout but no image.
func CharacterSprite(entry *catalog.CharacterEntry, textures *assets.TextureLoader) components.SpriteData {
	atlas := &components.TextureAtlas{
		Columns:  entry.AtlasColumns,
		Rows:     entry.AtlasRows(),
		TileSize: entry.TileSize,
		Index:    0,
	}
	sprite := components.SpriteData{Atlas: atlas}
	if textures != nil {
		sprite.Image = textures.Texture(entry.TexturePath, atlas.Columns, atlas.Rows, atlas.TileSize)
	}
	return sprite
}

// AddAnimation gives a player everything the animation system needs:
// default controller and flags, a timer at the default frame time, the
// selected character entry and its sprite.
func AddAnimation(e *donburi.Entry, index int, entry *catalog.CharacterEntry, textures *assets.TextureLoader) {
	ctrl := animations.NewController()
	state := animations.State{}
	timer := animations.NewTimer(animations.DefaultFrameTime)
	character := components.CharacterData{Index: index, Entry: entry.Clone()}

	donburi.Add(e, components.AnimationController, &ctrl)
	donburi.Add(e, components.AnimationState, &state)
	donburi.Add(e, components.AnimationTimer, &timer)
	donburi.Add(e, components.Character, &character)
	components.Sprite.SetValue(e, CharacterSprite(entry, textures))
}

// SetCharacter swaps the character a player animates with. The frame index
// goes back to 0; the animation system clamps it into the right clip.
func SetCharacter(e *donburi.Entry, index int, entry *catalog.CharacterEntry, textures *assets.TextureLoader) {
	components.Character.SetValue(e, components.CharacterData{Index: index, Entry: entry.Clone()})
	components.Sprite.SetValue(e, CharacterSprite(entry, textures))
}

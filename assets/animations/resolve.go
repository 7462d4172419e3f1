package animations

import "github.com/automoto/overworld/config/catalog"

// ResolveClip finds the clip for the controller's current kind and facing.
// It reports false when the catalog entry has no usable definition for the
// kind; callers skip the entity for the tick.
func ResolveClip(ctrl Controller, entry *catalog.CharacterEntry) (Clip, bool) {
	def, ok := definition(ctrl, entry)
	if !ok {
		return Clip{}, false
	}
	row := def.StartRow
	if def.Directional {
		row += ctrl.Facing.RowOffset()
	}
	return NewClip(row, def.FrameCount, entry.AtlasColumns), true
}

func definition(ctrl Controller, entry *catalog.CharacterEntry) (catalog.AnimationDefinition, bool) {
	if entry == nil {
		return catalog.AnimationDefinition{}, false
	}
	def, ok := entry.Animations[ctrl.Current]
	if !ok || def.FrameCount < 1 {
		return catalog.AnimationDefinition{}, false
	}
	return def, true
}

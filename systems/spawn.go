package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitializePlayerCharacters gives every player that has no animation
// components yet the selected character. It does nothing until the catalog
// is loaded and the selected index is valid.
func InitializePlayerCharacters(e *ecs.ECS) {
	catalogEntry, ok := components.Catalog.First(e.World)
	if !ok {
		return
	}
	data := components.Catalog.Get(catalogEntry)
	entry, ok := data.Entry()
	if !ok {
		return
	}

	// Collect first: adding components moves entries between archetypes.
	var pending []*donburi.Entry
	tags.Player.Each(e.World, func(p *donburi.Entry) {
		if !p.HasComponent(components.AnimationController) {
			pending = append(pending, p)
		}
	})

	for _, p := range pending {
		factory.AddAnimation(p, data.Selected, entry, data.Textures)
		log.Info("player character initialised", "character", entry.Name, "rows", entry.AtlasRows())
	}
}

// SwitchCharacter selects character N when the Nth character action is
// pressed. Slots past the end of the catalog are ignored.
func SwitchCharacter(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	slot := -1
	for i, action := range cfg.CharacterActions {
		if input.Action(action).JustPressed {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}

	catalogEntry, ok := components.Catalog.First(e.World)
	if !ok {
		return
	}
	selectCharacter(e.World, components.Catalog.Get(catalogEntry), slot)
}

func selectCharacter(w donburi.World, data *components.CatalogData, slot int) {
	if data.List == nil || slot >= len(data.List.Characters) {
		log.Debug("no character in slot", "slot", slot+1)
		return
	}
	data.Selected = slot
	entry, _ := data.Entry()

	for _, player := range initialisedPlayers(w) {
		factory.SetCharacter(player, slot, entry, data.Textures)
	}
	log.Info("character switched", "slot", slot+1, "character", entry.Name)
	_ = SaveSelection(entry.Name)
}

package systems

import (
	"path/filepath"

	"github.com/automoto/overworld/assets/characters"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config/catalog"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartCatalogLoad reads the catalog at source in the background. Players
// stay uninitialised until UpdateCatalog picks the result up.
func StartCatalogLoad(data *components.CatalogData) {
	pending := make(chan components.CatalogLoad, 1)
	data.Pending = pending
	source := data.Source
	go func() {
		list, err := characters.Load(source)
		pending <- components.CatalogLoad{List: list, Err: err}
	}()
}

// UpdateCatalog installs the initial catalog once it has loaded and applies
// reloads reported by the watcher. A catalog that fails to parse is logged
// and the previous one stays in use.
func UpdateCatalog(e *ecs.ECS) {
	entry, ok := components.Catalog.First(e.World)
	if !ok {
		return
	}
	data := components.Catalog.Get(entry)

	if data.Pending != nil {
		select {
		case res := <-data.Pending:
			data.Pending = nil
			if res.Err != nil {
				log.Error("catalog load failed", "source", sourceName(data.Source), "err", res.Err)
			} else {
				installCatalog(data, res.List)
				restoreSelection(data)
			}
		default:
		}
	}

	if data.Watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-data.Watcher.Events:
			if !ok {
				data.Watcher = nil
				return
			}
			if sameFile(path, data.Source) {
				ReloadCatalog(e.World, data)
			}
		case err, ok := <-data.Watcher.Errors:
			if !ok {
				data.Watcher = nil
				return
			}
			log.Warn("catalog watcher", "err", err)
		default:
			return
		}
	}
}

// ReloadCatalog rereads the catalog source and refreshes every initialised
// player with the entry at the selected index.
func ReloadCatalog(w donburi.World, data *components.CatalogData) {
	list, err := characters.Load(data.Source)
	if err != nil {
		log.Warn("catalog reload failed, keeping previous catalog", "source", sourceName(data.Source), "err", err)
		return
	}
	installCatalog(data, list)
	if data.Selected >= len(list.Characters) {
		data.Selected = 0
	}

	entry, ok := data.Entry()
	if !ok {
		return
	}
	if data.Textures != nil {
		data.Textures.Forget(entry.TexturePath)
	}
	for _, player := range initialisedPlayers(w) {
		factory.SetCharacter(player, data.Selected, entry, data.Textures)
	}
	log.Info("catalog reloaded", "characters", len(list.Characters), "selected", entry.Name)
}

func installCatalog(data *components.CatalogData, list *catalog.CharactersList) {
	if err := list.Validate(); err != nil {
		log.Warn("catalog has problems", "source", sourceName(data.Source), "err", err)
	}
	data.List = list
	data.Generation++
}

func restoreSelection(data *components.CatalogData) {
	name := LoadSelection()
	if name == "" {
		return
	}
	if i, ok := data.List.Find(name); ok {
		data.Selected = i
	}
}

func initialisedPlayers(w donburi.World) []*donburi.Entry {
	var players []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Character) {
			players = append(players, e)
		}
	})
	return players
}

func sameFile(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func sourceName(source string) string {
	if source == "" {
		return "embedded"
	}
	return source
}

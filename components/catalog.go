package components

import (
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/config/catalog"
	"github.com/yohamta/donburi"
)

// CatalogLoad is the outcome of a background catalog read.
type CatalogLoad struct {
	List *catalog.CharactersList
	Err  error
}

// CatalogData is the world's character catalog resource. List is nil until
// the catalog has loaded.
type CatalogData struct {
	List     *catalog.CharactersList
	Selected int
	Source   string
	Watcher  *assets.Watcher
	Textures *assets.TextureLoader

	// Pending delivers the initial load; nil once consumed.
	Pending <-chan CatalogLoad

	// Generation increments every time List is replaced.
	Generation int
}

// Entry returns the selected catalog entry, if any.
func (c *CatalogData) Entry() (*catalog.CharacterEntry, bool) {
	if c.List == nil || c.Selected < 0 || c.Selected >= len(c.List.Characters) {
		return nil, false
	}
	return &c.List.Characters[c.Selected], true
}

var Catalog = donburi.NewComponentType[CatalogData]()

package components

import (
	"github.com/automoto/overworld/config/catalog"
	"github.com/yohamta/donburi"
)

// CharacterData is the catalog entry a player currently animates with.
type CharacterData struct {
	Index int
	Entry catalog.CharacterEntry
}

var Character = donburi.NewComponentType[CharacterData]()

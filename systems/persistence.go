package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSelection is the character choice stored between runs.
type SavedSelection struct {
	Character string `json:"character"`
}

const selectionItem = "selection"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSelection returns the saved character name, or "" when nothing is
// stored or persistence is unavailable.
func LoadSelection() string {
	if !gdataInitialized || gdataManager == nil {
		return ""
	}

	data, err := gdataManager.LoadItem(selectionItem)
	if err != nil {
		log.Warn("could not load selection", "err", err)
		return ""
	}
	if len(data) == 0 {
		return ""
	}

	var saved SavedSelection
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("could not parse saved selection", "err", err)
		return ""
	}
	return saved.Character
}

// SaveSelection stores the character name.
func SaveSelection(name string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedSelection{Character: name})
	if err != nil {
		log.Warn("could not serialize selection", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(selectionItem, data); err != nil {
		log.Warn("could not save selection", "err", err)
		return err
	}
	return nil
}

package assets

import (
	"fmt"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X, Y float64
	Name string
}

// Level is the arena the characters walk around in.
type Level struct {
	Name         string
	Width        int
	Height       int
	Solids       []Rect
	PlayerSpawns []PlayerSpawn
}

// LoadLevel parses a TMX map from the embedded levels directory.
func LoadLevel(path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return Level{}, fmt.Errorf("assets: load level %s: %w", path, err)
	}

	level := Level{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y, Name: o.Name})
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("assets: level %s has no player spawn", path)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for content that ships with the binary.
func MustLoadLevel(path string) Level {
	level, err := LoadLevel(path)
	if err != nil {
		panic(err)
	}
	return level
}

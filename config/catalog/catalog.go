package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// AnimationKind names an animation category in the character catalog.
type AnimationKind string

const (
	AnimationWalk AnimationKind = "walk"
	AnimationJump AnimationKind = "jump"
)

func (k AnimationKind) String() string {
	return string(k)
}

// AnimationDefinition describes where one animation kind lives in a
// character atlas. Directional definitions occupy four consecutive rows
// starting at StartRow, ordered Up, Left, Down, Right.
type AnimationDefinition struct {
	StartRow    int
	FrameCount  int
	FrameTime   time.Duration
	Directional bool
}

type animationDefinitionYAML struct {
	StartRow    int     `yaml:"start_row"`
	FrameCount  int     `yaml:"frame_count"`
	FrameTime   float64 `yaml:"frame_time"` // seconds
	Directional bool    `yaml:"directional"`
}

func (d *AnimationDefinition) UnmarshalYAML(node *yaml.Node) error {
	var raw animationDefinitionYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = AnimationDefinition{
		StartRow:    raw.StartRow,
		FrameCount:  raw.FrameCount,
		FrameTime:   time.Duration(math.Round(raw.FrameTime * float64(time.Second))),
		Directional: raw.Directional,
	}
	return nil
}

func (d AnimationDefinition) MarshalYAML() (interface{}, error) {
	return animationDefinitionYAML{
		StartRow:    d.StartRow,
		FrameCount:  d.FrameCount,
		FrameTime:   d.FrameTime.Seconds(),
		Directional: d.Directional,
	}, nil
}

// lastRow is the highest atlas row the definition touches.
func (d AnimationDefinition) lastRow() int {
	if d.Directional {
		return d.StartRow + 3
	}
	return d.StartRow
}

// CharacterEntry is one character of the catalog.
type CharacterEntry struct {
	Name         string                                `yaml:"name"`
	TexturePath  string                                `yaml:"texture_path"`
	TileSize     int                                   `yaml:"tile_size"`
	AtlasColumns int                                   `yaml:"atlas_columns"`
	Animations   map[AnimationKind]AnimationDefinition `yaml:"animations"`
}

// MaxAnimationRow returns the highest atlas row used by any animation.
func (c CharacterEntry) MaxAnimationRow() int {
	highest := 0
	for _, def := range c.Animations {
		if row := def.lastRow(); row > highest {
			highest = row
		}
	}
	return highest
}

// AtlasRows is the number of grid rows needed to hold every animation.
func (c CharacterEntry) AtlasRows() int {
	return c.MaxAnimationRow() + 1
}

// Clone returns a copy that shares no map with the receiver.
func (c CharacterEntry) Clone() CharacterEntry {
	out := c
	out.Animations = make(map[AnimationKind]AnimationDefinition, len(c.Animations))
	for k, v := range c.Animations {
		out.Animations[k] = v
	}
	return out
}

// Kinds returns the animation kinds in a stable order.
func (c CharacterEntry) Kinds() []AnimationKind {
	kinds := make([]AnimationKind, 0, len(c.Animations))
	for k := range c.Animations {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// CharactersList is the whole character catalog.
type CharactersList struct {
	Characters []CharacterEntry `yaml:"characters"`
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*CharactersList, error) {
	var list CharactersList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("catalog: decode characters: %w", err)
	}
	return &list, nil
}

// Find returns the index of the character with the given name.
func (l *CharactersList) Find(name string) (int, bool) {
	if l == nil {
		return 0, false
	}
	for i, c := range l.Characters {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Validate reports every content problem found in the catalog. A nil error
// means every definition can be addressed.
func (l *CharactersList) Validate() error {
	if l == nil {
		return errors.New("catalog: nil character list")
	}
	var errs []error
	if len(l.Characters) == 0 {
		errs = append(errs, errors.New("catalog: catalog has no characters"))
	}
	for i, c := range l.Characters {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if c.TileSize <= 0 {
			errs = append(errs, fmt.Errorf("catalog: character %s: tile_size must be positive, got %d", name, c.TileSize))
		}
		if c.AtlasColumns <= 0 {
			errs = append(errs, fmt.Errorf("catalog: character %s: atlas_columns must be positive, got %d", name, c.AtlasColumns))
		}
		for _, kind := range c.Kinds() {
			def := c.Animations[kind]
			if def.FrameCount < 1 {
				errs = append(errs, fmt.Errorf("catalog: character %s: animation %s: frame_count must be at least 1, got %d", name, kind, def.FrameCount))
			}
			if def.FrameTime <= 0 {
				errs = append(errs, fmt.Errorf("catalog: character %s: animation %s: frame_time must be positive", name, kind))
			}
			if def.StartRow < 0 {
				errs = append(errs, fmt.Errorf("catalog: character %s: animation %s: start_row must not be negative", name, kind))
			}
			if c.AtlasColumns > 0 && def.FrameCount > c.AtlasColumns {
				errs = append(errs, fmt.Errorf("catalog: character %s: animation %s: %d frames overflow %d atlas columns", name, kind, def.FrameCount, c.AtlasColumns))
			}
		}
	}
	return errors.Join(errs...)
}

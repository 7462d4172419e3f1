package catalog

import (
	"strings"
	"testing"
	"time"
)

const sample = `
characters:
  - name: knight
    texture_path: characters/knight.png
    tile_size: 64
    atlas_columns: 6
    animations:
      walk:
        start_row: 0
        frame_count: 4
        frame_time: 0.1
        directional: true
      jump:
        start_row: 4
        frame_count: 5
        frame_time: 0.08
        directional: true
      sit:
        start_row: 8
        frame_count: 2
        frame_time: 0.25
`

func TestParse(t *testing.T) {
	list, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(list.Characters) != 1 {
		t.Fatalf("got %d characters", len(list.Characters))
	}
	knight := list.Characters[0]
	if knight.Name != "knight" || knight.AtlasColumns != 6 || knight.TileSize != 64 {
		t.Fatalf("knight = %+v", knight)
	}
	walk, ok := knight.Animations[AnimationWalk]
	if !ok {
		t.Fatal("walk missing")
	}
	want := AnimationDefinition{StartRow: 0, FrameCount: 4, FrameTime: 100 * time.Millisecond, Directional: true}
	if walk != want {
		t.Fatalf("walk = %+v, want %+v", walk, want)
	}
	if knight.Animations["sit"].Directional {
		t.Fatal("sit must default to non-directional")
	}
	if err := list.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte("characters: [")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestMaxAnimationRow(t *testing.T) {
	cases := []struct {
		name string
		defs map[AnimationKind]AnimationDefinition
		want int
	}{
		{"empty", nil, 0},
		{"single_fixed", map[AnimationKind]AnimationDefinition{"sit": {StartRow: 5, FrameCount: 1}}, 5},
		{"directional", map[AnimationKind]AnimationDefinition{AnimationWalk: {StartRow: 4, FrameCount: 1, Directional: true}}, 7},
		{"mixed", map[AnimationKind]AnimationDefinition{
			AnimationWalk: {StartRow: 0, FrameCount: 4, Directional: true},
			"sit":         {StartRow: 9, FrameCount: 2},
			AnimationJump: {StartRow: 4, FrameCount: 5, Directional: true},
		}, 9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entry := CharacterEntry{Animations: c.defs}
			if got := entry.MaxAnimationRow(); got != c.want {
				t.Fatalf("MaxAnimationRow() = %d, want %d", got, c.want)
			}
			if entry.AtlasRows() != c.want+1 {
				t.Fatalf("AtlasRows() = %d", entry.AtlasRows())
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	list := &CharactersList{Characters: []CharacterEntry{{
		Name:         "broken",
		TileSize:     0,
		AtlasColumns: 3,
		Animations: map[AnimationKind]AnimationDefinition{
			AnimationWalk: {StartRow: 0, FrameCount: 0, FrameTime: time.Millisecond},
			AnimationJump: {StartRow: 1, FrameCount: 4, FrameTime: 0},
		},
	}}}

	err := list.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"tile_size", "frame_count must be at least 1", "frame_time must be positive", "overflow"} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in %q", want, msg)
		}
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := (&CharactersList{}).Validate(); err == nil {
		t.Fatal("empty catalog must not validate")
	}
}

func TestCloneIsDeep(t *testing.T) {
	list, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	orig := list.Characters[0]
	clone := orig.Clone()
	clone.Animations[AnimationWalk] = AnimationDefinition{StartRow: 42, FrameCount: 1}
	if orig.Animations[AnimationWalk].StartRow != 0 {
		t.Fatal("clone shares its animation map")
	}
}

func TestFind(t *testing.T) {
	list, _ := Parse([]byte(sample))
	if i, ok := list.Find("knight"); !ok || i != 0 {
		t.Fatalf("Find(knight) = %d, %v", i, ok)
	}
	if _, ok := list.Find("mage"); ok {
		t.Fatal("found a missing character")
	}
}

package systems

import (
	"testing"
	"time"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/config/catalog"
	"github.com/automoto/overworld/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testCatalogYAML = `
characters:
  - name: scout
    texture_path: scout.png
    tile_size: 32
    atlas_columns: 6
    animations:
      walk:
        start_row: 0
        frame_count: 4
        frame_time: 0.1
        directional: true
      jump:
        start_row: 4
        frame_count: 3
        frame_time: 0.1
        directional: false
  - name: giant
    texture_path: giant.png
    tile_size: 48
    atlas_columns: 8
    animations:
      walk:
        start_row: 1
        frame_count: 8
        frame_time: 0.2
        directional: true
`

type testWorld struct {
	ecs     *ecs.ECS
	session *donburi.Entry
	player  *donburi.Entry
	now     time.Time
}

func parseTestCatalog(t *testing.T) *catalog.CharactersList {
	t.Helper()
	list, err := catalog.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return list
}

// newTestWorld builds a 320x320 arena with a wall at x=200 and one player
// at (100, 100). The catalog is not installed.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	tw := &testWorld{
		ecs: ecs.NewECS(donburi.NewWorld()),
		now: time.Unix(1000, 0),
	}
	level := assets.Level{
		Name:         "test",
		Width:        320,
		Height:       320,
		Solids:       []assets.Rect{{X: 200, Y: 0, Width: 16, Height: 320}},
		PlayerSpawns: []assets.PlayerSpawn{{X: 100, Y: 100}},
	}
	factory.CreateLevel(tw.ecs, level, 16, 16)
	tw.session = factory.CreateSession(tw.ecs, "", nil, func() time.Time { return tw.now })
	tw.player = factory.CreatePlayer(tw.ecs, 100, 100)
	factory.CreateCamera(tw.ecs, 100, 100)
	factory.CreateFog(tw.ecs, 100, 100)
	tw.setDelta(100 * time.Millisecond)
	return tw
}

func (tw *testWorld) catalog() *components.CatalogData {
	return components.Catalog.Get(tw.session)
}

func (tw *testWorld) input() *components.InputData {
	return components.Input.Get(tw.session)
}

func (tw *testWorld) setDelta(d time.Duration) {
	components.Clock.Get(tw.session).Delta = d
}

// install puts the test catalog in place and initialises the player.
func (tw *testWorld) install(t *testing.T) {
	t.Helper()
	tw.catalog().List = parseTestCatalog(t)
	InitializePlayerCharacters(tw.ecs)
	if !tw.player.HasComponent(components.AnimationController) {
		t.Fatal("player was not initialised")
	}
}

// press sets the held actions for the next tick.
func (tw *testWorld) press(actions ...cfg.ActionID) {
	in := tw.input()
	in.Previous = in.Current
	for i := range in.Current {
		in.Current[i] = false
	}
	for _, a := range actions {
		in.Current[a] = true
	}
}

// tick runs the gameplay systems in scene order, input aside.
func (tw *testWorld) tick() {
	InitializePlayerCharacters(tw.ecs)
	SwitchCharacter(tw.ecs)
	UpdatePlayer(tw.ecs)
	UpdateJump(tw.ecs)
	UpdateAnimation(tw.ecs)
	UpdateAnimationFlags(tw.ecs)
	UpdateCamera(tw.ecs)
}

func (tw *testWorld) frame() int {
	return components.Sprite.Get(tw.player).Atlas.Index
}

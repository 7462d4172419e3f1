package systems

import (
	"testing"
	"time"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/config/catalog"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

func TestInitializeWaitsForCatalog(t *testing.T) {
	tw := newTestWorld(t)

	InitializePlayerCharacters(tw.ecs)
	if tw.player.HasComponent(components.AnimationController) {
		t.Fatal("player initialised before the catalog loaded")
	}

	tw.catalog().List = parseTestCatalog(t)
	tw.catalog().Selected = 7
	InitializePlayerCharacters(tw.ecs)
	if tw.player.HasComponent(components.AnimationController) {
		t.Fatal("player initialised with an out of range selection")
	}

	tw.catalog().Selected = 0
	InitializePlayerCharacters(tw.ecs)
	if !tw.player.HasComponent(components.AnimationController) {
		t.Fatal("player not initialised once the catalog is ready")
	}

	ctrl := components.AnimationController.Get(tw.player)
	if *ctrl != animations.NewController() {
		t.Fatalf("controller = %+v, want default", *ctrl)
	}
	if d := components.AnimationTimer.Get(tw.player).Duration(); d != animations.DefaultFrameTime {
		t.Fatalf("timer duration = %v, want %v", d, animations.DefaultFrameTime)
	}
	atlas := components.Sprite.Get(tw.player).Atlas
	// scout: jump on row 4 is the highest row.
	if atlas.Columns != 6 || atlas.Rows != 5 || atlas.Index != 0 {
		t.Fatalf("atlas = %+v, want 6x5 at index 0", *atlas)
	}
	if name := components.Character.Get(tw.player).Entry.Name; name != "scout" {
		t.Fatalf("character = %q, want scout", name)
	}
}

func TestInitializeRunsOnce(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)
	components.Sprite.Get(tw.player).Atlas.Index = 3

	InitializePlayerCharacters(tw.ecs)
	if got := tw.frame(); got != 3 {
		t.Fatalf("second initialise reset the frame to %d", got)
	}
}

func TestWalkingDownAnimates(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	var got []int
	for i := 0; i < 5; i++ {
		tw.press(cfg.ActionMoveDown)
		tw.tick()
		got = append(got, tw.frame())
	}
	want := []int{12, 13, 14, 15, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}

	state := components.AnimationState.Get(tw.player)
	if !state.IsMoving || !state.WasMoving {
		t.Fatalf("state = %+v, want moving committed", *state)
	}
}

func TestStopWalkingReturnsToStart(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	for i := 0; i < 3; i++ {
		tw.press(cfg.ActionMoveLeft)
		tw.tick()
	}
	if got := tw.frame(); got != 8 {
		t.Fatalf("frame after walking left = %d, want 8", got)
	}

	tw.press()
	tw.tick()
	if got := tw.frame(); got != 6 {
		t.Fatalf("frame after stopping = %d, want 6", got)
	}
	if components.AnimationState.Get(tw.player).WasMoving {
		t.Fatal("stop was not committed")
	}
}

func TestFlagsCommitAfterAnimate(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	tw.press(cfg.ActionMoveRight)
	UpdatePlayer(tw.ecs)
	state := components.AnimationState.Get(tw.player)
	if !state.IsMoving || state.WasMoving {
		t.Fatalf("before animate: %+v", *state)
	}

	UpdateAnimation(tw.ecs)
	if state.WasMoving {
		t.Fatal("UpdateAnimation must not commit flags")
	}
	if got := tw.frame(); got != 18 {
		t.Fatalf("transition frame = %d, want 18", got)
	}

	UpdateAnimationFlags(tw.ecs)
	if !state.WasMoving {
		t.Fatal("UpdateAnimationFlags did not commit")
	}
}

func TestUpdateAnimationSkipsPendingAtlas(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)
	components.Sprite.Get(tw.player).Atlas = nil
	components.AnimationTimer.Get(tw.player).SetDuration(time.Second)

	tw.press(cfg.ActionMoveDown)
	tw.tick()

	state := components.AnimationState.Get(tw.player)
	if !state.WasMoving {
		t.Fatal("flags must commit even when the atlas is pending")
	}
	if d := components.AnimationTimer.Get(tw.player).Duration(); d != time.Second {
		t.Fatalf("timer duration = %v; the transition ran without an atlas", d)
	}
}

func TestUpdateAnimationParallelMatchesSerial(t *testing.T) {
	run := func(workers int) []int {
		prev := cfg.Animation.Workers
		cfg.Animation.Workers = workers
		defer func() { cfg.Animation.Workers = prev }()

		tw := newTestWorld(t)
		list := parseTestCatalog(t)
		tw.catalog().List = list
		var players []*donburi.Entry
		players = append(players, tw.player)
		for i := 0; i < 7; i++ {
			players = append(players, factory.CreatePlayer(tw.ecs, 40+float64(i)*20, 200))
		}
		InitializePlayerCharacters(tw.ecs)

		for step := 0; step < 12; step++ {
			tw.press(cfg.ActionMoveUp)
			if step%5 == 4 {
				tw.press()
			}
			tw.tick()
		}
		var frames []int
		for _, p := range players {
			frames = append(frames, components.Sprite.Get(p).Atlas.Index)
		}
		return frames
	}

	serial := run(1)
	parallel := run(4)
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("parallel frames %v differ from serial %v", parallel, serial)
		}
	}
}

func TestSwitchCharacterResetsAtlas(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	for i := 0; i < 3; i++ {
		tw.press(cfg.ActionMoveDown)
		tw.tick()
	}

	tw.press(cfg.ActionMoveDown, cfg.ActionCharacter2)
	SwitchCharacter(tw.ecs)

	character := components.Character.Get(tw.player)
	if character.Index != 1 || character.Entry.Name != "giant" {
		t.Fatalf("character = %d %q, want 1 giant", character.Index, character.Entry.Name)
	}
	atlas := components.Sprite.Get(tw.player).Atlas
	if atlas.Columns != 8 || atlas.Rows != 5 || atlas.Index != 0 || atlas.TileSize != 48 {
		t.Fatalf("atlas = %+v, want 8x5 tile 48 at index 0", *atlas)
	}
	if tw.catalog().Selected != 1 {
		t.Fatalf("selected = %d, want 1", tw.catalog().Selected)
	}

	// giant facing down is row 1+2: [24..31]. Stopping lands on its start
	// and installs the giant's frame time.
	tw.press()
	UpdatePlayer(tw.ecs)
	UpdateAnimation(tw.ecs)
	UpdateAnimationFlags(tw.ecs)
	if got := tw.frame(); got != 24 {
		t.Fatalf("frame after switch = %d, want 24", got)
	}
	if d := components.AnimationTimer.Get(tw.player).Duration(); d != 200*time.Millisecond {
		t.Fatalf("timer duration = %v, want 200ms", d)
	}
}

func TestSwitchCharacterIgnoresEmptySlot(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	tw.press(cfg.ActionCharacter9)
	SwitchCharacter(tw.ecs)
	if tw.catalog().Selected != 0 {
		t.Fatalf("selected = %d, want 0", tw.catalog().Selected)
	}
	if name := components.Character.Get(tw.player).Entry.Name; name != "scout" {
		t.Fatalf("character = %q, want scout", name)
	}
}

func TestSwitchCharacterNeedsFreshPress(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	tw.press(cfg.ActionCharacter2)
	tw.press(cfg.ActionCharacter2)
	SwitchCharacter(tw.ecs)
	if tw.catalog().Selected != 0 {
		t.Fatal("held key switched character")
	}
}

func TestJumpUsesJumpKind(t *testing.T) {
	tw := newTestWorld(t)
	tw.install(t)

	tw.press(cfg.ActionJump)
	tw.tick()
	ctrl := components.AnimationController.Get(tw.player)
	state := components.AnimationState.Get(tw.player)
	if ctrl.Current != catalog.AnimationJump || !state.IsJumping {
		t.Fatalf("after jump press: kind %v jumping %t", ctrl.Current, state.IsJumping)
	}
	if got := tw.frame(); got != 24 {
		t.Fatalf("jump frame = %d, want 24", got)
	}
	if components.Player.Get(tw.player).JumpOffset <= 0 {
		t.Fatal("jump did not lift the player")
	}

	steps := int(cfg.Player.JumpDuration/(100*time.Millisecond)) + 2
	for i := 0; i < steps; i++ {
		tw.press(cfg.ActionJump)
		tw.tick()
	}
	if ctrl.Current != catalog.AnimationWalk || state.IsJumping {
		t.Fatalf("after landing: kind %v jumping %t", ctrl.Current, state.IsJumping)
	}
	if components.Player.Get(tw.player).JumpOffset != 0 {
		t.Fatal("offset not cleared on landing")
	}
	if got := tw.frame(); got != 12 {
		t.Fatalf("frame after landing = %d, want 12", got)
	}
}

func TestInitialisedPlayers(t *testing.T) {
	tw := newTestWorld(t)
	if n := len(initialisedPlayers(tw.ecs.World)); n != 0 {
		t.Fatalf("got %d initialised players before install", n)
	}
	tw.install(t)
	count := 0
	tags.Player.Each(tw.ecs.World, func(*donburi.Entry) { count++ })
	if n := len(initialisedPlayers(tw.ecs.World)); n != count {
		t.Fatalf("got %d initialised players, want %d", n, count)
	}
}

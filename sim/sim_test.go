package sim

import (
	"strings"
	"testing"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/config/catalog"
)

const testCatalog = `
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
`

func testList(t *testing.T) *catalog.CharactersList {
	t.Helper()
	list, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return list
}

func indices(frames []Frame) []int {
	out := make([]int, len(frames))
	for i, f := range frames {
		out[i] = f.Index
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRunWalkDownTimeline(t *testing.T) {
	script := &Script{
		Character: "scout",
		TPS:       10,
		Steps: []Step{
			{Ticks: 5, Moving: true, Direction: []float64{0, -1}},
		},
	}
	frames, err := Run(script, testList(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []int{12, 13, 14, 15, 12}
	if got := indices(frames); !equalInts(got, want) {
		t.Fatalf("timeline = %v, want %v", got, want)
	}
	for _, f := range frames {
		if f.Facing != animations.FacingDown {
			t.Fatalf("tick %d facing = %v, want down", f.Tick, f.Facing)
		}
		if !f.Resolved || !f.Clip.Contains(f.Index) {
			t.Fatalf("tick %d index %d outside clip %v", f.Tick, f.Index, f.Clip)
		}
	}
}

func TestRunStopSnapsToStart(t *testing.T) {
	script := &Script{
		Character: "scout",
		TPS:       10,
		Steps: []Step{
			{Ticks: 3, Moving: true, Direction: []float64{1, 0}},
			{Ticks: 2},
		},
	}
	frames, err := Run(script, testList(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Right is row 3: [18..21]. Idle keeps the last facing.
	want := []int{18, 19, 20, 18, 18}
	if got := indices(frames); !equalInts(got, want) {
		t.Fatalf("timeline = %v, want %v", got, want)
	}
	if frames[4].Facing != animations.FacingRight {
		t.Fatalf("idle facing = %v, want right", frames[4].Facing)
	}
}

func TestRunJumpUsesFixedRow(t *testing.T) {
	script := &Script{
		Character: "scout",
		TPS:       10,
		Steps: []Step{
			{Ticks: 4, Jumping: true, Moving: true, Direction: []float64{-1, 0}},
		},
	}
	frames, err := Run(script, testList(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []int{24, 25, 26, 24}
	if got := indices(frames); !equalInts(got, want) {
		t.Fatalf("timeline = %v, want %v", got, want)
	}
	if frames[0].Kind != catalog.AnimationJump {
		t.Fatalf("kind = %v, want jump", frames[0].Kind)
	}
}

func TestRunFacingChangeWhileIdleClamps(t *testing.T) {
	script := &Script{
		Character: "scout",
		TPS:       10,
		Steps: []Step{
			{Ticks: 1},
			{Ticks: 1, Facing: "up"},
		},
	}
	frames, err := Run(script, testList(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Idle facing down sits on 12; turning up clamps into [0..3].
	want := []int{12, 0}
	if got := indices(frames); !equalInts(got, want) {
		t.Fatalf("timeline = %v, want %v", got, want)
	}
}

func TestRunUnknownCharacter(t *testing.T) {
	script := &Script{Character: "nobody", Steps: []Step{{Ticks: 1}}}
	if _, err := Run(script, testList(t)); err == nil {
		t.Fatal("expected error for unknown character")
	}
}

func TestRunUnknownKindIsSkipped(t *testing.T) {
	script := &Script{
		Character: "scout",
		TPS:       10,
		Steps:     []Step{{Ticks: 2, Moving: true, Kind: "swim"}},
	}
	frames, err := Run(script, testList(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, f := range frames {
		if f.Resolved {
			t.Fatalf("tick %d resolved an unknown kind", f.Tick)
		}
		if f.Index != 0 {
			t.Fatalf("tick %d index = %d, want untouched 0", f.Tick, f.Index)
		}
	}
}

func TestParseScript(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "valid",
			src: `
character: scout
tps: 30
steps:
  - ticks: 3
    moving: true
    direction: [0, 1]
`,
		},
		{name: "no character", src: "steps: [{ticks: 1}]", wantErr: "no character"},
		{name: "zero ticks", src: "character: scout\nsteps: [{ticks: 0}]", wantErr: "ticks"},
		{name: "bad direction", src: "character: scout\nsteps: [{ticks: 1, direction: [1]}]", wantErr: "direction"},
		{name: "bad facing", src: "character: scout\nsteps: [{ticks: 1, facing: north}]", wantErr: "unknown facing"},
		{name: "malformed", src: "character: [", wantErr: "decode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			script, err := ParseScript([]byte(tc.src))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ParseScript: %v", err)
				}
				if script.TPS != 30 || len(script.Steps) != 1 || script.Steps[0].Direction[1] != 1 {
					t.Fatalf("unexpected script %+v", script)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains player movement and presentation values
type PlayerConfig struct {
	// Movement, pixels per second
	Speed float64

	// Jump hop
	JumpDuration time.Duration
	JumpHeight   float64

	// Presentation
	Scale float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CameraConfig contains camera follow values
type CameraConfig struct {
	FollowSmoothing float64 // Fraction of the distance covered per tick
	PixelSnap       bool
}

// FogConfig contains fog-of-war overlay values
type FogConfig struct {
	VisionRadius float64
	Enabled      bool
}

// AnimationConfig contains animation system values
type AnimationConfig struct {
	// Goroutines used to animate entities; 1 runs serially.
	Workers int
}

// DebugConfig contains debug overlay and logging options
type DebugConfig struct {
	Overlay  bool
	LogEvery uint64 // Ticks between animation debug log lines
	FontPath string // Optional TTF for the overlay; basicfont when empty
	FontSize float64
}

// AssetsConfig points at content on disk
type AssetsConfig struct {
	CatalogPath string // Empty uses the embedded catalog
	Watch       bool   // Reload the catalog when the file changes
	AppName     string // gdata application name
}

// LevelConfig contains arena values
type LevelConfig struct {
	Path       string
	CellWidth  int
	CellHeight int
	FloorColor color.RGBA
	WallColor  color.RGBA
}

var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Fog FogConfig
var Animation AnimationConfig
var Debug DebugConfig
var Assets AssetsConfig
var Level LevelConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:           150.0,
		JumpDuration:    500 * time.Millisecond,
		JumpHeight:      24.0,
		Scale:           0.8,
		CollisionWidth:  24.0,
		CollisionHeight: 24.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		PixelSnap:       true,
	}

	Fog = FogConfig{
		VisionRadius: 320.0,
		Enabled:      true,
	}

	Animation = AnimationConfig{
		Workers: 1,
	}

	Debug = DebugConfig{
		Overlay:  false,
		LogEvery: 60, // about once per second at 60 TPS
		FontSize: 10,
	}

	Assets = AssetsConfig{
		AppName: "overworld",
	}

	Level = LevelConfig{
		Path:       "levels/arena.tmx",
		CellWidth:  16,
		CellHeight: 16,
		FloorColor: color.RGBA{R: 46, G: 70, B: 42, A: 255},
		WallColor:  color.RGBA{R: 90, G: 84, B: 74, A: 255},
	}
}

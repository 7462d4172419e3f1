// overworld walks a sprite-sheet character around a small arena.
//
// Usage:
//
//	overworld [--catalog characters.yaml] [--watch] [--debug] [--workers n]
//
// Keys: arrows or WASD move, Space jumps, 1-9 switch character, F3 toggles
// the debug overlay.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagCatalog string
	flagWatch   bool
	flagDebug   bool
	flagWorkers int
	flagFont    string
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.WorldScene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "overworld",
	Short: "Walk a sprite-sheet character around an arena",
	Long: `overworld loads a character catalog and animates the selected
character as it walks and jumps around a small arena.

Examples:
  overworld
  overworld --catalog assets/characters/characters.yaml --watch
  overworld --debug --workers 4`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Character catalog YAML (default: embedded catalog)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the catalog when the file changes")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlay")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "Goroutines used to animate characters")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "TTF font for the debug overlay")
}

func runGame(cmd *cobra.Command, args []string) error {
	config.Assets.CatalogPath = flagCatalog
	config.Assets.Watch = flagWatch
	config.Animation.Workers = flagWorkers
	config.Debug.FontPath = flagFont
	if flagDebug {
		config.Debug.Overlay = true
		log.SetLevel(log.DebugLevel)
	}

	if err := systems.InitPersistence(config.Assets.AppName); err != nil {
		log.Warn("character selection will not be saved", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("overworld")
	ebiten.SetTPS(config.C.TPS)

	game := NewGame()
	defer func() {
		if err := game.scene.Close(); err != nil {
			log.Warn("closing catalog watcher", "err", err)
		}
	}()
	return ebiten.RunGame(game)
}

func main() {
	log.SetReportTimestamp(true)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

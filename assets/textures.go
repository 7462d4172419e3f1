package assets

import (
	"image/color"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureLoader decodes and caches character atlases from disk.
type TextureLoader struct {
	Root string

	mu    sync.Mutex
	cache map[string]*ebiten.Image
}

func NewTextureLoader(root string) *TextureLoader {
	return &TextureLoader{
		Root:  root,
		cache: make(map[string]*ebiten.Image),
	}
}

// Texture returns the atlas at path. When the file cannot be read a
// placeholder grid of columns x rows tiles is generated instead, so a
// character is still drawable while its art is missing.
func (l *TextureLoader) Texture(path string, columns, rows, tile int) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img
	}

	full := path
	if l.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.Root, path)
	}
	img, _, err := ebitenutil.NewImageFromFile(full)
	if err != nil {
		log.Warn("texture unavailable, using placeholder atlas", "path", full, "err", err)
		img = PlaceholderAtlas(columns, rows, tile)
	}
	l.cache[path] = img
	return img
}

// Forget drops a cached texture so the next Texture call reloads it.
func (l *TextureLoader) Forget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, path)
}

// PlaceholderAtlas draws a columns x rows grid. Each row gets its own tint
// and each column a bar whose width grows with the column, so frame steps
// stay visible.
func PlaceholderAtlas(columns, rows, tile int) *ebiten.Image {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	if tile < 4 {
		tile = 4
	}
	img := ebiten.NewImage(columns*tile, rows*tile)
	for row := 0; row < rows; row++ {
		tint := rowTint(row)
		for col := 0; col < columns; col++ {
			x := float32(col * tile)
			y := float32(row * tile)
			size := float32(tile)
			vector.FillRect(img, x+2, y+2, size-4, size-4, tint, false)
			bar := (size - 8) * float32(col+1) / float32(columns)
			vector.FillRect(img, x+4, y+size-10, bar, 4, color.White, false)
		}
	}
	return img
}

func rowTint(row int) color.RGBA {
	palette := []color.RGBA{
		{R: 200, G: 80, B: 80, A: 255},
		{R: 80, G: 170, B: 90, A: 255},
		{R: 80, G: 120, B: 210, A: 255},
		{R: 210, G: 180, B: 70, A: 255},
	}
	return palette[row%len(palette)]
}

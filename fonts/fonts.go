package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFontWithSize parses a TrueType font and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFontFile registers the TrueType font at path, or the built-in bitmap
// face when path is empty.
func LoadFontFile(name FontName, path string, size float64) error {
	if path == "" {
		fonts[name] = basicfont.Face7x13
		return nil
	}
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fonts: read %s: %w", path, err)
	}
	return LoadFontWithSize(name, ttf, size)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

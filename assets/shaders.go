package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FogShader darkens everything outside the player's vision circle
	FogShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	fogSrc, err := shaderFS.ReadFile("shaders/fog.kage")
	if err != nil {
		return err
	}
	FogShader, err = ebiten.NewShader(fogSrc)
	if err != nil {
		return err
	}
	return nil
}

package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// Burger is the sprite shared by the dummy scene.
const Burger = "images/burger.png"

// MustReadImage returns the raw bytes of an embedded image.
func MustReadImage(path string) []byte {
	data, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}
	return data
}

// DecodeSprite decodes image bytes without touching the GPU.
func DecodeSprite(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	return img, nil
}

// LoadSprite turns encoded image bytes into a drawable image.
func LoadSprite(data []byte) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load sprite: %w", err)
	}
	return img, nil
}

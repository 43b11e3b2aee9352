package components

import (
	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/motion"
	"github.com/automoto/tilerunner/render"
	"github.com/yohamta/donburi"
)

// SpriteData picks an image by facing direction.
type SpriteData struct {
	assets.Pair
}

// For returns the image drawn when facing d.
func (s *SpriteData) For(d motion.Direction) *render.PixelBuffer {
	if d == motion.Left {
		return s.Left
	}
	return s.Right
}

var Sprite = donburi.NewComponentType[SpriteData]()

// ResourcesData is the singleton holding shared read-only assets.
type ResourcesData struct {
	Sprites *assets.Sprites
	Font    *fonts.GlyphAtlas
}

var Resources = donburi.NewComponentType[ResourcesData]()

package tilemap

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// ImportTMX builds a grid from a tile layer of a Tiled map. Every non-empty
// cell of the layer becomes Ground. An empty layer name picks the first
// tile layer.
//
// Tiled stores rows top to bottom, so rows are flipped on the way in.
func ImportTMX(fsys fs.FS, tmxPath, layerName string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("%w: TMX %s is %dx%d", ErrBadDimensions, tmxPath, levelMap.Width, levelMap.Height)
	}

	for _, layer := range levelMap.Layers {
		if layerName != "" && layer.Name != layerName {
			continue
		}
		g := New(levelMap.Width, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				g.Set(x, levelMap.Height-1-y, Ground)
			}
		}
		return g, nil
	}
	return nil, fmt.Errorf("TMX %s has no tile layer %q", tmxPath, layerName)
}

package assets

import (
	"image"
	"io/fs"
	"path"

	"github.com/automoto/tilerunner/render"
)

// SpriteDir is where the sprites live relative to the data directory.
const SpriteDir = "sprites/size_16"

// Pair is a sprite drawn differently when facing left and right.
type Pair struct {
	Right, Left *render.PixelBuffer
}

// Sprites is every image the game draws.
type Sprites struct {
	Player Pair
	Enemy  Pair
	Hook   *render.PixelBuffer
	Ground *render.PixelBuffer
}

// LoadSprites loads the sprite set from dir inside fsys.
func LoadSprites(fsys fs.FS, dir string) (*Sprites, error) {
	l := NewLoader(fsys)
	load := func(name string) (*render.PixelBuffer, error) {
		return l.Load(path.Join(dir, name+".png"))
	}

	var s Sprites
	var err error
	for _, e := range []struct {
		dst  **render.PixelBuffer
		name string
	}{
		{&s.Player.Right, "test_player_right"},
		{&s.Player.Left, "test_player_left"},
		{&s.Enemy.Right, "test_enemy_right"},
		{&s.Enemy.Left, "test_enemy_left"},
		{&s.Hook, "hook"},
		{&s.Ground, "test_ground"},
	} {
		if *e.dst, err = load(e.name); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Placeholder builds flat colored sprites of tileSize pixels, used when no
// data directory is available.
func Placeholder(tileSize int) *Sprites {
	return &Sprites{
		Player: facingPair(tileSize, render.Purple),
		Enemy:  facingPair(tileSize, render.Red),
		Hook:   solid(tileSize/2, tileSize/4, render.White),
		Ground: ground(tileSize),
	}
}

func solid(w, h int, c render.Color) *render.PixelBuffer {
	b := render.NewPixelBuffer(max(w, 1), max(h, 1))
	render.Clear(b, c)
	return b
}

// facingPair draws a body with a white eye on the side it faces.
func facingPair(size int, c render.Color) Pair {
	right := solid(size, size, c)
	left := right.Clone()
	eye := max(size/8, 1)
	top := size / 4
	render.Fill(right, image.Pt(size-2*eye, top), image.Pt(size-eye, top+eye), render.White)
	render.Fill(left, image.Pt(eye, top), image.Pt(2*eye, top+eye), render.White)
	return Pair{Right: right, Left: left}
}

func ground(size int) *render.PixelBuffer {
	b := solid(size, size, render.Grey)
	render.Fill(b, image.Pt(0, 0), image.Pt(size, max(size/8, 1)), render.White)
	return b
}

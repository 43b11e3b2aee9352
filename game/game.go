// Package game is the frame-loop boundary: the host calls Startup once and
// then UpdateAndRender every frame.
package game

import (
	"fmt"

	"github.com/automoto/tilerunner/assets"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/input"
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/scenes"
	"github.com/automoto/tilerunner/tags"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/yohamta/donburi"
)

// Options configures Startup. Zero values pick defaults.
type Options struct {
	Store     tilemap.Store     // where levels load from and save to
	LevelName string            // defaults to the configured level
	Sprites   *assets.Sprites   // defaults to placeholder sprites
	Font      *fonts.GlyphAtlas // defaults to Go Mono at the configured height
}

// State owns the whole game between frames.
type State struct {
	world  donburi.World
	frame  *donburi.Entry
	scenes map[components.Mode]scenes.Scene

	draw  *render.PixelBuffer
	scale int
}

// Startup builds the world for a window of the given size.
func Startup(screenW, screenH int, opts Options) (*State, error) {
	if opts.Font == nil {
		font, err := fonts.Default(cfg.Render.FontHeight)
		if err != nil {
			return nil, fmt.Errorf("game: load font: %w", err)
		}
		opts.Font = font
	}
	if opts.Sprites == nil {
		opts.Sprites = assets.Placeholder(cfg.Render.TileSize)
	}
	if opts.LevelName == "" {
		opts.LevelName = cfg.Level.Name
	}

	world := scenes.NewWorld(scenes.WorldOptions{
		Store:     opts.Store,
		LevelName: opts.LevelName,
		Resources: components.ResourcesData{Sprites: opts.Sprites, Font: opts.Font},
	})
	s := &State{
		world: world,
		frame: components.Input.MustFirst(world),
		scenes: map[components.Mode]scenes.Scene{
			components.ModePlaying: scenes.NewPlatformerScene(world),
			components.ModeEditor:  scenes.NewEditorScene(world),
		},
		scale: cfg.Render.Scale,
	}
	s.fit(screenW, screenH)
	return s, nil
}

// UpdateAndRender advances the game by dt seconds, draws into dst and
// returns a short diagnostic line for the window title.
func (s *State) UpdateAndRender(dst *render.PixelBuffer, in *input.Snapshot, dt float64) string {
	if cfg.Pressed(in, cfg.ActionToggleScale) {
		s.toggleScale()
	}
	s.fit(dst.Width(), dst.Height())

	frame := components.Input.Get(s.frame)
	frame.Snapshot = in
	frame.Dt = dt

	mode := s.Mode()
	scene := s.scenes[mode]
	scene.Update()
	scene.Draw(s.draw)
	render.ScaleUp(s.draw, dst, s.scale)

	return s.info(mode)
}

// Mode returns the active game mode.
func (s *State) Mode() components.Mode {
	return components.State.Get(s.frame).Mode
}

// Level returns the grid being played or edited.
func (s *State) Level() *tilemap.Grid {
	return components.Level.Get(components.Level.MustFirst(s.world)).Grid
}

// Scale returns the current pixel scale.
func (s *State) Scale() int { return s.scale }

// SetScale picks the pixel scale. Values below one are ignored.
func (s *State) SetScale(scale int) {
	if scale >= 1 {
		s.scale = scale
	}
}

func (s *State) toggleScale() {
	if s.scale == cfg.Render.AltScale {
		s.scale = cfg.Render.Scale
	} else {
		s.scale = cfg.Render.AltScale
	}
}

// fit reallocates the draw buffer when the window size or the scale
// changed.
func (s *State) fit(screenW, screenH int) {
	cam := components.Camera.Get(components.Camera.MustFirst(s.world))
	cam.Scale = s.scale

	w, h := max(screenW/s.scale, 1), max(screenH/s.scale, 1)
	if s.draw != nil && s.draw.Width() == w && s.draw.Height() == h {
		return
	}
	s.draw = render.NewPixelBuffer(w, h)
	cam.SetViewport(w, h)
}

func (s *State) info(mode components.Mode) string {
	switch mode {
	case components.ModePlaying:
		if player, ok := tags.Player.First(s.world); ok {
			return components.Body.Get(player).String()
		}
		return "no player"
	case components.ModeEditor:
		msg := components.Message.Get(s.frame)
		return fmt.Sprintf("text: %.3f", msg.Timer)
	}
	panic(fmt.Sprintf("game: unhandled mode %v", mode))
}

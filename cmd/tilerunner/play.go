package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/tilerunner/assets"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/game"
	"github.com/automoto/tilerunner/platform"
	"github.com/automoto/tilerunner/tilemap"
)

var (
	flagData   string
	flagLevel  string
	flagScale  int
	flagFont   string
	flagGdata  bool
	flagEditor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window.

Controls:
  A/D        - Move
  K          - Jump (twice for a double jump)
  J          - Attack
  Esc        - Restart
  Ctrl+K     - Toggle the level editor
  F12        - Toggle pixel scale
  F11        - Toggle fullscreen

Editor:
  WASD       - Pan
  Arrows     - Resize the level
  Left click - Place ground
  Right click- Clear a tile
  Ctrl+S     - Save

Levels are read from <data>/levels and sprites from <data>/sprites/size_16.
With --gdata levels live in the per-user data directory instead.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagData, "data", "data", "Directory holding levels and sprites")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level name (default from config)")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixel scale (default from config)")
	playCmd.Flags().StringVar(&flagFont, "font", "", "TrueType font for editor text")
	playCmd.Flags().BoolVar(&flagGdata, "gdata", false, "Keep levels in the per-user data directory")
	playCmd.Flags().BoolVar(&flagEditor, "editor", cfg.Editor.StartInEditor, "Start in the level editor")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagScale > 0 {
		cfg.Render.Scale = flagScale
	}
	if cmd.Flags().Changed("editor") {
		cfg.Editor.StartInEditor = flagEditor
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	sprites, err := assets.LoadSprites(os.DirFS(flagData), assets.SpriteDir)
	if err != nil {
		log.Warn("Could not load sprites, using placeholders", "dir", flagData, "err", err)
		sprites = nil
	}

	opts := game.Options{
		Store:     store,
		LevelName: flagLevel,
		Sprites:   sprites,
	}
	if flagFont != "" {
		font, err := loadFont(flagFont)
		if err != nil {
			return err
		}
		opts.Font = font
	}

	state, err := game.Startup(cfg.C.Width, cfg.C.Height, opts)
	if err != nil {
		return err
	}
	return platform.Run(state)
}

func openStore() (tilemap.Store, error) {
	if flagGdata {
		store, err := tilemap.OpenGdataStore(cfg.C.AppName)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	dir := filepath.Join(flagData, "levels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create level directory: %w", err)
	}
	return tilemap.DirStore{Dir: dir}, nil
}

func loadFont(path string) (*fonts.GlyphAtlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return fonts.NewGlyphAtlas(data, cfg.Render.FontHeight)
}

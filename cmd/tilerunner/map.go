package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/tilemap"
)

var (
	flagWidth  int
	flagHeight int
	flagLayer  string
	flagForce  bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Create, inspect and convert level files",
}

var mapNewCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty level file",
	Long: `Create an empty level file.

Examples:
  tilerunner map new data/levels/map_01
  tilerunner map new data/levels/wide --width 40 --height 12`,
	Args: cobra.ExactArgs(1),
	RunE: runMapNew,
}

var mapShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a level in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runMapShow,
}

var mapResizeCmd = &cobra.Command{
	Use:   "resize <file> <width> <height>",
	Short: "Change the size of a level file",
	Long: `Change the size of a level file in place. Tiles keep their
coordinates; rows and columns outside the new size are dropped.`,
	Args: cobra.ExactArgs(3),
	RunE: runMapResize,
}

var mapImportCmd = &cobra.Command{
	Use:   "import <tmx> <file>",
	Short: "Convert a Tiled map into a level file",
	Long: `Convert a tile layer of a Tiled (.tmx) map into a level file.
Every non-empty cell becomes ground.

Examples:
  tilerunner map import maps/level1.tmx data/levels/map_01
  tilerunner map import maps/level1.tmx data/levels/map_01 --layer walls`,
	Args: cobra.ExactArgs(2),
	RunE: runMapImport,
}

func init() {
	mapNewCmd.Flags().IntVar(&flagWidth, "width", cfg.Level.DefaultWidth, "Width in tiles")
	mapNewCmd.Flags().IntVar(&flagHeight, "height", cfg.Level.DefaultHeight, "Height in tiles")
	mapNewCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	mapImportCmd.Flags().StringVar(&flagLayer, "layer", "", "Tile layer name (default: first tile layer)")
	mapImportCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	mapCmd.AddCommand(mapNewCmd)
	mapCmd.AddCommand(mapShowCmd)
	mapCmd.AddCommand(mapResizeCmd)
	mapCmd.AddCommand(mapImportCmd)
}

func runMapNew(cmd *cobra.Command, args []string) error {
	if flagWidth <= 0 || flagHeight <= 0 {
		return fmt.Errorf("level size must be positive, got %dx%d", flagWidth, flagHeight)
	}
	return writeLevel(args[0], tilemap.New(flagWidth, flagHeight))
}

func runMapShow(cmd *cobra.Command, args []string) error {
	g, err := tilemap.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), preview(filepath.Base(args[0]), g))
	return nil
}

func runMapResize(cmd *cobra.Command, args []string) error {
	w, err := parseSize("width", args[1])
	if err != nil {
		return err
	}
	h, err := parseSize("height", args[2])
	if err != nil {
		return err
	}

	g, err := tilemap.Load(args[0])
	if err != nil {
		return err
	}
	g.Resize(w, h)
	if err := tilemap.Save(args[0], g); err != nil {
		return err
	}
	log.Info("Level resized", "file", args[0], "width", w, "height", h)
	return nil
}

func runMapImport(cmd *cobra.Command, args []string) error {
	tmx := args[0]
	g, err := tilemap.ImportTMX(os.DirFS(filepath.Dir(tmx)), filepath.Base(tmx), flagLayer)
	if err != nil {
		return err
	}
	return writeLevel(args[1], g)
}

// writeLevel saves g to a new file, refusing to replace one unless --force
// is set.
func writeLevel(path string, g *tilemap.Grid) error {
	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := tilemap.Save(path, g); err != nil {
		return err
	}
	log.Info("Level written", "file", path, "width", g.Width(), "height", g.Height())
	return nil
}

func parseSize(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

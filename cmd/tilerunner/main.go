// tilerunner is a tile platformer with a built-in level editor.
//
// Usage:
//
//	tilerunner play                 - Open the game window
//	tilerunner map new <file>       - Create an empty level file
//	tilerunner map show <file>      - Print a level in the terminal
//	tilerunner map resize <file>    - Change the size of a level file
//	tilerunner map import <tmx>     - Convert a Tiled map into a level file
//
// Global flags:
//
//	--config <path>  - YAML file applied on top of the defaults
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/tilerunner/config"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerunner",
	Short: "Tilerunner - a tile platformer with a level editor",
	Long: `Tilerunner is a small side-scrolling platformer drawn by a software
renderer. Ctrl+K switches between playing and editing the level.

Examples:
  tilerunner play
  tilerunner play --data ./data --level map_01
  tilerunner map show data/levels/map_00`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
		path, err := cfg.Load(flagConfig)
		if err != nil {
			return err
		}
		if path != "" {
			log.Debug("Loaded config", "path", path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapCmd)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the layout of a YAML config file. Sections and fields left out
// of the file keep their current values.
type File struct {
	Game      *Config          `yaml:"game"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Combat    *CombatConfig    `yaml:"combat"`
	Character *CharacterConfig `yaml:"character"`
	Player    *PlayerConfig    `yaml:"player"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Render    *RenderConfig    `yaml:"render"`
	Camera    *CameraConfig    `yaml:"camera"`
	Level     *LevelConfig     `yaml:"level"`
	Editor    *EditorConfig    `yaml:"editor"`
}

func globals() File {
	return File{
		Game:      C,
		Physics:   &Physics,
		Combat:    &Combat,
		Character: &Character,
		Player:    &Player,
		Enemy:     &Enemy,
		Render:    &Render,
		Camera:    &Camera,
		Level:     &Level,
		Editor:    &Editor,
	}
}

// Apply decodes YAML on top of the global configuration.
func Apply(data []byte) error {
	f := globals()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	return validate()
}

// Load applies a config file to the globals and returns the path it used.
// Search order: customPath -> ~/.tilerunner/config.yaml -> ./configs/tilerunner.yaml.
// With no custom path and no file found the defaults stay in place and the
// returned path is empty.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "tilerunner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// Dump renders the current globals as YAML.
func Dump() ([]byte, error) {
	return yaml.Marshal(globals())
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilerunner", filename)
}

func validate() error {
	switch {
	case Render.TileSize <= 0:
		return fmt.Errorf("render.tile_size must be positive, got %d", Render.TileSize)
	case Render.Scale <= 0 || Render.AltScale <= 0:
		return fmt.Errorf("render scales must be positive, got %d and %d", Render.Scale, Render.AltScale)
	case Render.FontHeight <= 0:
		return fmt.Errorf("render.font_height must be positive, got %d", Render.FontHeight)
	case Level.DefaultWidth <= 0 || Level.DefaultHeight <= 0:
		return fmt.Errorf("level default size must be positive, got %dx%d", Level.DefaultWidth, Level.DefaultHeight)
	case Camera.GlideDuration < 0:
		return fmt.Errorf("camera.glide_duration must not be negative, got %v", Camera.GlideDuration)
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("game window size must be positive, got %dx%d", C.Width, C.Height)
	}
	return nil
}

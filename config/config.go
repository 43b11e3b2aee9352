package config

import (
	"github.com/automoto/tilerunner/geom"
	"github.com/automoto/tilerunner/render"
)

// PhysicsConfig contains the movement constants shared by every entity.
// Units are tiles and seconds.
type PhysicsConfig struct {
	MaxSpeedX float64 `yaml:"max_speed_x"`
	MaxSpeedY float64 `yaml:"max_speed_y"`

	Acceleration      float64 `yaml:"acceleration"`
	GroundFriction    float64 `yaml:"ground_friction"`     // Opposes horizontal velocity, scaled by it
	AirControlPenalty float64 `yaml:"air_control_penalty"` // Fraction of input acceleration lost in the air

	Gravity         float64 `yaml:"gravity"` // Downward, as a positive number
	JumpSpeed       float64 `yaml:"jump_speed"`
	DoubleJumpSpeed float64 `yaml:"double_jump_speed"`

	CollisionInset float64 `yaml:"collision_inset"` // Gap left between an entity and the tile it hit
}

// CombatConfig contains attack and knockback tuning.
type CombatConfig struct {
	AttackDuration float64 `yaml:"attack_duration"` // Seconds the hitbox stays active
	AttackCooldown float64 `yaml:"attack_cooldown"` // Seconds after the attack ends before the next one
	AttackReach    float64 `yaml:"attack_reach"`    // Hitbox offset from the attacker in tiles

	Damage            int     `yaml:"damage"`
	KnockbackDuration float64 `yaml:"knockback_duration"`
	KnockbackSpeedX   float64 `yaml:"knockback_speed_x"`
	KnockbackSpeedY   float64 `yaml:"knockback_speed_y"`

	FlickerRate float64 `yaml:"flicker_rate"` // Knocked entities blink while sin(remaining*rate) > 0
}

// CharacterConfig describes the collision box of a walking character
// relative to its position.
type CharacterConfig struct {
	Offset geom.V2 `yaml:"offset"`
	Size   geom.V2 `yaml:"size"`
}

// PlayerConfig contains player spawn values
type PlayerConfig struct {
	Health int     `yaml:"health"`
	Spawn  geom.V2 `yaml:"spawn"`
}

// EnemyConfig contains enemy spawn values and AI tuning
type EnemyConfig struct {
	Health int       `yaml:"health"`
	Spawns []geom.V2 `yaml:"spawns"`

	// Enemies chase the player while the squared distance is at least this.
	ChaseDistanceSq float64 `yaml:"chase_distance_sq"`
}

// RenderConfig contains draw buffer and text settings
type RenderConfig struct {
	TileSize   int `yaml:"tile_size"`
	Scale      int `yaml:"scale"`
	AltScale   int `yaml:"alt_scale"` // Scale F12 toggles to
	FontHeight int `yaml:"font_height"`

	Background   render.Color `yaml:"background"`
	GridColor    render.Color `yaml:"grid_color"`
	OutlineColor render.Color `yaml:"outline_color"`
	HitboxColor  render.Color `yaml:"hitbox_color"`
	DebugBoxes   bool         `yaml:"debug_boxes"`
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	// GlideDuration is how long the camera eases from the editor view to
	// the player after entering play mode. Zero snaps.
	GlideDuration float64 `yaml:"glide_duration"`
}

// LevelConfig contains level storage settings
type LevelConfig struct {
	Name          string `yaml:"name"`
	DefaultWidth  int    `yaml:"default_width"`
	DefaultHeight int    `yaml:"default_height"`
}

// EditorConfig contains level editor settings
type EditorConfig struct {
	StartInEditor   bool    `yaml:"start_in_editor"`
	CameraSpeed     float64 `yaml:"camera_speed"`     // Tiles per second
	MessageDuration float64 `yaml:"message_duration"` // Seconds a status message stays up
	BoxMargin       int     `yaml:"box_margin"`
	CursorMargin    int     `yaml:"cursor_margin"`
	BorderThickness int     `yaml:"border_thickness"`
	HelpText        string  `yaml:"help_text"`
}

// Config holds general game configuration
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	AppName string `yaml:"app_name"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Combat CombatConfig
var Character CharacterConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Render RenderConfig
var Camera CameraConfig
var Level LevelConfig
var Editor EditorConfig

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:   1280,
		Height:  720,
		Title:   "tilerunner",
		AppName: "tilerunner",
	}

	// Physics Config
	Physics = PhysicsConfig{
		MaxSpeedX: 10,
		MaxSpeedY: 30,

		Acceleration:      100,
		GroundFriction:    12,
		AirControlPenalty: 0.8,

		Gravity:         100,
		JumpSpeed:       15,
		DoubleJumpSpeed: 12,

		CollisionInset: 0.01,
	}

	// Combat Config
	Combat = CombatConfig{
		AttackDuration: 0.3,
		AttackCooldown: 0.3,
		AttackReach:    1,

		Damage:            1,
		KnockbackDuration: 1,
		KnockbackSpeedX:   100, // clamped by Physics.MaxSpeedX
		KnockbackSpeedY:   300, // clamped by Physics.MaxSpeedY

		FlickerRate: 20,
	}

	// A character is 0.75 tiles wide. Its feet sit just under half a tile
	// below its position and its head just under half a tile above.
	Character = CharacterConfig{
		Offset: geom.V2{X: -0.75 / 2, Y: -(0.5 - 0.001)},
		Size:   geom.V2{X: 0.75, Y: (0.5 - 0.001) + (0.5 - 1.0/9.0)},
	}

	Player = PlayerConfig{
		Health: 1,
		Spawn:  geom.V2{X: 2.5, Y: 2.5},
	}

	Enemy = EnemyConfig{
		Health:          5,
		Spawns:          []geom.V2{{X: 3.5, Y: 1.5}},
		ChaseDistanceSq: 16,
	}

	Render = RenderConfig{
		TileSize:   16,
		Scale:      4,
		AltScale:   1,
		FontHeight: 20,

		Background:   render.Black,
		GridColor:    render.Grey,
		OutlineColor: render.Yellow,
		HitboxColor:  0x77<<24 | render.Red&^render.AMask,
		DebugBoxes:   true,
	}

	Camera = CameraConfig{
		GlideDuration: 0.25,
	}

	Level = LevelConfig{
		Name:          "map_00",
		DefaultWidth:  15,
		DefaultHeight: 15,
	}

	Editor = EditorConfig{
		StartInEditor:   true,
		CameraSpeed:     10,
		MessageDuration: 1,
		BoxMargin:       5,
		CursorMargin:    10,
		BorderThickness: 2,
		HelpText:        "Use arrow keys to change tilemap size.",
	}
}

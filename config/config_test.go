package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tilerunner/input"
)

func TestApplyOverridesOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
physics:
  jump_speed: 20
level:
  name: map_07
enemy:
  spawns:
    - {x: 4, y: 2}
    - {x: 8, y: 2}
`))
	if err != nil {
		t.Fatal(err)
	}
	if Physics.JumpSpeed != 20 {
		t.Errorf("JumpSpeed = %v, want 20", Physics.JumpSpeed)
	}
	if Physics.Gravity != 100 {
		t.Errorf("Gravity = %v, want default 100", Physics.Gravity)
	}
	if Level.Name != "map_07" || Level.DefaultWidth != 15 {
		t.Errorf("Level = %+v", Level)
	}
	if len(Enemy.Spawns) != 2 || Enemy.Spawns[1].X != 8 {
		t.Errorf("Spawns = %v", Enemy.Spawns)
	}
}

func TestApplyRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)

	tests := []string{
		"render: {tile_size: 0}",
		"level: {default_width: -1}",
		"physics: [1, 2]",
	}
	for _, doc := range tests {
		Reset()
		if err := Apply([]byte(doc)); err == nil {
			t.Errorf("Apply(%q) succeeded, want error", doc)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("render: {scale: 2}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	used, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if used != path || Render.Scale != 2 {
		t.Errorf("used %q, scale %d", used, Render.Scale)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	t.Cleanup(Reset)

	Combat.AttackReach = 1.5
	data, err := Dump()
	if err != nil {
		t.Fatal(err)
	}
	Reset()
	if err := Apply(data); err != nil {
		t.Fatal(err)
	}
	if Combat.AttackReach != 1.5 {
		t.Errorf("AttackReach = %v, want 1.5", Combat.AttackReach)
	}
}

func TestActionBindings(t *testing.T) {
	var s input.Snapshot
	s.SetKey(input.KeyCtrl, true)
	s.SetKey(input.KeyS, true)

	if !Modified(&s, ActionSave) {
		t.Error("Ctrl+S should trigger save")
	}
	if Modified(&s, ActionToggleEditor) {
		t.Error("Ctrl+S should not toggle the editor")
	}
	if Axis(&s, ActionPanDown, ActionPanUp) != -1 {
		t.Error("S should pan down")
	}
	if AxisPressed(&s, ActionShrinkWidth, ActionGrowWidth) != 0 {
		t.Error("no arrow key pressed")
	}
}

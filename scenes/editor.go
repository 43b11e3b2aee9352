package scenes

import (
	"github.com/automoto/tilerunner/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EditorScene edits the level the PlatformerScene plays.
type EditorScene struct {
	scene
}

func NewEditorScene(world donburi.World) *EditorScene {
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateEditorSave)
	e.AddSystem(systems.UpdateMessage)
	e.AddSystem(systems.UpdateEditorResize)
	e.AddSystem(systems.UpdateEditorPan)
	e.AddSystem(systems.UpdateEditorPaint)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateMode)

	return &EditorScene{scene{
		ecs: e,
		renderers: []systems.Renderer{
			systems.DrawBackground,
			systems.DrawLevel,
			systems.DrawGrid,
			systems.DrawLevelOutline,
			systems.DrawEditorHUD,
			systems.DrawMessage,
			systems.DrawBorder,
		},
	}}
}

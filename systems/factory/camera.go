package factory

import (
	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/camera"
	"github.com/automoto/tilerunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, tileSize, scale int) *donburi.Entry {
	cam := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(cam, components.CameraData{
		Transform: camera.New(tileSize, scale),
	})
	return cam
}

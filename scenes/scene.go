package scenes

import (
	"github.com/automoto/tilerunner/render"
	"github.com/automoto/tilerunner/systems"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one game mode's systems and renderers over the shared world.
type Scene interface {
	Update()
	Draw(dst *render.PixelBuffer)
}

type scene struct {
	ecs       *ecs.ECS
	renderers []systems.Renderer
}

func (s *scene) Update() {
	s.ecs.Update()
}

func (s *scene) Draw(dst *render.PixelBuffer) {
	for _, r := range s.renderers {
		r(s.ecs, dst)
	}
}

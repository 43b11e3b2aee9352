package components

import (
	"github.com/automoto/tilerunner/input"
	"github.com/yohamta/donburi"
)

// InputData is the singleton carrying this frame's input and time step.
type InputData struct {
	*input.Snapshot
	Dt float64
}

var Input = donburi.NewComponentType[InputData]()

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hurtbox in the broad-phase space. Its Data
// field points back at the owning entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase space, in pixels of game space.
var Space = donburi.NewComponentType[resolv.Space]()

package components

import (
	"github.com/automoto/tilerunner/combat"
	"github.com/automoto/tilerunner/geom"
	"github.com/yohamta/donburi"
)

// HitboxData is the attack area of its owner for the current tick.
type HitboxData struct {
	combat.Hitbox
	Active bool
	// Hook is the top-left corner of the hook sprite in game space.
	Hook geom.V2
}

var Hitbox = donburi.NewComponentType[HitboxData]()

package components

import (
	"github.com/automoto/tilerunner/combat"
	"github.com/yohamta/donburi"
)

var Health = donburi.NewComponentType[combat.Health]()

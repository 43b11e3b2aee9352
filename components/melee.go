package components

import (
	"github.com/automoto/tilerunner/combat"
	"github.com/yohamta/donburi"
)

var MeleeAttack = donburi.NewComponentType[combat.Attack]()

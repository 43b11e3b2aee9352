package components

import (
	"github.com/automoto/tilerunner/motion"
	"github.com/yohamta/donburi"
)

var Body = donburi.NewComponentType[motion.Body]()

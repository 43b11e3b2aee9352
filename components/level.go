package components

import (
	"github.com/automoto/tilerunner/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid  *tilemap.Grid
	Name  string
	Store tilemap.Store // nil disables saving
}

var Level = donburi.NewComponentType[LevelData]()

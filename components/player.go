package components

import (
	"github.com/automoto/tilerunner/geom"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn geom.V2
}

var Player = donburi.NewComponentType[PlayerData]()

// SnapshotData records the player position at the start of the tick so
// that enemies react to where the player was, not where it moved to.
type SnapshotData struct {
	Player geom.V2
	Valid  bool
}

var Snapshot = donburi.NewComponentType[SnapshotData]()

package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	// Index is the spawn order, which is also the update order.
	Index int
	// Struck is set on the tick a hit lands. Knockback starts moving the
	// enemy on the following tick.
	Struck bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for the combat broad phase
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)

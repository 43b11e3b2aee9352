package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; every entity lives on it.
const Default ecs.LayerID = 0

package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Coin       = donburi.NewTag().SetName("Coin")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision checks
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvCoin       = "Coin"
	ResolvObstacle   = "Obstacle"
	ResolvProjectile = "Projectile"
)

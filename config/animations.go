package config

// DefaultAnimationRate is the frame advance per tick for states without an explicit rate.
const DefaultAnimationRate = 0.18

type AnimationDef struct {
	Frames int     // frames in the horizontal strip
	Rate   float64 // frame index advance per tick
}

// CharacterAnimations maps a character key (e.g., "wizard", "goblin")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"wizard": {
		Idle:    {Frames: 6, Rate: 0.15},
		Run:     {Frames: 8, Rate: 0.25},
		Jump:    {Frames: 2, Rate: 0.12},
		Attack:  {Frames: 8, Rate: 0.22},
		Attack2: {Frames: 8, Rate: 0.22},
		Hit:     {Frames: 4, Rate: 0.18},
		Death:   {Frames: 7, Rate: 0.18},
	},
	"swordman": {
		Idle:    {Frames: 8, Rate: 0.15},
		Run:     {Frames: 8, Rate: 0.25},
		Jump:    {Frames: 2, Rate: 0.12},
		Attack:  {Frames: 6, Rate: 0.22},
		Attack2: {Frames: 6, Rate: 0.22},
		Hit:     {Frames: 4, Rate: 0.18},
		Death:   {Frames: 6, Rate: 0.18},
	},
	"mushroom":     enemyAnimations(4, 8, 8, 4, 4),
	"flying eye":   enemyAnimations(8, 8, 8, 4, 4),
	"goblin":       enemyAnimations(4, 8, 8, 4, 4),
	"skeleton":     enemyAnimations(4, 4, 8, 4, 4),
	"evil":         enemyAnimations(8, 8, 8, 3, 7),
	"neon phantom": enemyAnimations(6, 6, 10, 4, 8),
	"gorgon":       enemyAnimations(7, 13, 16, 3, 3),
	"fireworm":     enemyAnimations(9, 9, 16, 3, 8),
	"coin": {
		Idle: {Frames: 12, Rate: 0.07},
	},
	"obstacle": {
		Idle: {Frames: 1, Rate: 0},
	},
	"fireball": {
		Fly:     {Frames: 6, Rate: 0.3},
		Explode: {Frames: 7, Rate: 0.3},
	},
}

// RequiredStates lists the states each kind of actor must be able to show.
var RequiredStates = map[string][]StateID{
	"player":     {Idle, Run, Jump, Attack, Attack2, Hit, Death},
	"enemy":      {Idle, Run, Attack, Hit, Death},
	"coin":       {Idle},
	"obstacle":   {Idle},
	"projectile": {Fly, Explode},
}

func enemyAnimations(idle, run, attack, hit, death int) map[StateID]AnimationDef {
	return map[StateID]AnimationDef{
		Idle:   {Frames: idle, Rate: 0.18},
		Run:    {Frames: run, Rate: 0.24},
		Attack: {Frames: attack, Rate: 0.22},
		Hit:    {Frames: hit, Rate: 0.18},
		Death:  {Frames: death, Rate: 0.18},
	}
}

// AnimationRates returns the per-state rates for a character key.
func AnimationRates(key string) map[StateID]float64 {
	rates := make(map[StateID]float64)
	for state, def := range CharacterAnimations[key] {
		rates[state] = def.Rate
	}
	return rates
}

package config

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the adventure scene.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpPower float64
	Gravity   float64

	// Combat
	Health        int
	Invulnerable  time.Duration
	SpawnX        float64
	FrameWidth    int
	FrameHeight   int
	CollisionSize [2]float64

	// Serial movement impulse
	ImpulseStep time.Duration
	ImpulseMax  time.Duration
}

// ClassConfig describes a selectable player class.
type ClassConfig struct {
	Name          string
	SecondaryKey  ebiten.Key
	SecondaryByte byte // serial command that maps to the secondary attack
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name          string
	Health        int
	Speed         float64
	Damage        int
	RequiredDelta int
	Boss          bool

	// Ranged combat, zero period disables firing
	FirePeriod       time.Duration
	FireDelay        time.Duration
	ProjectileDamage int

	FrameWidth  int
	FrameHeight int
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	StopOffset    float64       // distance in front of the player where the challenge starts
	SpawnOffset   float64       // distance past the right screen edge where enemies appear
	Challenge     time.Duration // length of the challenge window
	RequiredDelta int           // fallback when a type leaves it unset
}

// CoinConfig contains coin pickup configuration values
type CoinConfig struct {
	ApproachSpeed float64
	Height        float64 // pixels above the ground
	BobAmplitude  float64
	BobDuration   float32 // seconds per half bob
	Size          float64
}

// ObstacleConfig contains ground obstacle configuration values
type ObstacleConfig struct {
	StopOffset    float64
	ApproachSpeed float64
	ExitSpeed     float64
	PassMargin    float64
	PassDuration  float32 // seconds
	Width, Height float64
}

// ProjectileConfig contains fireball configuration values
type ProjectileConfig struct {
	Speed    float64
	Lifetime time.Duration
	Size     float64
}

// ProgressConfig contains progress meter configuration values
type ProgressConfig struct {
	Max      float64
	PerMilli float64 // meter gain per millisecond of movement
}

// SerialConfig contains serial controller configuration values
type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
	Buffer      int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	PanelColor      color.RGBA
	TextColor       color.RGBA
	PromptColor     color.RGBA
	TimerColor      color.RGBA
	GroundColor     color.RGBA
	BackgroundColor color.RGBA

	// Stand-in fills for actors drawn without sprites
	PlayerColor     color.RGBA
	EnemyColor      color.RGBA
	BossColor       color.RGBA
	CoinColor       color.RGBA
	ObstacleColor   color.RGBA
	ProjectileColor color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title          string
	KeyboardHint   string
	ControllerHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool
	Seed    uint64
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	GroundY float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Classes map[string]ClassConfig
var Enemy EnemyConfig
var Coin CoinConfig
var Obstacle ObstacleConfig
var Projectile ProjectileConfig
var Progress ProgressConfig
var Serial SerialConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:   1000,
		Height:  500,
		GroundY: 420,
	}

	Player = PlayerConfig{
		JumpPower:     14,
		Gravity:       0.8,
		Health:        20,
		Invulnerable:  600 * time.Millisecond,
		SpawnX:        500,
		FrameWidth:    100,
		FrameHeight:   100,
		CollisionSize: [2]float64{40, 80},
		ImpulseStep:   140 * time.Millisecond,
		ImpulseMax:    300 * time.Millisecond,
	}

	Classes = map[string]ClassConfig{
		"wizard":   {Name: "wizard", SecondaryKey: ebiten.KeyM, SecondaryByte: 'M'},
		"swordman": {Name: "swordman", SecondaryKey: ebiten.KeyP, SecondaryByte: 'P'},
	}

	Enemy = EnemyConfig{
		StopOffset:    300,
		SpawnOffset:   120,
		Challenge:     5000 * time.Millisecond,
		RequiredDelta: 3,
		Types: map[string]EnemyTypeConfig{
			"mushroom":     {Name: "mushroom", Health: 2, Speed: 2, Damage: 1, RequiredDelta: 3, FrameWidth: 150, FrameHeight: 150},
			"flying eye":   {Name: "flying eye", Health: 2, Speed: 2, Damage: 1, RequiredDelta: 3, FrameWidth: 150, FrameHeight: 150},
			"goblin":       {Name: "goblin", Health: 4, Speed: 2, Damage: 1, RequiredDelta: 3, FrameWidth: 150, FrameHeight: 150},
			"skeleton":     {Name: "skeleton", Health: 4, Speed: 2, Damage: 2, RequiredDelta: 3, FrameWidth: 150, FrameHeight: 150},
			"evil":         {Name: "evil", Health: 8, Speed: 2, Damage: 5, RequiredDelta: 5, Boss: true, FrameWidth: 250, FrameHeight: 250},
			"neon phantom": {Name: "neon phantom", Health: 10, Speed: 2, Damage: 7, RequiredDelta: 6, Boss: true, FrameWidth: 200, FrameHeight: 200},
			"gorgon":       {Name: "gorgon", Health: 10, Speed: 2, Damage: 7, RequiredDelta: 6, Boss: true, FrameWidth: 128, FrameHeight: 128},
			"fireworm": {
				Name: "fireworm", Health: 8, Speed: 2, Damage: 5, RequiredDelta: 7, Boss: true,
				FirePeriod: 2000 * time.Millisecond, FireDelay: 1000 * time.Millisecond, ProjectileDamage: 5,
				FrameWidth: 90, FrameHeight: 90,
			},
		},
	}

	Coin = CoinConfig{
		ApproachSpeed: 10,
		Height:        70,
		BobAmplitude:  6,
		BobDuration:   0.4,
		Size:          24,
	}

	Obstacle = ObstacleConfig{
		StopOffset:    120,
		ApproachSpeed: 3,
		ExitSpeed:     6,
		PassMargin:    150,
		PassDuration:  0.45,
		Width:         48,
		Height:        40,
	}

	Projectile = ProjectileConfig{
		Speed:    7,
		Lifetime: 5000 * time.Millisecond,
		Size:     24,
	}

	Progress = ProgressConfig{
		Max:      100,
		PerMilli: 0.05,
	}

	Serial = SerialConfig{
		Baud:        115200,
		ReadTimeout: 50 * time.Millisecond,
		Buffer:      64,
	}

	UI = UIConfig{
		HealthBarWidth:  160,
		HealthBarHeight: 12,
		Margin:          12,
		PanelColor:      color.RGBA{R: 20, G: 20, B: 30, A: 200},
		TextColor:       White,
		PromptColor:     Yellow,
		TimerColor:      Orange,
		GroundColor:     color.RGBA{R: 70, G: 70, B: 70, A: 255},
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		PlayerColor:     LightBlue,
		EnemyColor:      Red,
		BossColor:       color.RGBA{R: 170, G: 0, B: 170, A: 255},
		CoinColor:       Yellow,
		ObstacleColor:   color.RGBA{R: 140, G: 110, B: 80, A: 255},
		ProjectileColor: Orange,
	}

	Pause = PauseConfig{
		OverlayColor:   BlackOverlay,
		TextColor:      White,
		Title:          "PAUSED",
		KeyboardHint:   "Esc: Resume",
		ControllerHint: "Send RESUME from the controller or press Esc",
	}

	// validated against Enemy.Types, so it is parsed last
	Levels = MustParseLevels(defaultLevels)
}

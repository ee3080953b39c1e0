package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed update rate
}

// DeltaTime is the length of one update in seconds.
func (c *Config) DeltaTime() float64 {
	if c.TPS <= 0 {
		return 0
	}
	return 1 / float64(c.TPS)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // pixels per frame

	// Combat
	Health           float64
	Attack           float64
	MaxComboTime     float64 // seconds to continue the string
	MaxBlockCooldown float64 // seconds after an unparried block
	CenterOffsetX    float64
	CenterOffsetY    float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// MovementKind picks the movement brain of an enemy type.
type MovementKind string

const (
	MovementChase    MovementKind = "chase"
	MovementSkeleton MovementKind = "skeleton"
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string
	Health   float64
	Movement MovementKind
	IsBoss   bool

	ChaseSpeed   float64 // pixels per frame
	StopDistance float64 // skeleton movement only

	// Contact attack
	ContactRange    float64 // reach beyond the collider
	ContactDamage   float64
	ContactCooldown float64 // seconds

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// CombatConfig contains combat presentation and bookkeeping values
type CombatConfig struct {
	HealthBarDuration float64 // seconds an enemy bar stays up after a hit
	DeathDuration     float64 // seconds before a dead entity is removed
	InterruptLockout  float64 // stagger applied when a hit lands

	// Parry popup
	ParryText         string
	ParryTextDuration float64
	ParryTextRise     float64 // pixels

	// Upgrade steps for the sandbox keys
	AttackStep               float64
	AttackSpeedStep          float64
	ParryBonusDurationStep   float64
	ParryBonusMultiplierStep float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHurtboxes bool
	NoSave        bool // skip loading and saving combat stats
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed: 3.0,

		Health:           100,
		Attack:           10,
		MaxComboTime:     0.5,
		MaxBlockCooldown: 0.5,
		CenterOffsetX:    0,
		CenterOffsetY:    0, // objects are tracked by their center

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	skeleton := EnemyTypeConfig{
		Name:            "SpearSkeleton",
		Health:          40,
		Movement:        MovementSkeleton,
		ChaseSpeed:      1.5,
		StopDistance:    24,
		ContactRange:    12,
		ContactDamage:   8,
		ContactCooldown: 1.2,
		CollisionWidth:  16,
		CollisionHeight: 36,
		TintColor:       color.RGBA{R: 220, G: 220, B: 200, A: 255},
	}

	slime := EnemyTypeConfig{
		Name:            "Slime",
		Health:          25,
		Movement:        MovementChase,
		ChaseSpeed:      1.0,
		ContactRange:    4,
		ContactDamage:   5,
		ContactCooldown: 1.0,
		CollisionWidth:  20,
		CollisionHeight: 14,
		TintColor:       color.RGBA{R: 100, G: 255, B: 100, A: 255},
	}

	boss := EnemyTypeConfig{
		Name:            "BoneKnight",
		Health:          300,
		Movement:        MovementSkeleton,
		IsBoss:          true,
		ChaseSpeed:      1.0,
		StopDistance:    40,
		ContactRange:    20,
		ContactDamage:   15,
		ContactCooldown: 1.8,
		CollisionWidth:  32,
		CollisionHeight: 56,
		TintColor:       color.RGBA{R: 180, G: 60, B: 255, A: 255},
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			skeleton.Name: skeleton,
			slime.Name:    slime,
			boss.Name:     boss,
		},
	}

	Combat = CombatConfig{
		HealthBarDuration: 2.0,
		DeathDuration:     0.6,
		InterruptLockout:  0.3,

		ParryText:         "PARRY!",
		ParryTextDuration: 0.8,
		ParryTextRise:     24,

		AttackStep:               2,
		AttackSpeedStep:          0.1,
		ParryBonusDurationStep:   0.5,
		ParryBonusMultiplierStep: 0.25,
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       40,
			Speed:        3,
			FireCooldown: 30,
			Lives:        3,
			SpawnOffset:  50,
		},
		Lasers: LaserConfig{
			Width:           6,
			Height:          20,
			PlayerSpeed:     3,
			EnemySpeed:      2,
			EnemyExitMargin: 30,
		},
		Enemies: EnemyConfig{
			Rows:        2,
			Cols:        9,
			Width:       50,
			Height:      40,
			SpacingX:    80,
			SpacingY:    80,
			Top:         100,
			MarginX:     40,
			CooldownMin: 200,
			CooldownMax: 700,
			AmplitudeX:  40,
			AmplitudeY:  30,
			Score:       100,
		},
		Timing: TimingConfig{
			TickRate:        60,
			ClockIntervalMS: 1000,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}

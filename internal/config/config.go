// Package config provides YAML-based configuration loading and validation
// for the invaders simulation and its front ends.
package config

import "time"

// InvadersConfig contains all tuning for a session.
type InvadersConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Lasers  LaserConfig   `yaml:"lasers"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
}

// FieldConfig defines the play-field size in field pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal step per tick
	FireCooldown int     `yaml:"fire_cooldown"` // Ticks between shots
	Lives        int     `yaml:"lives"`
	SpawnOffset  float64 `yaml:"spawn_offset"` // Distance of the spawn point above the field bottom
}

// LaserConfig defines both projectile kinds.
type LaserConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	PlayerSpeed     float64 `yaml:"player_speed"`      // Upward step per tick
	EnemySpeed      float64 `yaml:"enemy_speed"`       // Downward step per tick
	EnemyExitMargin float64 `yaml:"enemy_exit_margin"` // Enemy lasers vanish this far above the bottom
}

// EnemyConfig defines the enemy formation.
type EnemyConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"` // Upper bound, see Columns
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	Top         float64 `yaml:"top"`      // Base y of the first row
	MarginX     float64 `yaml:"margin_x"` // Base x of the first column
	CooldownMin int     `yaml:"cooldown_min"`
	CooldownMax int     `yaml:"cooldown_max"`
	AmplitudeX  float64 `yaml:"amplitude_x"` // Formation sway, horizontal
	AmplitudeY  float64 `yaml:"amplitude_y"` // Formation sway, vertical
	Score       int     `yaml:"score"`       // Points per destroyed enemy
}

// TimingConfig defines frame and display cadences.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Frames per second
	ClockIntervalMS int `yaml:"clock_interval_ms"` // Elapsed-time display refresh
}

// InputConfig tunes the terminal key-hold emulation.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A key counts as held this long after its last press
}

// FrameInterval returns the duration of one display frame.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// ClockInterval returns the elapsed-time display refresh period.
func (t TimingConfig) ClockInterval() time.Duration {
	return time.Duration(t.ClockIntervalMS) * time.Millisecond
}

// Hold returns the key-hold window.
func (i InputConfig) Hold() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// Columns returns how many enemy columns fit the field: at most
// Enemies.Cols, and never more than fit between the horizontal margins.
func Columns(cfg InvadersConfig) int {
	e := cfg.Enemies
	if e.SpacingX <= 0 {
		return e.Cols
	}
	usable := cfg.Field.Width - 2*e.MarginX - e.Width
	if usable < 0 {
		return 0
	}
	fit := int(usable/e.SpacingX) + 1
	if fit < e.Cols {
		return fit
	}
	return e.Cols
}

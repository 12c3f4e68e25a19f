package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the invaders configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (InvadersConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultInvadersConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultInvadersConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}

// Validate reports every setting that would make a session ill-formed.
func Validate(cfg InvadersConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Field.Width > 0 && cfg.Field.Height > 0,
		"field: size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height)

	p := cfg.Player
	check(p.Width > 0 && p.Height > 0, "player: size must be positive, got %vx%v", p.Width, p.Height)
	check(p.Width <= cfg.Field.Width, "player: width %v exceeds field width %v", p.Width, cfg.Field.Width)
	check(p.Speed > 0, "player: speed must be positive, got %v", p.Speed)
	check(p.FireCooldown >= 0, "player: fire_cooldown must not be negative, got %d", p.FireCooldown)
	check(p.Lives > 0, "player: lives must be positive, got %d", p.Lives)
	check(p.SpawnOffset >= 0 && p.SpawnOffset <= cfg.Field.Height,
		"player: spawn_offset %v outside field height %v", p.SpawnOffset, cfg.Field.Height)

	l := cfg.Lasers
	check(l.Width > 0 && l.Height > 0, "lasers: size must be positive, got %vx%v", l.Width, l.Height)
	check(l.PlayerSpeed > 0, "lasers: player_speed must be positive, got %v", l.PlayerSpeed)
	check(l.EnemySpeed > 0, "lasers: enemy_speed must be positive, got %v", l.EnemySpeed)
	check(l.PlayerSpeed > l.EnemySpeed,
		"lasers: player_speed %v must exceed enemy_speed %v", l.PlayerSpeed, l.EnemySpeed)
	check(l.EnemyExitMargin >= 0, "lasers: enemy_exit_margin must not be negative, got %v", l.EnemyExitMargin)

	e := cfg.Enemies
	check(e.Rows > 0, "enemies: rows must be positive, got %d", e.Rows)
	check(e.Cols > 0, "enemies: cols must be positive, got %d", e.Cols)
	check(e.Width > 0 && e.Height > 0, "enemies: size must be positive, got %vx%v", e.Width, e.Height)
	check(e.SpacingX > 0 && e.SpacingY > 0, "enemies: spacing must be positive, got %vx%v", e.SpacingX, e.SpacingY)
	check(e.CooldownMin >= 0, "enemies: cooldown_min must not be negative, got %d", e.CooldownMin)
	check(e.CooldownMax >= e.CooldownMin,
		"enemies: cooldown_max %d below cooldown_min %d", e.CooldownMax, e.CooldownMin)
	check(e.Score >= 0, "enemies: score must not be negative, got %d", e.Score)
	if len(errs) == 0 {
		check(Columns(cfg) > 0, "enemies: no column fits a field %v wide", cfg.Field.Width)
	}

	check(cfg.Timing.TickRate > 0, "timing: tick_rate must be positive, got %d", cfg.Timing.TickRate)
	check(cfg.Timing.ClockIntervalMS > 0,
		"timing: clock_interval_ms must be positive, got %d", cfg.Timing.ClockIntervalMS)
	check(cfg.Input.HoldMS > 0, "input: hold_ms must be positive, got %d", cfg.Input.HoldMS)

	return errors.Join(errs...)
}

// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxFieldSize is the largest field side that still fits a uint8 grid once
// the surrounding walls are added.
const MaxFieldSize = math.MaxUint8 - 2

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Player     SnakePlayer      `yaml:"player"`
	Pace       SnakePace        `yaml:"pace"`
	Apples     SnakeApples      `yaml:"apples"`
	Layout     []string         `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the playing field.
type SnakeBoard struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Seeded    bool `yaml:"seeded"`
	FitScreen bool `yaml:"fit_screen"` // size the field to the terminal instead
}

// SnakePlayer defines the initial snake.
type SnakePlayer struct {
	InitialLength  int    `yaml:"initial_length"`
	StartDirection string `yaml:"start_direction"` // first move; the snake spawns facing up
}

// SnakePace defines how often the snake moves.
type SnakePace struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// SnakeApples defines how many apples are on the board at once.
type SnakeApples struct {
	Count int `yaml:"count"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "apples", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Apples/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed added at max difficulty
}

// MaxInitialLength returns the longest snake that fits between the field
// center and the top wall for a field of the given height.
func MaxInitialLength(fieldHeight int) int {
	return (fieldHeight+2)/2 - 1
}

// Validate reports every impossible value in the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 2 || c.Board.Width > MaxFieldSize {
		errs = append(errs, fmt.Errorf("board.width %d not in [2, %d]", c.Board.Width, MaxFieldSize))
	}
	if c.Board.Height < 2 || c.Board.Height > MaxFieldSize {
		errs = append(errs, fmt.Errorf("board.height %d not in [2, %d]", c.Board.Height, MaxFieldSize))
	}
	if c.Player.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("player.initial_length %d must be at least 1", c.Player.InitialLength))
	} else if maxLen := MaxInitialLength(c.Board.Height); c.Board.Height >= 2 && c.Player.InitialLength > maxLen {
		errs = append(errs, fmt.Errorf("player.initial_length %d does not fit a field %d high (max %d)",
			c.Player.InitialLength, c.Board.Height, maxLen))
	}
	switch strings.ToLower(strings.TrimSpace(c.Player.StartDirection)) {
	case "", "up", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("player.start_direction %q must be up, left or right", c.Player.StartDirection))
	}
	if c.Pace.MoveEveryTicks < 1 {
		errs = append(errs, fmt.Errorf("pace.move_every_ticks %d must be at least 1", c.Pace.MoveEveryTicks))
	}
	if c.Pace.MinMoveEveryTicks < 1 || c.Pace.MinMoveEveryTicks > c.Pace.MoveEveryTicks {
		errs = append(errs, fmt.Errorf("pace.min_move_every_ticks %d not in [1, %d]",
			c.Pace.MinMoveEveryTicks, c.Pace.MoveEveryTicks))
	}
	if c.Apples.Count < 0 {
		errs = append(errs, fmt.Errorf("apples.count %d must not be negative", c.Apples.Count))
	}
	if len(c.Layout) > c.Board.Height {
		errs = append(errs, fmt.Errorf("layout has %d rows, field has %d", len(c.Layout), c.Board.Height))
	}
	for i, row := range c.Layout {
		if len(row) > c.Board.Width {
			errs = append(errs, fmt.Errorf("layout row %d is %d wide, field is %d", i, len(row), c.Board.Width))
		}
	}
	switch c.Difficulty.Progression.Type {
	case "apples", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q unknown", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is accepted.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

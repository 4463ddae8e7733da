package config

import "math"

// DifficultyManager derives the snake's pace from apples eaten or ticks played.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// ByTime reports whether the pace follows ticks played rather than apples.
func (d *DifficultyManager) ByTime() bool {
	return d.IsEnabled() && d.cfg.Progression.Type == "time"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(apples int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "apples", "":
		progress = float64(apples) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveEvery returns how many ticks pass between snake moves.
// A higher level means fewer ticks, never below minTicks.
func (d *DifficultyManager) MoveEvery(pace SnakePace, apples int, ticks uint64) int {
	level := d.Level(apples, ticks)
	speed := 1.0 + level*d.cfg.Scaling.SpeedMultiplier
	every := int(math.Round(float64(pace.MoveEveryTicks) / speed))
	return max(pace.MinMoveEveryTicks, min(pace.MoveEveryTicks, every))
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

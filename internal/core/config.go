package core

// RuntimeConfig is passed to a game when it starts or restarts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Length   int    // Current snake length
	Apples   int    // Apples eaten this session
	GameOver bool   // Whether the session has ended
	Won      bool   // Whether the board was filled
	Paused   bool   // Whether the game is paused
	Reason   string // Why the session ended, empty while playing
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

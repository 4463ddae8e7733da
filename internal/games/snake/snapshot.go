package snake

import (
	"github.com/alan-andrade/snake2/internal/grid"
	"github.com/alan-andrade/snake2/internal/player"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Length    int
	Apples    int
	Head      grid.Position
	Dir       player.Direction
	ApplesAt  []grid.Position // Row-major
	Occupied  int
	MoveEvery int
	State     GameStateType
	Reason    string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Apples:    g.apples,
		MoveEvery: g.moveEvery,
		State:     state,
		Reason:    g.reason,
	}
	if g.snake != nil {
		snap.Length = g.snake.Len()
		snap.Head = g.snake.Head()
		snap.Dir = g.snake.Facing()
	}
	if g.board != nil {
		snap.Occupied = g.board.OccupiedCount()
		for _, p := range g.board.Occupied() {
			if object, _ := g.board.ObjectAt(p); object == grid.Apple {
				snap.ApplesAt = append(snap.ApplesAt, p)
			}
		}
	}
	return snap
}

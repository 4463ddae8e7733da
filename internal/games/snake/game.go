package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alan-andrade/snake2/internal/config"
	"github.com/alan-andrade/snake2/internal/core"
	"github.com/alan-andrade/snake2/internal/grid"
	"github.com/alan-andrade/snake2/internal/player"
	"github.com/alan-andrade/snake2/internal/registry"
	"github.com/alan-andrade/snake2/internal/rules"
)

// Variant selects how the board stores empty cells.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantSeeded  Variant = "snake_seeded"
)

const hudHeight = 2 // HUD line plus separator

// Package-level settings applied to games created through the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file used by registry-created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by registry-created games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by registry-created games.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements Snake on top of the occupancy grid.
type Game struct {
	variant Variant
	cfg     *config.SnakeConfig // nil means load on Reset
	logger  *log.Logger
	rng     *rand.Rand

	tick       uint64
	played     uint64 // Ticks spent running, pauses excluded
	apples     int // Apples eaten this session
	onBoard    int // Apples currently on the board
	moveEvery  int
	moveTicker int
	difficulty *config.DifficultyManager
	pace       config.SnakePace

	board   *grid.Grid
	ctrl    *player.Controller
	snake   *player.Player
	nextDir player.Direction

	screenW int
	screenH int
	offsetX int
	offsetY int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
	reason   string
}

// New creates a classic Snake game on a sparse grid.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewSeeded creates a Snake game on a grid pre-filled with Empty markers.
func NewSeeded() *Game {
	return &Game{variant: VariantSeeded}
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.SnakeConfig, l *log.Logger) *Game {
	v := VariantClassic
	if cfg.Board.Seeded {
		v = VariantSeeded
	}
	return &Game{variant: v, cfg: &cfg, logger: l}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantSeeded), func() registry.Game {
		return NewSeeded()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantSeeded {
		return "Snake (Seeded Grid)"
	}
	return "Snake"
}

// resolveConfig returns the explicit config or loads one from the package settings.
func (g *Game) resolveConfig() config.SnakeConfig {
	if g.cfg != nil {
		return *g.cfg
	}

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	if g.variant == VariantSeeded {
		cfg.Board.Seeded = true
	}
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.logger == nil {
		g.logger = logger
	}
	cfg := g.resolveConfig()

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.played = 0
	g.apples = 0
	g.onBoard = 0
	g.moveTicker = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.reason = ""
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.pace = cfg.Pace
	g.moveEvery = g.difficulty.MoveEvery(g.pace, 0, 0)

	fieldW, fieldH := cfg.Board.Width, cfg.Board.Height
	if cfg.Board.FitScreen {
		fieldW = rc.ScreenW - 2
		fieldH = rc.ScreenH - hudHeight - 2
	}
	fieldW, fieldH = min(fieldW, config.MaxFieldSize), min(fieldH, config.MaxFieldSize)

	// Check if screen is too small
	if fieldW < 2 || fieldH < 2 || rc.ScreenW < fieldW+2 || rc.ScreenH < fieldH+2+hudHeight {
		g.tooSmall = true
		g.board = nil
		g.snake = nil
		return
	}

	g.offsetX = (rc.ScreenW - (fieldW + 2)) / 2
	g.offsetY = hudHeight

	g.board = grid.NewWalled(uint8(fieldW), uint8(fieldH), cfg.Board.Seeded)
	g.placeLayout(cfg.Layout)
	g.ctrl = player.NewController(g.board, g.logger)

	snake, err := g.ctrl.AddPlayer(min(cfg.Player.InitialLength, config.MaxInitialLength(fieldH)))
	if err != nil {
		g.logger.Error("cannot seed player", "err", err)
		g.snake = nil
		g.endGame("setup failed")
		return
	}
	g.snake = snake
	g.nextDir = g.startDirection(cfg.Player.StartDirection)

	for range cfg.Apples.Count {
		if !g.spawnApple() {
			break
		}
	}
	g.logger.Info("session started", "game", g.ID(), "field", fmt.Sprintf("%dx%d", fieldW, fieldH),
		"seeded", cfg.Board.Seeded, "apples", g.onBoard)
}

// startDirection returns the first move of a fresh snake.
// Unknown names and a reversal into the body fall back to the spawn facing.
func (g *Game) startDirection(name string) player.Direction {
	facing := g.snake.Facing()
	if name == "" {
		return facing
	}
	dir, err := player.ParseDirection(name)
	if err != nil || dir == facing.Opposite() {
		g.logger.Warn("ignoring start direction", "direction", name, "err", err)
		return facing
	}
	return dir
}

// placeLayout adds the configured inner walls. Row 0, column 0 is the
// top-left field cell, just inside the outer wall.
func (g *Game) placeLayout(layout []string) {
	for y, row := range layout {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			p := grid.Pos(uint8(x+2), uint8(y+2))
			if ev := g.board.AllocateAt(p, grid.Wall); ev.Kind == grid.OutOfBounds {
				g.logger.Warn("layout wall off the board", "pos", p)
			}
		}
	}
}

// spawnApple places one apple on a random free cell.
// Returns false when the board is full.
func (g *Game) spawnApple() bool {
	p, ok := g.board.RandomFree(g.rng)
	if !ok {
		return false
	}
	g.board.AllocateAt(p, grid.Apple)
	g.onBoard++
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.played++
	if g.difficulty.ByTime() {
		g.moveEvery = g.difficulty.MoveEvery(g.pace, g.apples, g.played)
	}

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = player.Up
	case input.Has(core.ActionDown):
		newDir = player.Down
	case input.Has(core.ActionLeft):
		newDir = player.Left
	case input.Has(core.ActionRight):
		newDir = player.Right
	}

	// Prevent instant reversal into the neck
	if g.snake.Len() > 1 && newDir == g.snake.Facing().Opposite() {
		return
	}
	g.nextDir = newDir
}

// moveSnake moves the snake one cell and applies the outcome.
func (g *Game) moveSnake() {
	move, err := g.ctrl.MovePlayer(g.snake, g.nextDir)
	switch {
	case errors.Is(err, rules.ErrRuleMissing):
		g.logger.Error("no collision rule", "event", move.Event, "err", err)
		g.endGame("unhandled collision")
		return
	case err != nil:
		// Stepping past the coordinate range reports OutOfBounds.
		g.endGame(crashReason(move.Event))
		return
	}

	switch move.Outcome {
	case rules.OutcomeAllocated:
	case rules.OutcomeYum:
		g.ctrl.Grow(g.snake, move.Vacated)
		g.apples++
		g.onBoard--
		g.moveEvery = g.difficulty.MoveEvery(g.pace, g.apples, g.played)
		g.spawnApple()
		if g.onBoard == 0 {
			g.won = true
			g.reason = "board filled"
			g.logger.Info("board filled", "length", g.snake.Len())
		}
	case rules.OutcomeCrash:
		g.endGame(crashReason(move.Event))
	}
}

func (g *Game) endGame(reason string) {
	g.gameOver = true
	g.reason = reason
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	g.logger.Info("session over", "reason", reason, "length", length, "apples", g.apples, "tick", g.tick)
	g.logger.Debug("final state", "state", g.DebugState())
}

func crashReason(ev grid.AllocationEvent) string {
	switch {
	case ev == grid.CollisionWith(grid.Wall):
		return "hit a wall"
	case ev == grid.CollisionWith(grid.Snake):
		return "bit itself"
	case ev.Kind == grid.OutOfBounds:
		return "left the board"
	default:
		return "crashed: " + ev.String()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Board filled!", fmt.Sprintf("Length: %d", g.snake.Len()))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over: "+g.reason, "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	dst.DrawText(0, 0, fmt.Sprintf(" %s | Length: %d  Apples: %d  Pace: %d", g.Title(), length, g.apples, g.moveEvery))
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws every occupied cell.
func (g *Game) renderBoard(dst *core.Screen) {
	var head grid.Position
	if g.snake != nil {
		head = g.snake.Head()
	}

	for _, p := range g.board.Occupied() {
		object, _ := g.board.ObjectAt(p)
		// Grid positions are 1-indexed.
		x := g.offsetX + int(p.X) - 1
		y := g.offsetY + int(p.Y) - 1

		switch object {
		case grid.Wall:
			dst.SetColored(x, y, '#', core.ColorGray)
		case grid.Apple:
			dst.SetColored(x, y, '*', core.ColorBrightRed)
		case grid.Snake:
			if p == head {
				dst.SetColored(x, y, '@', core.ColorBrightGreen)
			} else {
				dst.SetColored(x, y, 'o', core.ColorGreen)
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	return core.GameState{
		Length:   length,
		Apples:   g.apples,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
		Reason:   g.reason,
	}
}

// Board returns the grid the game is played on, or nil if the screen is too small.
func (g *Game) Board() *grid.Grid {
	return g.board
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Apples: %d, Pace: %d\n", g.tick, g.apples, g.moveEvery)
	if g.snake != nil {
		fmt.Fprintf(&b, "Snake len: %d, Facing: %s, Head: %s\n", g.snake.Len(), g.snake.Facing(), g.snake.Head())
	}
	fmt.Fprintf(&b, "GameOver: %v, Won: %v, Paused: %v, Reason: %q\n", g.gameOver, g.won, g.paused, g.reason)
	return b.String()
}

package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusDead           // Snake collided with itself
	StatusQuit           // Player asked to leave
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	hudHeight = 1
	minBoardW = 2
	minBoardH = 2

	// GlyphFood marks the food cell.
	GlyphFood = '@'
)

// InputSource delivers input events without blocking.
// Poll returns ok=false when nothing is pending.
type InputSource interface {
	Poll() (ev core.Event, ok bool, err error)
}

// Options tune how the game is drawn.
type Options struct {
	HeadGlyph rune
	BodyGlyph rune
	FoodGlyph rune
	ShowHUD   bool
}

// DefaultOptions returns the stock glyphs with the HUD enabled.
func DefaultOptions() Options {
	return Options{
		HeadGlyph: GlyphHead,
		BodyGlyph: GlyphBody,
		FoodGlyph: GlyphFood,
		ShowHUD:   true,
	}
}

func (o Options) withDefaults() Options {
	if o.HeadGlyph == 0 {
		o.HeadGlyph = GlyphHead
	}
	if o.BodyGlyph == 0 {
		o.BodyGlyph = GlyphBody
	}
	if o.FoodGlyph == 0 {
		o.FoodGlyph = GlyphFood
	}
	return o
}

// Game runs the snake simulation one tick at a time. It owns the snake, the
// food, the score and the board size; the platform layer only feeds it input
// and a screen to draw on.
type Game struct {
	rng    *rand.Rand
	logger *log.Logger
	opts   Options

	tick   uint64
	score  int
	status Status
	paused bool

	snake *Snake
	food  core.Position

	// Board is the screen minus the HUD rows.
	board    core.Bounds
	tooSmall bool
}

// New creates a game sized to the screen in cfg and places the snake and
// the first food.
func New(cfg core.RuntimeConfig, opts Options, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts = opts.withDefaults()
	g := &Game{
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
		opts:   opts,
	}
	g.resize(cfg.ScreenW, cfg.ScreenH)

	side := min(g.board.W, g.board.H)
	g.snake = NewSnake(core.Pos(side/4, side/2))
	g.snake.SetGlyphs(opts.HeadGlyph, opts.BodyGlyph)
	g.spawnFood()

	g.logger.Info("game started", "board", fmt.Sprintf("%dx%d", g.board.W, g.board.H), "seed", cfg.Seed)
	return g
}

// resize tracks new screen dimensions.
func (g *Game) resize(w, h int) {
	g.board = core.Bounds{W: w, H: h - g.hudRows()}
	g.tooSmall = g.board.W < minBoardW || g.board.H < minBoardH
}

func (g *Game) hudRows() int {
	if g.opts.ShowHUD {
		return hudHeight
	}
	return 0
}

// spawnFood places food uniformly at random on the board. The snake's cells
// are not excluded.
func (g *Game) spawnFood() {
	if g.board.Empty() {
		g.food = core.Pos(0, 0)
		return
	}
	g.food = core.Pos(g.rng.Intn(g.board.W), g.rng.Intn(g.board.H))
}

// Tick runs one simulation step: read input, move the snake, score food.
// Only input errors are returned; a collision just ends the game.
func (g *Game) Tick(in InputSource) error {
	if g.Done() {
		return nil
	}
	g.tick++

	if err := g.processInput(in); err != nil {
		return err
	}

	if g.Done() || g.paused || g.tooSmall {
		return nil
	}

	ate, err := g.snake.Update(g.food, g.board)
	switch {
	case errors.Is(err, ErrCollision):
		g.status = StatusDead
		g.logger.Info("collision", "tick", g.tick, "score", g.score, "length", g.snake.Len())
	case err != nil:
		return fmt.Errorf("snake: update failed: %w", err)
	case ate:
		g.score++
		g.spawnFood()
		g.logger.Debug("food eaten", "score", g.score, "next", g.food)
	}
	return nil
}

// processInput drains resize and ignored events and handles at most one key
// press, leaving later keys queued for the following ticks.
func (g *Game) processInput(in InputSource) error {
	for {
		ev, ok, err := in.Poll()
		if err != nil {
			return fmt.Errorf("snake: reading input: %w", err)
		}
		if !ok {
			return nil
		}

		switch ev.Kind {
		case core.EventResize:
			g.resize(ev.Width, ev.Height)
			if !g.board.Contains(g.food) {
				g.spawnFood()
			}
			g.logger.Debug("resized", "width", ev.Width, "height", ev.Height, "tooSmall", g.tooSmall)
		case core.EventKey:
			g.handleKey(ev.Key)
			return nil
		}
	}
}

func (g *Game) handleKey(k core.Key) {
	switch k {
	case core.KeyQuit:
		g.status = StatusQuit
		g.logger.Info("quit requested", "score", g.score)
	case core.KeyPause:
		g.paused = !g.paused
	default:
		if dir, ok := DirectionForKey(k); ok && !g.paused {
			g.snake.ChangeDirection(dir, g.board)
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.opts.ShowHUD {
		g.renderHUD(dst)
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := boardSurface{dst: dst, offY: g.hudRows(), bounds: g.board}
	board.SetCell(g.food.X, g.food.Y, g.opts.FoodGlyph, core.ColorRed)
	g.snake.Draw(board)

	switch {
	case g.status == StatusDead:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf("Score: %d  Length: %d", g.score, g.snake.Len()), core.ColorYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorDefault)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}

// boardSurface shifts board coordinates below the HUD and clips to the board.
type boardSurface struct {
	dst    *core.Screen
	offY   int
	bounds core.Bounds
}

func (b boardSurface) SetCell(x, y int, r rune, c core.Color) {
	if !b.bounds.Contains(core.Pos(x, y)) {
		return
	}
	b.dst.SetCell(x, y+b.offY, r, c)
}

// Done reports whether the game has ended by collision or quit.
func (g *Game) Done() bool {
	return g.status != StatusPlaying
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the amount of food eaten.
func (g *Game) Score() int {
	return g.score
}

// Board returns the current playable area.
func (g *Game) Board() core.Bounds {
	return g.board
}

// FinalMessage is printed after the terminal has been restored.
func (g *Game) FinalMessage() string {
	if g.status == StatusDead {
		return fmt.Sprintf("Game over! Final score: %d", g.score)
	}
	return fmt.Sprintf("FIN. SCORE: %d", g.score)
}

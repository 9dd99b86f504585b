// Package gameplay provides the game engine: the turn protocol, movement, item
// handling, combat and room descriptions.
package gameplay

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/generator"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

// Engine runs one game. It processes one command at a time and is not safe for concurrent use.
type Engine struct {
	game   *state.Game
	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
	gen    generator.MazeGenerator
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the random source used for combat
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock sets the clock used for monster encounters
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets a logger that traces every command
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithGenerator sets the maze generator used by NewWithRooms and NewWithSize
func WithGenerator(gen generator.MazeGenerator) Option {
	return func(e *Engine) {
		e.gen = gen
	}
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		logger: log.New(io.Discard, "", 0),
		gen:    generator.DefaultGenerator,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New creates an engine playing on an existing maze
func New(maze *world.Maze, opts ...Option) *Engine {
	e := newEngine(opts)
	e.game = state.NewGame(maze)
	return e
}

// NewWithRooms generates a maze with roomCount rooms and starts a game on it
func NewWithRooms(roomCount int, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	maze, err := e.gen.Generate(roomCount)
	if err != nil {
		return nil, err
	}
	e.game = state.NewGame(maze)
	return e, nil
}

// NewWithSize generates a size x size maze and starts a game on it
func NewWithSize(size int, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	maze, err := generator.GenerateSized(e.gen, size)
	if err != nil {
		return nil, err
	}
	e.game = state.NewGame(maze)
	return e, nil
}

// Game exposes the game state for renderers and tests
func (e *Engine) Game() *state.Game {
	return e.game
}

// IsGameOver reports whether the game has been won or lost
func (e *Engine) IsGameOver() bool {
	return e.game.Over
}

// Start returns the description of the starting room
func (e *Engine) Start() renderer.Output {
	return e.record(e.Describe())
}

// record adds the output to the message log and hands it back
func (e *Engine) record(out renderer.Output) renderer.Output {
	e.game.AddMessage(out.Text)
	return out
}

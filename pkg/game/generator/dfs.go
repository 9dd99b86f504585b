package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

// Placement tuning
const (
	DarkChance = 0.2
	MinGold    = 5
	MaxGold    = 30
)

// DFSGenerator carves a spanning tree with a randomized depth-first walk
// and then places the game content.
type DFSGenerator struct {
	rng *rand.Rand
}

// NewDFSGenerator creates a generator drawing from rng
func NewDFSGenerator(rng *rand.Rand) *DFSGenerator {
	return &DFSGenerator{rng: rng}
}

// Name returns the name of this generator
func (g *DFSGenerator) Name() string {
	return "Randomized DFS"
}

// Generate creates a maze with exactly roomCount active rooms
func (g *DFSGenerator) Generate(roomCount int) (*world.Maze, error) {
	if roomCount < 1 {
		return nil, fmt.Errorf("generate %d rooms: %w", roomCount, ErrInvalidRoomCount)
	}

	width, height := Dimensions(roomCount)
	maze := world.NewMaze(width, height)

	// The first roomCount cells in row-major order are active
	for i := 0; i < roomCount; i++ {
		r, _ := maze.Room(i%width, i/width)
		r.Active = true
		maze.UpdateRoom(r)
	}

	g.carve(maze)

	if err := g.populate(maze, roomCount); err != nil {
		return nil, err
	}

	if err := maze.Validate(); err != nil {
		return nil, fmt.Errorf("generated invalid maze: %w", err)
	}

	return maze, nil
}

// carve walks the active rooms from the start, opening a door to each newly visited neighbour
func (g *DFSGenerator) carve(maze *world.Maze) {
	visited := mapset.New[world.Position]()
	pending := stack.New[world.Position]()

	visited.Put(world.Start)
	pending.Push(world.Start)

	for pending.Size() > 0 {
		current := pending.Peek()

		next, dir, ok := g.unvisitedNeighbor(maze, current, visited)
		if !ok {
			pending.Pop()
			continue
		}

		maze.Connect(current.X, current.Y, dir)
		visited.Put(next)
		pending.Push(next)
	}
}

// unvisitedNeighbor picks a random active, unvisited neighbour of p
func (g *DFSGenerator) unvisitedNeighbor(maze *world.Maze, p world.Position, visited mapset.Set[world.Position]) (world.Position, world.Direction, bool) {
	dirs := world.AllDirections()
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, dir := range dirs {
		n, ok := maze.Neighbor(p.X, p.Y, dir)
		if !ok || visited.Has(n) {
			continue
		}
		if r, _ := maze.RoomAt(n); !r.Active {
			continue
		}
		return n, dir, true
	}
	return world.Position{}, 0, false
}

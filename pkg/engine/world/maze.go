package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Maze is the game map: a fixed-size grid of rooms stored as rows.
// Rooms are returned by value; changes only take effect through UpdateRoom.
type Maze struct {
	rooms  [][]Room
	width  int
	height int
}

// NewMaze creates a maze of inactive rooms with the given dimensions
func NewMaze(width, height int) *Maze {
	if width <= 0 || height <= 0 {
		panic("Maze dimensions must be positive")
	}

	m := &Maze{width: width, height: height}
	m.rooms = make([][]Room, height)
	for y := 0; y < height; y++ {
		m.rooms[y] = make([]Room, width)
		for x := 0; x < width; x++ {
			m.rooms[y][x] = NewRoom(x, y, false)
		}
	}
	return m
}

// Width returns the number of columns
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *Maze) Height() int {
	return m.height
}

// IsValidPosition checks if an x/y position is within maze bounds
func (m *Maze) IsValidPosition(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Room returns a copy of the room at x/y, or false if out of bounds
func (m *Maze) Room(x, y int) (Room, bool) {
	if !m.IsValidPosition(x, y) {
		return Room{}, false
	}
	return m.rooms[y][x].Clone(), true
}

// RoomAt is Room keyed by Position
func (m *Maze) RoomAt(p Position) (Room, bool) {
	return m.Room(p.X, p.Y)
}

// UpdateRoom replaces the room stored at the room's own coordinate.
// Returns false if that coordinate is outside the maze.
func (m *Maze) UpdateRoom(r Room) bool {
	if !m.IsValidPosition(r.X, r.Y) {
		return false
	}
	m.rooms[r.Y][r.X] = r.Clone()
	return true
}

// Neighbor returns the position next to x/y in the given direction, or false if out of bounds
func (m *Maze) Neighbor(x, y int, dir Direction) (Position, bool) {
	if !dir.IsValid() {
		return Position{}, false
	}
	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	if !m.IsValidPosition(nx, ny) {
		return Position{}, false
	}
	return Position{X: nx, Y: ny}, true
}

// Connect opens a door from x/y towards dir and the matching door on the other side
func (m *Maze) Connect(x, y int, dir Direction) bool {
	n, ok := m.Neighbor(x, y, dir)
	if !ok || !m.IsValidPosition(x, y) {
		return false
	}
	m.rooms[y][x].Doors = m.rooms[y][x].Doors.With(dir)
	m.rooms[n.Y][n.X].Doors = m.rooms[n.Y][n.X].Doors.With(dir.Opposite())
	return true
}

// ForEachRoom iterates over all rooms in row-major order, passing copies
func (m *Maze) ForEachRoom(fn func(r Room)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(m.rooms[y][x].Clone())
		}
	}
}

// ActiveRooms returns the positions of all active rooms in row-major order
func (m *Maze) ActiveRooms() []Position {
	var positions []Position
	m.ForEachRoom(func(r Room) {
		if r.Active {
			positions = append(positions, r.Position())
		}
	})
	return positions
}

// ActiveCount returns the number of active rooms
func (m *Maze) ActiveCount() int {
	return len(m.ActiveRooms())
}

// Reachable returns every position reachable from start through open doors
func (m *Maze) Reachable(start Position) mapset.Set[Position] {
	visited := mapset.New[Position]()
	if !m.IsValidPosition(start.X, start.Y) {
		return visited
	}

	queue := []Position{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room := m.rooms[current.Y][current.X]
		for _, dir := range room.Doors.Directions() {
			n, ok := m.Neighbor(current.X, current.Y, dir)
			if !ok || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return visited
}

// Validate checks door symmetry and that doors only join active rooms inside the maze
func (m *Maze) Validate() error {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			room := m.rooms[y][x]
			if !room.Active && room.Doors != 0 {
				return fmt.Errorf("inactive room [%d,%d] has doors", x, y)
			}
			for _, dir := range room.Doors.Directions() {
				n, ok := m.Neighbor(x, y, dir)
				if !ok {
					return fmt.Errorf("room [%d,%d] has a door %s leading out of the maze", x, y, dir)
				}
				other := m.rooms[n.Y][n.X]
				if !other.Active {
					return fmt.Errorf("room [%d,%d] has a door %s into an inactive room", x, y, dir)
				}
				if !other.Doors.Has(dir.Opposite()) {
					return fmt.Errorf("door %s of room [%d,%d] has no matching door back", dir, x, y)
				}
			}
		}
	}
	return nil
}

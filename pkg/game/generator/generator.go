// Package generator builds playable mazes: a connected room graph plus the
// chest, key, monsters and supplies placed into it.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

var (
	// ErrInvalidRoomCount is returned when fewer than one room is requested
	ErrInvalidRoomCount = errors.New("room count must be at least 1")

	// ErrNoEligibleRoom is returned when a mandatory item has nowhere to go
	ErrNoEligibleRoom = errors.New("no eligible room")
)

// MazeGenerator is an interface for maze generation algorithms
type MazeGenerator interface {
	Generate(roomCount int) (*world.Maze, error)
	Name() string
}

// DefaultGenerator is the default maze generator
var DefaultGenerator MazeGenerator = NewDFSGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

// GenerateSized builds a size x size maze with the given generator
func GenerateSized(gen MazeGenerator, size int) (*world.Maze, error) {
	if size < 1 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidRoomCount)
	}
	return gen.Generate(size * size)
}

// Dimensions returns the smallest near-square grid holding roomCount rooms
func Dimensions(roomCount int) (width, height int) {
	width = 1
	for width*width < roomCount {
		width++
	}
	height = (roomCount + width - 1) / width
	return width, height
}

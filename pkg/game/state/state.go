package state

import (
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

// StepsPerRoom is the starting step budget granted per active room
const StepsPerRoom = 2

// Game represents the game state for Crystals & Dragons
type Game struct {
	Maze   *world.Maze
	Player *Player

	// Over is set once the game is won or lost and never cleared
	Over bool

	// PreviousPosition is where the player stood before the last successful move
	PreviousPosition *world.Position

	// EncounterStart is set when the player walks in on a monster
	EncounterStart *time.Time

	Messages []string
}

// NewGame creates a new game on maze with the player at the start room
func NewGame(maze *world.Maze) *Game {
	return &Game{
		Maze:     maze,
		Player:   NewPlayer(world.Start.X, world.Start.Y, StepsPerRoom*maze.ActiveCount()),
		Messages: make([]string, 0),
	}
}

// CurrentRoom returns a copy of the room the player stands in
func (g *Game) CurrentRoom() (world.Room, bool) {
	return g.Maze.RoomAt(g.Player.Position())
}

// End marks the game as over and drops any pending encounter
func (g *Game) End() {
	g.Over = true
	g.EncounterStart = nil
}

// StartEncounter starts the monster encounter clock at now
func (g *Game) StartEncounter(now time.Time) {
	g.EncounterStart = &now
}

// ClearEncounter stops the monster encounter clock
func (g *Game) ClearEncounter() {
	g.EncounterStart = nil
}

// Rollback returns the player to the previous position, if there is one
func (g *Game) Rollback() {
	if g.PreviousPosition != nil {
		g.Player.MoveTo(*g.PreviousPosition)
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

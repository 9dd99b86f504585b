package gameplay

import (
	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
)

// move walks the player through the door towards dir
func (e *Engine) move(dir world.Direction) renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok || !room.Doors.Has(dir) {
		return renderer.Warning(msgNoDoor)
	}

	dest, ok := e.game.Maze.Neighbor(room.X, room.Y, dir)
	if !ok {
		return renderer.Warning(msgNoDoor)
	}

	prev := e.game.Player.Position()
	e.game.PreviousPosition = &prev
	e.game.Player.MoveTo(dest)

	if next, _ := e.game.Maze.RoomAt(dest); next.HasMonster() {
		e.game.StartEncounter(e.now())
	} else {
		e.game.ClearEncounter()
	}

	return e.Describe()
}

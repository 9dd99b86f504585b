package gameplay

import (
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
)

const (
	// EncounterTimeout is how long a monster waits before it attacks.
	// It is only checked when the next command arrives.
	EncounterTimeout = 5 * time.Second

	// injuryPercent is the share of remaining steps lost to a wound
	injuryPercent = 10
)

// Fight outcomes, drawn with equal probability
const (
	outcomeThrownBack = iota
	outcomeKilledHurt
	outcomeKilledClean
	outcomeCount
)

// checkEncounter applies the monster's attack if the player lingered too long in its room
func (e *Engine) checkEncounter() (renderer.Output, bool) {
	start := e.game.EncounterStart
	if start == nil {
		return renderer.Output{}, false
	}

	room, ok := e.game.CurrentRoom()
	if !ok || !room.HasMonster() {
		return renderer.Output{}, false
	}

	if e.now().Sub(*start) <= EncounterTimeout {
		return renderer.Output{}, false
	}

	e.game.Player.ReduceSteps(injuryPercent)
	e.game.Rollback()
	e.game.ClearEncounter()

	return renderer.Danger(msgAttacked), true
}

// fight attacks the monster in the current room with the sword
func (e *Engine) fight() renderer.Output {
	if !e.game.Player.Has(world.Sword) {
		return renderer.Warning(msgNoWeapon)
	}

	room, ok := e.game.CurrentRoom()
	if !ok || !room.HasMonster() {
		return renderer.Warning(msgNothingFight)
	}

	switch e.rng.Intn(outcomeCount) {
	case outcomeThrownBack:
		e.game.Player.ReduceSteps(injuryPercent)
		e.game.Rollback()
		e.game.ClearEncounter()
		return renderer.Danger(msgThrownBack)

	case outcomeKilledHurt:
		e.game.Player.ReduceSteps(injuryPercent)
		room.Monster = nil
		e.game.Maze.UpdateRoom(room)
		e.game.ClearEncounter()
		return renderer.Warning(msgKilledHurt)

	default:
		room.Monster = nil
		e.game.Maze.UpdateRoom(room)
		e.game.ClearEncounter()
		return renderer.Success(msgKilledClean)
	}
}

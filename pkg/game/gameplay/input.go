package gameplay

import (
	engineinput "github.com/Slava-Fly/Crystals-Dragons/pkg/engine/input"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
)

// Player-facing messages
const (
	msgGameOver     = "Game over."
	msgStarved      = "You died of hunger. Game over."
	msgTooDark      = "It is too dark to do that."
	msgUnknown      = "Unknown command"
	msgGetWhat      = "Get what?"
	msgDropWhat     = "Drop what?"
	msgEatWhat      = "Eat what?"
	msgNoDoor       = "No door there."
	msgCannotPick   = "Cannot pick that."
	msgNoGold       = "No gold here."
	msgNotCarried   = "You don't have that."
	msgCannotEat    = "You can't eat that."
	msgAteFood      = "You ate some food. Steps increased!"
	msgNeedKey      = "You need a key."
	msgWin          = "You opened the chest and found the Holy Grail! You win!"
	msgNoWeapon     = "You have no weapon."
	msgNothingFight = "There is nothing to fight here."
	msgAttacked     = "The monster attacked you!"
	msgThrownBack   = "The monster wounded you and threw you back!"
	msgKilledHurt   = "You killed the monster, but got hurt."
	msgKilledClean  = "You killed the monster without a scratch!"
	msgCantSee      = "Can't see anything in this dark place!"
)

// Handle processes one raw command and returns the response for the player
func (e *Engine) Handle(command string) renderer.Output {
	cmd := engineinput.Parse(command)
	out := e.handle(cmd)
	e.logger.Printf("command=%q action=%q severity=%s steps=%d over=%v",
		command, engineinput.ActionName(cmd.Action), out.Severity, e.game.Player.StepsLeft, e.game.Over)
	return e.record(out)
}

func (e *Engine) handle(cmd engineinput.Command) renderer.Output {
	// A monster left alone too long strikes before anything else happens
	if out, struck := e.checkEncounter(); struck {
		return out
	}

	if e.game.Over {
		return renderer.Danger(msgGameOver)
	}

	e.game.Player.StepsLeft--
	if e.game.Player.StepsLeft <= 0 {
		e.game.End()
		return renderer.Danger(msgStarved)
	}

	// Only a bare direction works in the dark
	if e.inDarkness() && !(cmd.Action.IsMovement() && cmd.Arg == "") {
		return renderer.Warning(msgTooDark)
	}

	return e.dispatch(cmd)
}

// dispatch runs the handler for a parsed command
func (e *Engine) dispatch(cmd engineinput.Command) renderer.Output {
	if cmd.Action.IsMovement() {
		if dir, ok := world.DirectionFromLabel(cmd.Verb); ok {
			return e.move(dir)
		}
	}

	switch cmd.Action {
	case engineinput.ActionGet:
		if cmd.Arg == "" {
			return renderer.Warning(msgGetWhat)
		}
		if cmd.Arg == "gold" {
			return e.pickupGold()
		}
		return e.pickup(cmd.Arg)

	case engineinput.ActionDrop:
		if cmd.Arg == "" {
			return renderer.Warning(msgDropWhat)
		}
		return e.drop(cmd.Arg)

	case engineinput.ActionEat:
		if cmd.Arg == "" {
			return renderer.Warning(msgEatWhat)
		}
		return e.eat(cmd.Arg)

	case engineinput.ActionOpen:
		return e.openChest()

	case engineinput.ActionFight:
		return e.fight()
	}

	return renderer.Warning(msgUnknown)
}

// inDarkness reports whether the player stands in an unlit dark room without a torch
func (e *Engine) inDarkness() bool {
	room, ok := e.game.CurrentRoom()
	if !ok {
		return false
	}
	return room.Lighting.IsPitchBlack() && !e.game.Player.Has(world.Torchlight)
}

package gameplay

import (
	"fmt"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
)

// foodSteps is how many steps one meal restores
const foodSteps = 5

// pickup moves one item named name from the room into the inventory. Chests stay put.
func (e *Engine) pickup(name string) renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok {
		return renderer.Warning(msgCannotPick)
	}

	t, known := world.ParseItemType(name)
	if !known || t == world.Chest {
		return renderer.Warning(msgCannotPick)
	}
	i := world.IndexOf(room.Items, t)
	if i < 0 {
		return renderer.Warning(msgCannotPick)
	}

	e.game.Player.Give(room.RemoveItemAt(i))
	e.game.Maze.UpdateRoom(room)

	return renderer.Success(fmt.Sprintf("Picked up %s.", name))
}

// pickupGold moves the room's whole gold pile into the player's purse
func (e *Engine) pickupGold() renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok || room.Gold == nil {
		return renderer.Warning(msgNoGold)
	}

	amount := room.Gold.Amount
	e.game.Player.Coins += amount
	room.Gold = nil
	e.game.Maze.UpdateRoom(room)

	return renderer.Success(fmt.Sprintf("You picked up %d gold coins.", amount))
}

// drop leaves one carried item in the room. A torch dropped in a dark room lights it for good.
func (e *Engine) drop(name string) renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok {
		return renderer.Warning(msgNotCarried)
	}

	t, known := world.ParseItemType(name)
	if !known {
		return renderer.Warning(msgNotCarried)
	}
	item, ok := e.game.Player.Take(t)
	if !ok {
		return renderer.Warning(msgNotCarried)
	}

	room.AddItem(item)
	if item.Type == world.Torchlight && room.Lighting.IsDark() {
		room.Lighting = world.Dark(true)
	}
	e.game.Maze.UpdateRoom(room)

	return renderer.Normal(fmt.Sprintf("Dropped %s.", name))
}

// eat consumes one carried food item
func (e *Engine) eat(name string) renderer.Output {
	if t, known := world.ParseItemType(name); !known || t != world.Food {
		return renderer.Warning(msgCannotEat)
	}
	if _, ok := e.game.Player.Take(world.Food); !ok {
		return renderer.Warning(msgCannotEat)
	}

	e.game.Player.StepsLeft += foodSteps

	return renderer.Success(msgAteFood)
}

// openChest wins the game when the player holds a key and stands by the chest
func (e *Engine) openChest() renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok || !e.game.Player.Has(world.Key) || !room.HasItem(world.Chest) {
		return renderer.Warning(msgNeedKey)
	}

	e.game.Player.Give(world.NewItem(world.Grail))
	e.game.End()

	return renderer.Success(msgWin)
}

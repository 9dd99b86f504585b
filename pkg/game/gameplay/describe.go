package gameplay

import (
	"fmt"
	"strings"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
)

// Describe renders the player's current room. It does not change any state.
func (e *Engine) Describe() renderer.Output {
	room, ok := e.game.CurrentRoom()
	if !ok {
		return renderer.Normal("")
	}

	if room.Lighting.IsPitchBlack() && !e.game.Player.Has(world.Torchlight) {
		return renderer.Info(msgCantSee)
	}

	labels := make([]string, 0, room.Doors.Count())
	for _, dir := range room.Doors.Directions() {
		labels = append(labels, dir.Label())
	}

	contents := world.Names(room.Items)
	if room.Gold != nil {
		contents = append(contents, fmt.Sprintf("gold (%d coins)", room.Gold.Amount))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are in the room [%d,%d].\n", room.X, room.Y)
	fmt.Fprintf(&b, "There are %d doors: %s\n", len(labels), strings.Join(labels, ", "))
	fmt.Fprintf(&b, "Items in the room: %s\n", strings.Join(contents, ", "))
	fmt.Fprintf(&b, "Steps left: %d", e.game.Player.StepsLeft)

	if room.HasMonster() {
		fmt.Fprintf(&b, "\nThere is an evil %s in the room!", room.Monster.Name)
		return renderer.Danger(b.String())
	}

	return renderer.Normal(b.String())
}

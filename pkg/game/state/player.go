package state

import (
	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

// Player is the adventurer: position, inventory, remaining steps and coins
type Player struct {
	X int
	Y int

	Inventory []world.Item

	// StepsLeft only dips to zero or below right before starvation is declared
	StepsLeft int
	Coins     int
}

// NewPlayer creates a player at x/y with the given step budget
func NewPlayer(x, y, steps int) *Player {
	return &Player{X: x, Y: y, StepsLeft: steps}
}

// Position returns the player's coordinate
func (p *Player) Position() world.Position {
	return world.Position{X: p.X, Y: p.Y}
}

// MoveTo puts the player at pos
func (p *Player) MoveTo(pos world.Position) {
	p.X, p.Y = pos.X, pos.Y
}

// Has checks if the player carries an item of type t
func (p *Player) Has(t world.ItemType) bool {
	return world.ContainsType(p.Inventory, t)
}

// Give adds an item to the inventory
func (p *Player) Give(item world.Item) {
	p.Inventory = append(p.Inventory, item)
}

// Take removes and returns the first carried item of type t
func (p *Player) Take(t world.ItemType) (world.Item, bool) {
	i := world.IndexOf(p.Inventory, t)
	if i < 0 {
		return world.Item{}, false
	}
	item := p.Inventory[i]
	p.Inventory = append(p.Inventory[:i:i], p.Inventory[i+1:]...)
	return item, true
}

// ReduceSteps cuts the remaining steps by percent, rounding down
func (p *Player) ReduceSteps(percent int) {
	p.StepsLeft = p.StepsLeft * (100 - percent) / 100
}

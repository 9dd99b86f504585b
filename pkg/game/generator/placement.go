package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

// populate places the chest, key, darkness, monsters, torch, food, sword and gold.
// Start, chest and key rooms are critical: never dark, never guarded.
func (g *DFSGenerator) populate(maze *world.Maze, roomCount int) error {
	active := maze.ActiveRooms()

	critical := mapset.New[world.Position]()
	critical.Put(world.Start)

	chest, ok := g.pick(active, func(p world.Position) bool { return !critical.Has(p) })
	if !ok {
		return fmt.Errorf("place chest: %w", ErrNoEligibleRoom)
	}
	critical.Put(chest)

	key, ok := g.pick(active, func(p world.Position) bool { return !critical.Has(p) })
	if !ok {
		return fmt.Errorf("place key: %w", ErrNoEligibleRoom)
	}
	critical.Put(key)

	addItem(maze, chest, world.Chest)
	addItem(maze, key, world.Key)

	g.placeDarkness(maze, active, critical)
	g.placeMonsters(maze, active, critical, roomCount/2)
	g.placeTorch(maze, active, critical)

	for i := 0; i < roomCount/2; i++ {
		addItem(maze, g.anyRoom(active), world.Food)
	}

	if sword, ok := g.pick(active, func(p world.Position) bool { return p != chest }); ok {
		addItem(maze, sword, world.Sword)
	}

	for i := 0; i < roomCount/2; i++ {
		r, _ := maze.RoomAt(g.anyRoom(active))
		r.Gold = &world.Gold{Amount: MinGold + g.rng.Intn(MaxGold-MinGold+1)}
		maze.UpdateRoom(r)
	}

	return nil
}

func (g *DFSGenerator) placeDarkness(maze *world.Maze, active []world.Position, critical mapset.Set[world.Position]) {
	for _, p := range active {
		if critical.Has(p) {
			continue
		}
		if g.rng.Float64() < DarkChance {
			r, _ := maze.RoomAt(p)
			r.Lighting = world.Dark(false)
			maze.UpdateRoom(r)
		}
	}
}

// placeMonsters makes draws independent attempts; a draw landing on a critical
// or already guarded room is skipped, not retried.
func (g *DFSGenerator) placeMonsters(maze *world.Maze, active []world.Position, critical mapset.Set[world.Position], draws int) {
	for i := 0; i < draws; i++ {
		p := g.anyRoom(active)
		r, _ := maze.RoomAt(p)
		if critical.Has(p) || r.HasMonster() {
			continue
		}
		r.Monster = &world.Monster{Name: world.MonsterNames[g.rng.Intn(len(world.MonsterNames))]}
		maze.UpdateRoom(r)
	}
}

// placeTorch drops the torch into a room that is neither critical nor guarded.
// Lit rooms are preferred; a dark one is used only when no lit room qualifies.
func (g *DFSGenerator) placeTorch(maze *world.Maze, active []world.Position, critical mapset.Set[world.Position]) {
	eligible := func(p world.Position) bool {
		if critical.Has(p) {
			return false
		}
		r, _ := maze.RoomAt(p)
		return !r.HasMonster()
	}

	torch, ok := g.pick(active, func(p world.Position) bool {
		r, _ := maze.RoomAt(p)
		return eligible(p) && !r.Lighting.IsDark()
	})
	if !ok {
		torch, ok = g.pick(active, eligible)
	}
	if ok {
		addItem(maze, torch, world.Torchlight)
	}
}

// pick chooses uniformly among the positions accepted by eligible
func (g *DFSGenerator) pick(positions []world.Position, eligible func(world.Position) bool) (world.Position, bool) {
	var candidates []world.Position
	for _, p := range positions {
		if eligible(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return world.Position{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

// anyRoom chooses uniformly among all positions
func (g *DFSGenerator) anyRoom(positions []world.Position) world.Position {
	return positions[g.rng.Intn(len(positions))]
}

func addItem(maze *world.Maze, p world.Position, t world.ItemType) {
	r, _ := maze.RoomAt(p)
	r.AddItem(world.NewItem(t))
	maze.UpdateRoom(r)
}

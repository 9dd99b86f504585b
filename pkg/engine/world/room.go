// Package world provides the maze primitives: directions, items, rooms and the maze grid.
// Rooms are plain values; the maze hands out copies and takes whole rooms back.
package world

// Position is a grid coordinate
type Position struct {
	X int
	Y int
}

// Start is the position every game begins at
var Start = Position{X: 0, Y: 0}

// Gold is a pile of coins lying in a room
type Gold struct {
	Amount int
}

// Monster is a hostile creature guarding a room
type Monster struct {
	Name string
}

// MonsterNames is the fixed set monsters are named from
var MonsterNames = []string{"dragon", "goblin", "orc"}

// DoorSet is the set of open doors of a room.
// It is a value so copying a Room never shares doors with the original.
type DoorSet uint8

// With returns the set with dir added
func (s DoorSet) With(dir Direction) DoorSet {
	if !dir.IsValid() {
		return s
	}
	return s | 1<<uint(dir)
}

// Has reports whether a door is open towards dir
func (s DoorSet) Has(dir Direction) bool {
	return dir.IsValid() && s&(1<<uint(dir)) != 0
}

// Count returns the number of open doors
func (s DoorSet) Count() int {
	n := 0
	for _, dir := range AllDirections() {
		if s.Has(dir) {
			n++
		}
	}
	return n
}

// Directions returns the open doors in AllDirections order
func (s DoorSet) Directions() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if s.Has(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// LightingKind distinguishes normal rooms from dark ones
type LightingKind int

const (
	LightingNormal LightingKind = iota
	LightingDark
)

// Lighting is the lighting state of a room. Lit only matters for dark rooms
// and becomes true once a torch is left there.
type Lighting struct {
	Kind LightingKind
	Lit  bool
}

// Normal is the lighting of an ordinary room
func Normal() Lighting {
	return Lighting{Kind: LightingNormal}
}

// Dark returns dark lighting with the given lit flag
func Dark(lit bool) Lighting {
	return Lighting{Kind: LightingDark, Lit: lit}
}

// IsDark reports whether the room is of the dark kind, lit or not
func (l Lighting) IsDark() bool {
	return l.Kind == LightingDark
}

// IsPitchBlack reports whether the room is dark and nobody has lit it
func (l Lighting) IsPitchBlack() bool {
	return l.Kind == LightingDark && !l.Lit
}

// Room is a single maze cell
type Room struct {
	X int
	Y int

	// Active rooms take part in the game. Inactive ones only pad the grid.
	Active bool

	Doors    DoorSet
	Items    []Item
	Lighting Lighting
	Monster  *Monster
	Gold     *Gold
}

// NewRoom creates an empty, normally lit room at the given position
func NewRoom(x, y int, active bool) Room {
	return Room{X: x, Y: y, Active: active, Lighting: Normal()}
}

// Position returns the room's coordinate
func (r Room) Position() Position {
	return Position{X: r.X, Y: r.Y}
}

// Clone returns a deep copy of the room
func (r Room) Clone() Room {
	c := r
	if r.Items != nil {
		c.Items = append([]Item(nil), r.Items...)
	}
	if r.Monster != nil {
		m := *r.Monster
		c.Monster = &m
	}
	if r.Gold != nil {
		g := *r.Gold
		c.Gold = &g
	}
	return c
}

// HasMonster returns true if a live monster is in the room
func (r Room) HasMonster() bool {
	return r.Monster != nil
}

// HasItem returns true if the room holds an item of type t
func (r Room) HasItem(t ItemType) bool {
	return ContainsType(r.Items, t)
}

// AddItem appends an item to the room's contents
func (r *Room) AddItem(item Item) {
	r.Items = append(r.Items, item)
}

// RemoveItemAt removes and returns the item at index i
func (r *Room) RemoveItemAt(i int) Item {
	item := r.Items[i]
	r.Items = append(r.Items[:i:i], r.Items[i+1:]...)
	return item
}

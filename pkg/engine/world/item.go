package world

// ItemType is the tag of a placeable item. Items carry no identity beyond their tag.
type ItemType int

// Item tags
const (
	Key ItemType = iota
	Chest
	Grail
	Torchlight
	Food
	Sword
)

var itemNames = map[ItemType]string{
	Key:        "key",
	Chest:      "chest",
	Grail:      "grail",
	Torchlight: "torchlight",
	Food:       "food",
	Sword:      "sword",
}

// String returns the name players use to refer to the item
func (t ItemType) String() string {
	if name, ok := itemNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseItemType returns the tag for a lower-case item name
func ParseItemType(name string) (ItemType, bool) {
	for t, n := range itemNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Item represents an item lying in a room or carried by the player
type Item struct {
	Type ItemType
}

// NewItem creates a new item of the given type
func NewItem(t ItemType) Item {
	return Item{Type: t}
}

// Name returns the item's name
func (i Item) Name() string {
	return i.Type.String()
}

// IndexOf returns the index of the first item of type t, or -1
func IndexOf(items []Item, t ItemType) int {
	for i, item := range items {
		if item.Type == t {
			return i
		}
	}
	return -1
}

// ContainsType reports whether items holds at least one item of type t
func ContainsType(items []Item, t ItemType) bool {
	for _, item := range items {
		if item.Type == t {
			return true
		}
	}
	return false
}

// CountType returns how many items of type t are in items
func CountType(items []Item, t ItemType) int {
	n := 0
	for _, item := range items {
		if item.Type == t {
			n++
		}
	}
	return n
}

// Names returns the item names in order
func Names(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name())
	}
	return names
}

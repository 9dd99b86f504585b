package input

import (
	"sort"
	"strings"
)

// Action represents the verb of a player command
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Items
	ActionGet
	ActionDrop
	ActionEat

	// Goals and combat
	ActionOpen
	ActionFight
)

// Command is a parsed command line: the verb and its first argument, if any
type Command struct {
	Action Action
	Verb   string
	Arg    string
}

// bindings maps command verbs to actions
var bindings = map[string]Action{
	"n":     ActionMoveNorth,
	"s":     ActionMoveSouth,
	"w":     ActionMoveWest,
	"e":     ActionMoveEast,
	"get":   ActionGet,
	"drop":  ActionDrop,
	"eat":   ActionEat,
	"open":  ActionOpen,
	"fight": ActionFight,
}

// Parse lower-cases and tokenizes a raw command line.
// Unknown verbs and empty input map to ActionNone.
func Parse(raw string) Command {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return Command{Action: ActionNone}
	}

	cmd := Command{Verb: fields[0], Action: bindings[fields[0]]}
	if len(fields) > 1 {
		cmd.Arg = fields[1]
	}
	return cmd
}

// IsMovement returns true for the four movement actions
func (a Action) IsMovement() bool {
	switch a {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast:
		return true
	default:
		return false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionGet:
		return "Pick Up"
	case ActionDrop:
		return "Drop"
	case ActionEat:
		return "Eat"
	case ActionOpen:
		return "Open Chest"
	case ActionFight:
		return "Fight"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the verbs grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

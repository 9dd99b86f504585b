// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

// MapDumpFilename is the default file written by DumpMazeToFile
const MapDumpFilename = "map.txt"

// roomSymbol returns the single-character symbol for a room (no player overlay)
func roomSymbol(r world.Room) rune {
	switch {
	case !r.Active:
		return '#'
	case r.HasMonster():
		return 'M'
	case r.HasItem(world.Chest):
		return 'C'
	case r.HasItem(world.Key):
		return 'K'
	case r.Lighting.IsPitchBlack():
		return 'd'
	case len(r.Items) > 0:
		return 'i'
	case r.Gold != nil:
		return '$'
	default:
		return '.'
	}
}

// writeMazeGrid draws the rooms with their doors: '-' joins rooms east/west, '|' north/south
func writeMazeGrid(w io.Writer, g *state.Game) {
	m := g.Maze
	player := g.Player.Position()

	for y := 0; y < m.Height(); y++ {
		var row, below strings.Builder
		for x := 0; x < m.Width(); x++ {
			r, _ := m.Room(x, y)

			if player == r.Position() {
				row.WriteRune('@')
			} else {
				row.WriteRune(roomSymbol(r))
			}

			if x < m.Width()-1 {
				if r.Doors.Has(world.East) {
					row.WriteRune('-')
				} else {
					row.WriteRune(' ')
				}
			}

			if r.Doors.Has(world.South) {
				below.WriteRune('|')
			} else {
				below.WriteRune(' ')
			}
			if x < m.Width()-1 {
				below.WriteRune(' ')
			}
		}
		fmt.Fprintln(w, row.String())
		if y < m.Height()-1 {
			fmt.Fprintln(w, strings.TrimRight(below.String(), " "))
		}
	}
}

// WriteMaze writes a full debug dump: metadata, legend, the map and a list of every furnished room.
func WriteMaze(w io.Writer, g *state.Game) {
	m := g.Maze
	p := g.Player

	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "active_rooms: %d\n", m.ActiveCount())
	fmt.Fprintf(w, "player: %d,%d\n", p.X, p.Y)
	fmt.Fprintf(w, "steps_left: %d\n", p.StepsLeft)
	fmt.Fprintf(w, "coins: %d\n", p.Coins)
	fmt.Fprintf(w, "inventory: %s\n", strings.Join(world.Names(p.Inventory), ","))
	fmt.Fprintf(w, "over: %v\n", g.Over)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ = player  M = monster  C = chest  K = key  d = unlit dark room  i = items  $ = gold  . = empty  # = inactive")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMazeGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	m.ForEachRoom(func(r world.Room) {
		if !r.Active || (len(r.Items) == 0 && r.Monster == nil && r.Gold == nil && !r.Lighting.IsDark()) {
			return
		}

		line := fmt.Sprintf("  x: %d y: %d", r.X, r.Y)
		if len(r.Items) > 0 {
			line += fmt.Sprintf(" items: %s", strings.Join(world.Names(r.Items), ","))
		}
		if r.Gold != nil {
			line += fmt.Sprintf(" gold: %d", r.Gold.Amount)
		}
		if r.Monster != nil {
			line += fmt.Sprintf(" monster: %s", r.Monster.Name)
		}
		if r.Lighting.IsDark() {
			line += fmt.Sprintf(" dark: true lit: %v", r.Lighting.Lit)
		}
		fmt.Fprintln(w, line)
	})
}

// DumpMazeToFile writes the debug dump to path (MapDumpFilename when empty) and returns the absolute path
func DumpMazeToFile(g *state.Game, path string) (string, error) {
	if g.Maze == nil {
		return "", fmt.Errorf("no maze")
	}
	if path == "" {
		path = MapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMaze(f, g)
	return absPath, nil
}

package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

// makeGame builds a 2x2 maze with the bottom-right room inactive:
//
//	@-K
//	|
//	. #
func makeGame(t *testing.T) *state.Game {
	t.Helper()
	m := world.NewMaze(2, 2)
	for _, p := range []world.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}} {
		r, _ := m.RoomAt(p)
		r.Active = true
		m.UpdateRoom(r)
	}
	if !m.Connect(0, 0, world.East) || !m.Connect(0, 0, world.South) {
		t.Fatal("Connect failed")
	}

	r, _ := m.Room(1, 0)
	r.AddItem(world.NewItem(world.Key))
	r.Lighting = world.Dark(false)
	m.UpdateRoom(r)

	return state.NewGame(m)
}

func TestWriteMaze(t *testing.T) {
	var buf bytes.Buffer
	WriteMaze(&buf, makeGame(t))
	out := buf.String()

	for _, want := range []string{
		"width: 2\n",
		"active_rooms: 3\n",
		"player: 0,0\n",
		"steps_left: 6\n",
		"--- Map ---\n@-K\n|\n. #\n",
		"  x: 1 y: 0 items: key dark: true lit: false\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRoomSymbol(t *testing.T) {
	tests := []struct {
		name string
		room world.Room
		want rune
	}{
		{"inactive", world.NewRoom(0, 0, false), '#'},
		{"empty", world.NewRoom(0, 0, true), '.'},
		{"monster beats chest", world.Room{Active: true, Monster: &world.Monster{Name: "orc"}, Items: []world.Item{world.NewItem(world.Chest)}}, 'M'},
		{"chest", world.Room{Active: true, Items: []world.Item{world.NewItem(world.Chest)}}, 'C'},
		{"lit dark room with food", world.Room{Active: true, Lighting: world.Dark(true), Items: []world.Item{world.NewItem(world.Food)}}, 'i'},
		{"gold", world.Room{Active: true, Gold: &world.Gold{Amount: 5}}, '$'},
	}
	for _, tt := range tests {
		if got := roomSymbol(tt.room); got != tt.want {
			t.Errorf("%s: roomSymbol() = %c, want %c", tt.name, got, tt.want)
		}
	}
}

func TestDumpMazeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	got, err := DumpMazeToFile(makeGame(t), path)
	if err != nil {
		t.Fatalf("DumpMazeToFile() error = %v", err)
	}
	if got != path {
		t.Errorf("DumpMazeToFile() = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "=== MAZE DUMP ===") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

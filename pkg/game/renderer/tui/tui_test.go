package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

func newPlainRenderer() (*TUIRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf, true)
	r.Init()
	return r, &buf
}

func TestFormatText(t *testing.T) {
	r, _ := newPlainRenderer()

	tests := []struct {
		in   string
		want string
	}{
		{"GT{Steps left}", "Steps left"},
		{"ACTION{get} ITEM{food}", "get food"},
		{"- ACTION{n}: GT{walk}", "- n: walk"},
		{"no markup", "no markup"},
	}
	for _, tt := range tests {
		if got := r.FormatText("%s", tt.in); got != tt.want {
			t.Errorf("FormatText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShow(t *testing.T) {
	r, buf := newPlainRenderer()
	r.Show(renderer.Danger("The monster attacked you!"))
	r.Show(renderer.Normal("line one\nline two"))

	want := "The monster attacked you!\nline one\nline two\n"
	if buf.String() != want {
		t.Errorf("Show wrote %q, want %q", buf.String(), want)
	}
}

func TestRenderFrame(t *testing.T) {
	r, buf := newPlainRenderer()

	maze := world.NewMaze(1, 1)
	g := state.NewGame(maze)
	g.Player.Coins = 12
	g.Player.Give(world.NewItem(world.Sword))
	g.Player.Give(world.NewItem(world.Food))
	g.AddMessage("You are in the room [0,0].\nSteps left: 2")

	r.RenderFrame(g)
	out := buf.String()

	for _, want := range []string{
		"Steps: ",
		"Coins: 12",
		"Inventory: sword, food",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "> ") {
		t.Errorf("frame does not end with a prompt: %q", out)
	}
}

func TestRenderFrame_EmptyInventory(t *testing.T) {
	r, buf := newPlainRenderer()
	r.RenderFrame(state.NewGame(world.NewMaze(1, 1)))
	if !strings.Contains(buf.String(), "Inventory: (empty)") {
		t.Errorf("empty inventory not shown:\n%s", buf.String())
	}
}

func TestShowLog(t *testing.T) {
	r, buf := newPlainRenderer()
	g := state.NewGame(world.NewMaze(1, 1))

	r.ShowLog(g)
	if !strings.Contains(buf.String(), "(no messages)") {
		t.Errorf("empty message log not shown:\n%s", buf.String())
	}

	buf.Reset()
	g.AddMessage("You are in the room [0,0].\nSteps left: 2")
	r.ShowLog(g)
	for _, want := range []string{" Messages ", "  You are in the room [0,0].\n  Steps left: 2\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestShowHelp(t *testing.T) {
	r, buf := newPlainRenderer()
	r.ShowHelp()
	for _, cmd := range []string{
		"- n, s, e, w: walk through a door",
		"- get item: pick an item up",
		"- get gold: collect coins",
		"- drop item:",
		"- eat food:",
		"- open:",
		"- fight:",
		"- log:",
		"- quit:",
	} {
		if !strings.Contains(buf.String(), cmd) {
			t.Errorf("help missing %q:\n%s", cmd, buf.String())
		}
	}
}

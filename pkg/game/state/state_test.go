package state

import (
	"testing"
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
)

func TestNewGame_StepBudget(t *testing.T) {
	maze := world.NewMaze(3, 2)
	for _, p := range []world.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}} {
		r, _ := maze.RoomAt(p)
		r.Active = true
		maze.UpdateRoom(r)
	}
	g := NewGame(maze)
	if g.Player.StepsLeft != 8 {
		t.Errorf("StepsLeft = %d, want 8 (2 x 4 active rooms)", g.Player.StepsLeft)
	}
	if g.Player.Position() != world.Start {
		t.Errorf("player at %v, want start", g.Player.Position())
	}
}

func TestPlayer_ReduceSteps(t *testing.T) {
	tests := []struct {
		steps, percent, want int
	}{
		{100, 10, 90},
		{15, 10, 13},
		{9, 10, 8},
		{1, 10, 0},
		{0, 10, 0},
	}
	for _, tt := range tests {
		p := NewPlayer(0, 0, tt.steps)
		p.ReduceSteps(tt.percent)
		if p.StepsLeft != tt.want {
			t.Errorf("ReduceSteps(%d) from %d = %d, want %d", tt.percent, tt.steps, p.StepsLeft, tt.want)
		}
	}
}

func TestPlayer_TakeRemovesOneItem(t *testing.T) {
	p := NewPlayer(0, 0, 10)
	p.Give(world.NewItem(world.Food))
	p.Give(world.NewItem(world.Sword))
	p.Give(world.NewItem(world.Food))

	if _, ok := p.Take(world.Key); ok {
		t.Error("Take(Key) ok = true, want false")
	}
	item, ok := p.Take(world.Food)
	if !ok || item.Type != world.Food {
		t.Fatalf("Take(Food) = %v, %v, want food, true", item, ok)
	}
	if got := world.CountType(p.Inventory, world.Food); got != 1 {
		t.Errorf("food left = %d, want 1", got)
	}
	if !p.Has(world.Sword) {
		t.Error("sword lost while taking food")
	}
}

func TestGame_AddMessageKeepsLastFive(t *testing.T) {
	g := NewGame(world.NewMaze(1, 1))
	for _, msg := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(msg)
	}
	if len(g.Messages) != 5 || g.Messages[0] != "c" || g.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", g.Messages)
	}
}

func TestGame_EndClearsEncounter(t *testing.T) {
	g := NewGame(world.NewMaze(1, 1))
	g.StartEncounter(time.Unix(100, 0))
	g.End()
	if !g.Over || g.EncounterStart != nil {
		t.Errorf("after End: Over=%v EncounterStart=%v, want true, nil", g.Over, g.EncounterStart)
	}
}

func TestGame_Rollback(t *testing.T) {
	g := NewGame(world.NewMaze(2, 1))
	g.Rollback()
	if g.Player.Position() != world.Start {
		t.Errorf("Rollback without previous position moved player to %v", g.Player.Position())
	}
	prev := world.Position{X: 1, Y: 0}
	g.PreviousPosition = &prev
	g.Rollback()
	if g.Player.Position() != prev {
		t.Errorf("Rollback moved player to %v, want %v", g.Player.Position(), prev)
	}
}

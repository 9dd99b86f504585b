package world

import (
	"testing"
)

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", dir, got, dir)
		}
		dx, dy := dir.Delta()
		ox, oy := dir.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s delta (%d,%d) does not cancel opposite (%d,%d)", dir, dx, dy, ox, oy)
		}
	}
}

func TestDirectionFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Direction
		ok    bool
	}{
		{"n", North, true},
		{"s", South, true},
		{"e", East, true},
		{"w", West, true},
		{"north", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := DirectionFromLabel(tt.label)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("DirectionFromLabel(%q) = %v, %v, want %v, %v", tt.label, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDoorSet(t *testing.T) {
	var s DoorSet
	s = s.With(West).With(North).With(North)
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
	if !s.Has(North) || !s.Has(West) || s.Has(East) || s.Has(South) {
		t.Errorf("DoorSet membership wrong: %08b", s)
	}
	dirs := s.Directions()
	if len(dirs) != 2 || dirs[0] != North || dirs[1] != West {
		t.Errorf("Directions() = %v, want [North West]", dirs)
	}
}

func TestParseItemType(t *testing.T) {
	for _, typ := range []ItemType{Key, Chest, Grail, Torchlight, Food, Sword} {
		got, ok := ParseItemType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseItemType(%q) = %v, %v, want %v, true", typ.String(), got, ok, typ)
		}
	}
	if _, ok := ParseItemType("torch"); ok {
		t.Error("ParseItemType(\"torch\") ok = true, want false")
	}
}

func TestMaze_RoomOutOfBounds(t *testing.T) {
	m := NewMaze(2, 3)
	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, ok := m.Room(p.X, p.Y); ok {
			t.Errorf("Room(%d,%d) ok = true, want false", p.X, p.Y)
		}
	}
	if r, ok := m.Room(1, 2); !ok || r.X != 1 || r.Y != 2 {
		t.Errorf("Room(1,2) = %+v, %v, want room at [1,2]", r, ok)
	}
}

func TestMaze_UpdateRoomRequiresWriteBack(t *testing.T) {
	m := NewMaze(2, 2)
	r, _ := m.Room(1, 1)
	r.Active = true
	r.AddItem(NewItem(Food))

	// Mutating the copy must not touch the stored room.
	stored, _ := m.Room(1, 1)
	if len(stored.Items) != 0 {
		t.Fatalf("stored room changed before UpdateRoom: %+v", stored)
	}

	if !m.UpdateRoom(r) {
		t.Fatal("UpdateRoom returned false for in-bounds room")
	}
	stored, _ = m.Room(1, 1)
	if !stored.Active || !stored.HasItem(Food) {
		t.Errorf("after UpdateRoom: %+v, want active room with food", stored)
	}

	// Further changes to the written room value stay local.
	r.Items[0] = NewItem(Sword)
	stored, _ = m.Room(1, 1)
	if stored.HasItem(Sword) {
		t.Error("stored room aliases the caller's item slice")
	}

	if m.UpdateRoom(NewRoom(5, 5, true)) {
		t.Error("UpdateRoom(out of bounds) = true, want false")
	}
}

func TestMaze_ConnectIsSymmetric(t *testing.T) {
	m := NewMaze(2, 2)
	for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		r, _ := m.RoomAt(p)
		r.Active = true
		m.UpdateRoom(r)
	}
	if !m.Connect(0, 0, East) {
		t.Fatal("Connect(0,0,East) = false")
	}
	if m.Connect(0, 0, West) {
		t.Error("Connect(0,0,West) = true, want false (outside maze)")
	}
	a, _ := m.Room(0, 0)
	b, _ := m.Room(1, 0)
	if !a.Doors.Has(East) || !b.Doors.Has(West) {
		t.Errorf("doors not symmetric: a=%v b=%v", a.Doors.Directions(), b.Doors.Directions())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestMaze_ValidateRejectsOneWayDoor(t *testing.T) {
	m := NewMaze(2, 1)
	for x := 0; x < 2; x++ {
		r, _ := m.Room(x, 0)
		r.Active = true
		m.UpdateRoom(r)
	}
	r, _ := m.Room(0, 0)
	r.Doors = r.Doors.With(East)
	m.UpdateRoom(r)
	if err := m.Validate(); err == nil {
		t.Error("Validate() = nil, want error for one-way door")
	}
}

func TestMaze_Reachable(t *testing.T) {
	m := NewMaze(3, 1)
	for x := 0; x < 3; x++ {
		r, _ := m.Room(x, 0)
		r.Active = true
		m.UpdateRoom(r)
	}
	m.Connect(0, 0, East)

	reach := m.Reachable(Start)
	if reach.Size() != 2 {
		t.Errorf("Reachable size = %d, want 2", reach.Size())
	}
	if reach.Has(Position{X: 2, Y: 0}) {
		t.Error("unconnected room reported reachable")
	}
}

func TestLighting(t *testing.T) {
	if Normal().IsDark() || Normal().IsPitchBlack() {
		t.Error("normal lighting reported dark")
	}
	if !Dark(false).IsPitchBlack() {
		t.Error("Dark(false).IsPitchBlack() = false, want true")
	}
	lit := Dark(true)
	if !lit.IsDark() || lit.IsPitchBlack() {
		t.Errorf("Dark(true) = %+v, want dark but not pitch black", lit)
	}
}

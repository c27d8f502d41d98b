package cc1

import "testing"

func TestWiringPreservesInsertionOrder(t *testing.T) {
	var w Wiring
	w.Set(5, 50)
	w.Set(1, 10)
	w.Set(3, 30)

	want := []Wire{{5, 50}, {1, 10}, {3, 30}}
	if len(w) != len(want) {
		t.Fatalf("len(w) = %d, want %d", len(w), len(want))
	}
	for i, wire := range want {
		if w[i] != wire {
			t.Errorf("w[%d] = %+v, want %+v", i, w[i], wire)
		}
	}
}

func TestWiringSetUpdatesInPlace(t *testing.T) {
	var w Wiring
	w.Set(1, 10)
	w.Set(2, 20)
	w.Set(1, 99)

	if len(w) != 2 {
		t.Fatalf("len(w) = %d, want 2 (update, not append)", len(w))
	}
	if target, ok := w.Get(1); !ok || target != 99 {
		t.Errorf("Get(1) = (%d, %v), want (99, true)", target, ok)
	}
	if w[0].Button != 1 {
		t.Errorf("updating in place should not move the entry; w[0].Button = %d", w[0].Button)
	}
}

func TestWiringDeleteButtonAndTarget(t *testing.T) {
	var w Wiring
	w.Set(1, 10)
	w.Set(2, 20)
	w.Set(3, 10)

	w.DeleteButton(2)
	if _, ok := w.Get(2); ok {
		t.Fatal("DeleteButton(2) should remove the wire keyed by button 2")
	}
	if len(w) != 2 {
		t.Fatalf("len(w) = %d, want 2", len(w))
	}

	w.DeleteTarget(10)
	if len(w) != 0 {
		t.Fatalf("DeleteTarget(10) should remove every wire targeting 10, got %+v", w)
	}
}

func TestConnectWiresTrapButtonRegardlessOfArgumentOrder(t *testing.T) {
	l := NewLevel()
	buttonPos, trapPos := Point{X: 1, Y: 1}.Index(), Point{X: 2, Y: 2}.Index()
	l.At(buttonPos).Add(TrapButton)
	l.At(trapPos).Add(Trap)

	if !l.Connect(trapPos, buttonPos) {
		t.Fatal("Connect should report success for a matching trap/button pair")
	}
	target, ok := l.Traps.Get(buttonPos)
	if !ok || target != trapPos {
		t.Errorf("Traps.Get(button) = (%d, %v), want (%d, true)", target, ok, trapPos)
	}
}

func TestConnectReturnsFalseForUnrelatedTiles(t *testing.T) {
	l := NewLevel()
	if l.Connect(0, 1) {
		t.Fatal("Connect on two floor cells should report no connection")
	}
}

func TestAddTracksMovementForNewMonster(t *testing.T) {
	l := NewLevel()
	l.Add(5, AntN)
	if len(l.Movement) != 1 || l.Movement[0] != 5 {
		t.Fatalf("Movement = %v, want [5]", l.Movement)
	}
}

func TestAddThenRemoveMonsterClearsMovement(t *testing.T) {
	l := NewLevel()
	l.Add(5, AntN)
	l.Remove(5, AntN)
	if len(l.Movement) != 0 {
		t.Fatalf("Movement = %v, want empty after removal", l.Movement)
	}
}

func TestRemovingTrapButtonDeletesItsWire(t *testing.T) {
	l := NewLevel()
	buttonPos, trapPos := 1, 2
	l.At(buttonPos).Add(TrapButton)
	l.At(trapPos).Add(Trap)
	l.Connect(buttonPos, trapPos)

	l.Remove(buttonPos, TrapButton)
	if _, ok := l.Traps.Get(buttonPos); ok {
		t.Fatal("removing the trap button should delete its wire")
	}
}

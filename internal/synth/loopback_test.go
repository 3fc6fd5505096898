package synth

import (
	"testing"

	"github.com/dshills/cyclekeys/internal/input/key"
)

func TestLoopbackRecordsInOrder(t *testing.T) {
	l := NewLoopback()

	steps := []struct {
		id      key.ID
		pressed bool
	}{
		{key.ID{Code: 29}, true},
		{key.ID{Code: 30}, true},
		{key.ID{Code: 30}, false},
		{key.ID{Code: 29}, false},
	}

	for _, s := range steps {
		var err error
		if s.pressed {
			err = l.Press(s.id)
		} else {
			err = l.Release(s.id)
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	log := l.Log()
	if len(log) != len(steps) {
		t.Fatalf("recorded %d primitives, want %d", len(log), len(steps))
	}
	for i, s := range steps {
		if log[i].Key != s.id || log[i].Pressed != s.pressed {
			t.Errorf("primitive %d = %+v, want key %v pressed %v", i, log[i], s.id, s.pressed)
		}
	}
}

func TestLoopbackHeldTracking(t *testing.T) {
	l := NewLoopback()

	a := key.ID{Code: 30}
	shift := key.ID{Code: 42}

	l.Press(shift)
	l.Press(a)
	l.Release(a)

	held := l.Held()
	if len(held) != 1 || held[0] != shift {
		t.Errorf("held = %v, want only %v", held, shift)
	}

	l.Release(shift)
	if len(l.Held()) != 0 {
		t.Error("expected no held keys after releasing all")
	}
}

func TestLoopbackReset(t *testing.T) {
	l := NewLoopback()
	l.Press(key.ID{Code: 30})

	l.Reset()
	if len(l.Log()) != 0 || len(l.Held()) != 0 {
		t.Error("reset must clear log and held state")
	}
}

func TestLoopbackOnKey(t *testing.T) {
	l := NewLoopback()

	var seen []Primitive
	l.OnKey(func(p Primitive) { seen = append(seen, p) })

	l.Press(key.ID{Code: 16})
	l.Release(key.ID{Code: 16})

	if len(seen) != 2 {
		t.Fatalf("callback saw %d primitives, want 2", len(seen))
	}
	if !seen[0].Pressed || seen[1].Pressed {
		t.Error("callback order mismatch")
	}
}

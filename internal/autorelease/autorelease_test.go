package autorelease

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/cyclekeys/internal/input"
)

func TestRegisterNilCallback(t *testing.T) {
	r := NewRegistry()
	ev := input.NewEvent(uuid.New(), input.TypeButton, 0, true)

	if _, err := r.Register(nil, ev); !errors.Is(err, ErrNilCallback) {
		t.Errorf("got %v, want ErrNilCallback", err)
	}
}

func TestObserveFiresOnceOnRelease(t *testing.T) {
	r := NewRegistry()
	device := uuid.New()
	press := input.NewEvent(device, input.TypeButton, 2, true)

	fired := 0
	if _, err := r.Register(func() { fired++ }, press); err != nil {
		t.Fatal(err)
	}

	// A press of the same input must not fire the callback.
	r.Observe(input.NewEvent(device, input.TypeButton, 2, true))
	if fired != 0 {
		t.Fatal("callback fired on press")
	}

	release := input.NewEvent(device, input.TypeButton, 2, false)
	r.Observe(release)
	if fired != 1 {
		t.Fatalf("callback fired %d times, want 1", fired)
	}

	// Second release must not fire again: registrations are one-shot.
	r.Observe(release)
	if fired != 1 {
		t.Errorf("callback fired %d times after second release, want 1", fired)
	}
	if r.Pending() != 0 {
		t.Errorf("pending = %d, want 0", r.Pending())
	}
}

func TestObserveIgnoresOtherOrigins(t *testing.T) {
	r := NewRegistry()
	device := uuid.New()

	fired := false
	press := input.NewEvent(device, input.TypeButton, 2, true)
	if _, err := r.Register(func() { fired = true }, press); err != nil {
		t.Fatal(err)
	}

	r.Observe(input.NewEvent(device, input.TypeButton, 3, false))
	r.Observe(input.NewEvent(uuid.New(), input.TypeButton, 2, false))
	r.Observe(input.NewEvent(device, input.TypeAxis, 2, false))

	if fired {
		t.Error("callback fired for an unrelated origin")
	}
	if r.Pending() != 1 {
		t.Errorf("pending = %d, want 1", r.Pending())
	}
}

func TestObserveFiresInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	device := uuid.New()
	press := input.NewEvent(device, input.TypeHat, 0, true)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if _, err := r.Register(func() { order = append(order, i) }, press); err != nil {
			t.Fatal(err)
		}
	}

	r.Observe(input.NewEvent(device, input.TypeHat, 0, false))

	if len(order) != 3 {
		t.Fatalf("fired %d callbacks, want 3", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("callback order %v, want ascending", order)
			break
		}
	}
}

func TestCancel(t *testing.T) {
	r := NewRegistry()
	device := uuid.New()
	press := input.NewEvent(device, input.TypeButton, 1, true)

	fired := false
	id, err := r.Register(func() { fired = true }, press)
	if err != nil {
		t.Fatal(err)
	}

	if !r.Cancel(id) {
		t.Fatal("Cancel returned false for a pending registration")
	}
	if r.Cancel(id) {
		t.Error("Cancel returned true for an already-cancelled registration")
	}

	r.Observe(input.NewEvent(device, input.TypeButton, 1, false))
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestCallbackMayReRegister(t *testing.T) {
	r := NewRegistry()
	device := uuid.New()
	press := input.NewEvent(device, input.TypeButton, 0, true)
	release := input.NewEvent(device, input.TypeButton, 0, false)

	fired := 0
	var rearm func()
	rearm = func() {
		fired++
		if fired < 2 {
			if _, err := r.Register(rearm, press); err != nil {
				t.Error(err)
			}
		}
	}
	if _, err := r.Register(rearm, press); err != nil {
		t.Fatal(err)
	}

	r.Observe(release)
	r.Observe(release)

	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}

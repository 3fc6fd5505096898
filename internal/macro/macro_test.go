package macro

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// captureSynth records every primitive it receives.
type captureSynth struct {
	mu    sync.Mutex
	steps []Step
	fail  error
}

func (s *captureSynth) Press(id key.ID) error {
	return s.record(Step{Op: OpPress, Key: id})
}

func (s *captureSynth) Release(id key.ID) error {
	return s.record(Step{Op: OpRelease, Key: id})
}

func (s *captureSynth) record(step Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.steps = append(s.steps, step)
	return nil
}

func (s *captureSynth) recorded() []Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// waitFor polls until cond returns true or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPressCombinationOrder(t *testing.T) {
	combo := key.Combination{{Code: 29}, {Code: 42}, {Code: 30}}

	m := PressCombination(combo)
	steps := m.Steps()
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}
	for i, s := range steps {
		if s.Op != OpPress {
			t.Errorf("step %d op = %v, want press", i, s.Op)
		}
		if s.Key != combo[i] {
			t.Errorf("step %d key = %v, want %v", i, s.Key, combo[i])
		}
	}
}

func TestReleaseCombinationOrder(t *testing.T) {
	combo := key.Combination{{Code: 42}, {Code: 44}}

	m := ReleaseCombination(combo)
	steps := m.Steps()
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	for i, s := range steps {
		if s.Op != OpRelease {
			t.Errorf("step %d op = %v, want release", i, s.Op)
		}
		if s.Key != combo[i] {
			t.Errorf("step %d key = %v, want %v", i, s.Key, combo[i])
		}
	}
}

func TestEmptyCombinationMacros(t *testing.T) {
	if got := PressCombination(nil).Len(); got != 0 {
		t.Errorf("press of empty combination has %d steps, want 0", got)
	}
	if got := ReleaseCombination(key.Combination{}).Len(); got != 0 {
		t.Errorf("release of empty combination has %d steps, want 0", got)
	}
}

func TestNewQueueNilSynthesizer(t *testing.T) {
	if _, err := NewQueue(nil); !errors.Is(err, ErrNilSynthesizer) {
		t.Errorf("got %v, want ErrNilSynthesizer", err)
	}
}

func TestQueuePlaysFIFO(t *testing.T) {
	synth := &captureSynth{}
	q, err := NewQueue(synth)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	defer q.Stop(context.Background())

	first := PressCombination(key.Combination{{Code: 30}})
	second := ReleaseCombination(key.Combination{{Code: 30}})

	if err := q.Enqueue(first); err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue(second); err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool { return q.Stats().Played == 2 })

	want := []Step{
		{Op: OpPress, Key: key.ID{Code: 30}},
		{Op: OpRelease, Key: key.ID{Code: 30}},
	}
	got := synth.recorded()
	if len(got) != len(want) {
		t.Fatalf("recorded %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQueueLifecycle(t *testing.T) {
	q, err := NewQueue(&captureSynth{})
	if err != nil {
		t.Fatal(err)
	}

	if err := q.Enqueue(New()); !errors.Is(err, ErrQueueNotRunning) {
		t.Errorf("enqueue before start = %v, want ErrQueueNotRunning", err)
	}

	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	if err := q.Start(); !errors.Is(err, ErrQueueAlreadyRunning) {
		t.Errorf("second start = %v, want ErrQueueAlreadyRunning", err)
	}

	if err := q.Stop(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := q.Stop(context.Background()); !errors.Is(err, ErrQueueNotRunning) {
		t.Errorf("second stop = %v, want ErrQueueNotRunning", err)
	}
}

func TestQueueEnqueueNil(t *testing.T) {
	q, err := NewQueue(&captureSynth{})
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue(nil); !errors.Is(err, ErrNilMacro) {
		t.Errorf("got %v, want ErrNilMacro", err)
	}
}

func TestQueueDrainsOnStop(t *testing.T) {
	synth := &captureSynth{}
	q, err := NewQueue(synth, WithBufferSize(8))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(PressCombination(key.Combination{{Code: uint16(30 + i)}})); err != nil {
			t.Fatal(err)
		}
	}

	if err := q.Stop(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := q.Stats().Played; got != 5 {
		t.Errorf("played %d macros after stop, want 5", got)
	}
}

func TestQueueReportsPlaybackErrors(t *testing.T) {
	synth := &captureSynth{fail: errors.New("device gone")}

	var mu sync.Mutex
	var reported []error
	handler := func(err error) {
		mu.Lock()
		reported = append(reported, err)
		mu.Unlock()
	}

	q, err := NewQueue(synth, WithErrorHandler(handler))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	defer q.Stop(context.Background())

	if err := q.Enqueue(PressCombination(key.Combination{{Code: 30}})); err != nil {
		t.Fatal(err)
	}

	waitFor(t, func() bool { return q.Stats().Errors == 1 })

	mu.Lock()
	defer mu.Unlock()
	if len(reported) != 1 {
		t.Fatalf("handler saw %d errors, want 1", len(reported))
	}
	var pe *PlaybackError
	if !errors.As(reported[0], &pe) {
		t.Fatalf("reported error is %T, want *PlaybackError", reported[0])
	}
	if pe.Step.Key.Code != 30 {
		t.Errorf("failed step key = %v, want scan code 30", pe.Step.Key)
	}
}

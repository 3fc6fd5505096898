package macro

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// Synthesizer plays individual key primitives on some output device.
// Implementations live in the synth package.
type Synthesizer interface {
	// Press presses the identified key.
	Press(id key.ID) error

	// Release releases the identified key.
	Release(id key.ID) error
}

// ErrorHandler receives playback errors from the queue worker.
type ErrorHandler func(err error)

// defaultBufferSize is the enqueue buffer used when no option overrides it.
const defaultBufferSize = 64

// Queue is a thread-safe FIFO of macros played back by a worker goroutine.
// Enqueue returns immediately; ordering is FIFO across all callers.
type Queue struct {
	synth    Synthesizer
	onError  ErrorHandler
	jobs     chan *Macro
	running  atomic.Bool
	stopCh   chan struct{}
	workerWg sync.WaitGroup

	// Stats
	enqueued atomic.Uint64
	played   atomic.Uint64
	dropped  atomic.Uint64
	errors   atomic.Uint64
}

// QueueOption configures a Queue.
type QueueOption func(*queueConfig)

type queueConfig struct {
	bufferSize int
	onError    ErrorHandler
}

// WithBufferSize sets the enqueue buffer size.
func WithBufferSize(n int) QueueOption {
	return func(c *queueConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithErrorHandler sets a handler invoked for playback errors.
func WithErrorHandler(h ErrorHandler) QueueOption {
	return func(c *queueConfig) {
		c.onError = h
	}
}

// NewQueue creates a macro queue that plays through the given synthesizer.
func NewQueue(synth Synthesizer, opts ...QueueOption) (*Queue, error) {
	if synth == nil {
		return nil, ErrNilSynthesizer
	}

	config := queueConfig{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&config)
	}

	return &Queue{
		synth:   synth,
		onError: config.onError,
		jobs:    make(chan *Macro, config.bufferSize),
		stopCh:  make(chan struct{}),
	}, nil
}

// Start launches the playback worker.
func (q *Queue) Start() error {
	if !q.running.CompareAndSwap(false, true) {
		return ErrQueueAlreadyRunning
	}

	q.workerWg.Add(1)
	go q.worker()
	return nil
}

// Stop drains queued macros and stops the worker. It blocks until the
// worker exits or the context is done.
func (q *Queue) Stop(ctx context.Context) error {
	if !q.running.CompareAndSwap(true, false) {
		return ErrQueueNotRunning
	}

	close(q.stopCh)

	done := make(chan struct{})
	go func() {
		q.workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeout
	}
}

// IsRunning returns true while the worker is accepting macros.
func (q *Queue) IsRunning() bool {
	return q.running.Load()
}

// Enqueue adds a macro to the playback queue without blocking.
// Safe to call from any goroutine, including auto-release callbacks.
func (q *Queue) Enqueue(m *Macro) error {
	if m == nil {
		return ErrNilMacro
	}
	if !q.running.Load() {
		return ErrQueueNotRunning
	}

	select {
	case q.jobs <- m:
		q.enqueued.Add(1)
		return nil
	default:
		q.dropped.Add(1)
		return ErrQueueFull
	}
}

// Stats reports queue counters.
type Stats struct {
	Enqueued uint64
	Played   uint64
	Dropped  uint64
	Errors   uint64
	Pending  int
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() Stats {
	return Stats{
		Enqueued: q.enqueued.Load(),
		Played:   q.played.Load(),
		Dropped:  q.dropped.Load(),
		Errors:   q.errors.Load(),
		Pending:  len(q.jobs),
	}
}

// worker plays macros in FIFO order until stopped. Macros already queued
// when Stop is called are drained before the worker exits.
func (q *Queue) worker() {
	defer q.workerWg.Done()

	for {
		select {
		case m := <-q.jobs:
			q.play(m)
		case <-q.stopCh:
			// Drain remaining macros.
			for {
				select {
				case m := <-q.jobs:
					q.play(m)
				default:
					return
				}
			}
		}
	}
}

// play feeds one macro's primitives to the synthesizer.
// A failed step aborts the rest of the macro; the error is reported to
// the handler, never to the enqueuer.
func (q *Queue) play(m *Macro) {
	for _, step := range m.steps {
		var err error
		switch step.Op {
		case OpPress:
			err = q.synth.Press(step.Key)
		case OpRelease:
			err = q.synth.Release(step.Key)
		}
		if err != nil {
			q.errors.Add(1)
			if q.onError != nil {
				q.onError(&PlaybackError{Step: step, Err: err})
			}
			return
		}
	}
	q.played.Add(1)
}

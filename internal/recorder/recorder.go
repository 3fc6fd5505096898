package recorder

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// ErrCancelled is returned when the user aborts a recording.
var ErrCancelled = errors.New("recording cancelled")

// Recorder runs interactive chord-recording sessions on a terminal.
type Recorder struct {
	screen tcell.Screen
}

// New creates a recorder with its own terminal screen.
func New() (*Recorder, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Recorder{screen: screen}, nil
}

// NewWithScreen creates a recorder on an existing screen. Used by tests
// with a simulation screen.
func NewWithScreen(screen tcell.Screen) *Recorder {
	return &Recorder{screen: screen}
}

// Record prompts for one key combination. Each keypress replaces the
// pending chord, Enter accepts it, Escape cancels. Returns ErrCancelled
// on escape.
func (r *Recorder) Record(prompt string) (key.Combination, error) {
	if err := r.screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	defer r.screen.Fini()

	var pending key.Combination
	for {
		r.draw(prompt, pending)

		ev := r.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyEscape:
				return nil, ErrCancelled
			case tcell.KeyEnter:
				if len(pending) > 0 {
					return pending, nil
				}
				// Without a pending chord, Enter records itself.
				pending, _ = ChordFromEvent(tev)
			default:
				if chord, ok := ChordFromEvent(tev); ok {
					pending = chord
				}
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case nil:
			// Screen finalized under us.
			return nil, ErrCancelled
		}
	}
}

// draw renders the prompt and the pending chord.
func (r *Recorder) draw(prompt string, pending key.Combination) {
	r.screen.Clear()

	putLine(r.screen, 0, prompt)
	if len(pending) > 0 {
		putLine(r.screen, 2, "Current keys combination: "+pending.String())
		putLine(r.screen, 4, "Enter to accept, any key to re-record, Esc to cancel")
	} else {
		putLine(r.screen, 2, "Press the desired key combination")
		putLine(r.screen, 4, "Esc to cancel")
	}

	r.screen.Show()
}

func putLine(screen tcell.Screen, y int, text string) {
	for x, ch := range text {
		screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
	}
}

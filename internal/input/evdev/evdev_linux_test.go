//go:build linux

package evdev

import (
	"testing"

	"github.com/dshills/cyclekeys/internal/input/key"
)

func TestKeyFromEvdev(t *testing.T) {
	tests := []struct {
		name string
		code uint16
		want key.ID
		ok   bool
	}{
		{"letter A", 30, key.ID{Code: 30}, true},
		{"escape", 1, key.ID{Code: 1}, true},
		{"F12", 88, key.ID{Code: 88}, true},
		{"up arrow", 103, key.ID{Code: 72, Extended: true}, true},
		{"right control", 97, key.ID{Code: 29, Extended: true}, true},
		{"left super", 125, key.ID{Code: 91, Extended: true}, true},
		{"zero", 0, key.ID{}, false},
		{"unmapped", 200, key.ID{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFromEvdev(tt.code)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("id = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeviceGUIDDeterministic(t *testing.T) {
	a := deviceGUID("/dev/input/event3")
	b := deviceGUID("/dev/input/event3")
	c := deviceGUID("/dev/input/event4")

	if a != b {
		t.Errorf("same path produced different GUIDs: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different paths produced the same GUID")
	}
}

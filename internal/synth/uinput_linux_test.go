//go:build linux

package synth

import (
	"testing"

	"github.com/dshills/cyclekeys/internal/input/key"
)

func TestEvdevCode(t *testing.T) {
	tests := []struct {
		id     key.ID
		want   uint16
		wantOK bool
	}{
		{key.ID{Code: 30}, 30, true},                  // A maps directly
		{key.ID{Code: 42}, 42, true},                  // LeftShift maps directly
		{key.ID{Code: 72, Extended: true}, 103, true}, // Up
		{key.ID{Code: 29, Extended: true}, 97, true},  // RightControl
		{key.ID{Code: 0}, 0, false},
		{key.ID{Code: 999}, 0, false},
		{key.ID{Code: 200, Extended: true}, 0, false},
	}

	for _, tt := range tests {
		got, ok := evdevCode(tt.id)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("evdevCode(%v) = (%d, %v), want (%d, %v)", tt.id, got, ok, tt.want, tt.wantOK)
		}
	}
}

package recorder

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// Canonical modifier key identities.
var (
	modCtrl  = key.ID{Code: 29}
	modShift = key.ID{Code: 42}
	modAlt   = key.ID{Code: 56}
	modMeta  = key.ID{Code: 91, Extended: true}
)

// runeCodes maps characters to standard scan codes.
var runeCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6,
	'6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'-': 12, '=': 13,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20,
	'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'[': 26, ']': 27,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34,
	'h': 35, 'j': 36, 'k': 37, 'l': 38,
	';': 39, '\'': 40, '`': 41, '\\': 43,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48,
	'n': 49, 'm': 50,
	',': 51, '.': 52, '/': 53,
	' ': 57,
}

// specialCodes maps tcell special keys to key identities.
var specialCodes = map[tcell.Key]key.ID{
	tcell.KeyEnter:      {Code: 28},
	tcell.KeyTab:        {Code: 15},
	tcell.KeyBackspace2: {Code: 14},
	tcell.KeyF1:         {Code: 59},
	tcell.KeyF2:         {Code: 60},
	tcell.KeyF3:         {Code: 61},
	tcell.KeyF4:         {Code: 62},
	tcell.KeyF5:         {Code: 63},
	tcell.KeyF6:         {Code: 64},
	tcell.KeyF7:         {Code: 65},
	tcell.KeyF8:         {Code: 66},
	tcell.KeyF9:         {Code: 67},
	tcell.KeyF10:        {Code: 68},
	tcell.KeyF11:        {Code: 87},
	tcell.KeyF12:        {Code: 88},
	tcell.KeyUp:         {Code: 72, Extended: true},
	tcell.KeyDown:       {Code: 80, Extended: true},
	tcell.KeyLeft:       {Code: 75, Extended: true},
	tcell.KeyRight:      {Code: 77, Extended: true},
	tcell.KeyHome:       {Code: 71, Extended: true},
	tcell.KeyEnd:        {Code: 79, Extended: true},
	tcell.KeyPgUp:       {Code: 73, Extended: true},
	tcell.KeyPgDn:       {Code: 81, Extended: true},
	tcell.KeyInsert:     {Code: 82, Extended: true},
	tcell.KeyDelete:     {Code: 83, Extended: true},
}

// ChordFromEvent converts one key event into a combination: modifiers
// first in Ctrl, Shift, Alt, Meta order, then the main key. Returns
// false when the main key has no scan code mapping.
func ChordFromEvent(ev *tcell.EventKey) (key.Combination, bool) {
	main, ok := mainKey(ev)
	if !ok {
		return nil, false
	}

	var combo key.Combination
	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		combo = append(combo, modCtrl)
	}
	if mods&tcell.ModShift != 0 || isShifted(ev) {
		combo = append(combo, modShift)
	}
	if mods&tcell.ModAlt != 0 {
		combo = append(combo, modAlt)
	}
	if mods&tcell.ModMeta != 0 {
		combo = append(combo, modMeta)
	}

	return append(combo, main), true
}

// mainKey resolves the event's non-modifier key.
func mainKey(ev *tcell.EventKey) (key.ID, bool) {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if code, ok := runeCodes[r]; ok {
			return key.ID{Code: code}, true
		}
		return key.ID{}, false
	}

	// Specials first: Enter and Tab share codes with the Ctrl+letter
	// range and must win.
	if id, ok := specialCodes[ev.Key()]; ok {
		return id, true
	}

	// Ctrl+letter arrives as a control key below tcell.KeyRune.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + (ev.Key() - tcell.KeyCtrlA))
		if code, ok := runeCodes[r]; ok {
			return key.ID{Code: code}, true
		}
	}

	return key.ID{}, false
}

// isShifted reports whether an uppercase rune implies a shift press the
// modifier mask may not carry.
func isShifted(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune())
}

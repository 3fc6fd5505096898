package statetoggle

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/dshills/cyclekeys/internal/input/key"
	"github.com/dshills/cyclekeys/internal/profile"
)

// Document structure:
//
//	<StateToggle>
//	  <state>
//	    <key scan-code="30" extended="False"/>
//	    <key scan-code="42" extended="False"/>
//	  </state>
//	</StateToggle>
//
// States appear in list order, keys in combination order. Booleans use
// the canonical "True"/"False" encoding so that serialize(deserialize(d))
// reproduces d byte for byte.

const (
	stateTag = "state"
	keyTag   = "key"

	scanCodeAttr = "scan-code"
	extendedAttr = "extended"
)

type keyXML struct {
	ScanCode string `xml:"scan-code,attr"`
	Extended string `xml:"extended,attr"`
}

type stateXML struct {
	Keys []keyXML `xml:"key"`
}

type toggleXML struct {
	States []stateXML `xml:"state"`
}

// MarshalXML encodes the state list under the action's tag.
func (t *Toggle) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = t.Tag()
	start.Attr = nil

	doc := toggleXML{States: make([]stateXML, len(t.states))}
	for i, combo := range t.states {
		keys := make([]keyXML, len(combo))
		for j, id := range combo {
			keys[j] = keyXML{
				ScanCode: strconv.Itoa(int(id.Code)),
				Extended: profile.FormatBool(id.Extended),
			}
		}
		doc.States[i] = stateXML{Keys: keys}
	}

	return e.EncodeElement(doc, start)
}

// UnmarshalXML decodes a state list, replacing any existing states.
// Malformed key entries fail the whole load: a partially parsed chord
// could send the wrong keys to the target application.
//
// The number of states in the document is not bounded against MaxStates.
// Oversized documents load fully; the UI simply cannot grow such a list
// further.
func (t *Toggle) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var doc toggleXML
	if err := d.DecodeElement(&doc, &start); err != nil {
		return fmt.Errorf("decoding %s element: %w", start.Name.Local, err)
	}

	states := make(StateList, 0, len(doc.States))
	for i, s := range doc.States {
		combo := make(key.Combination, 0, len(s.Keys))
		for j, k := range s.Keys {
			if k.ScanCode == "" {
				return fmt.Errorf("state %d key %d: missing %s attribute", i, j, scanCodeAttr)
			}
			code, err := strconv.ParseUint(k.ScanCode, 10, 16)
			if err != nil {
				return fmt.Errorf("state %d key %d: invalid %s %q: %w", i, j, scanCodeAttr, k.ScanCode, err)
			}
			if k.Extended == "" {
				return fmt.Errorf("state %d key %d: missing %s attribute", i, j, extendedAttr)
			}
			extended, err := profile.ParseBool(k.Extended)
			if err != nil {
				return fmt.Errorf("state %d key %d: invalid %s attribute: %w", i, j, extendedAttr, err)
			}
			combo = append(combo, key.New(uint16(code), extended))
		}
		states = append(states, combo)
	}

	t.states = states
	return nil
}

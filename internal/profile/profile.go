package profile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/input"
)

// Document tags and attributes.
const (
	profileTag = "profile"
	bindingTag = "binding"

	versionAttr   = "version"
	deviceAttr    = "device-guid"
	inputTypeAttr = "input-type"
	inputIDAttr   = "input-id"
)

// currentVersion is written to new profiles.
const currentVersion = 1

// Binding maps one physical input to its configured actions.
type Binding struct {
	// Device is the GUID of the input device.
	Device uuid.UUID

	// Type is the kind of input bound.
	Type input.Type

	// Code is the device-local input index.
	Code int

	// Actions are executed for this input, in document order.
	Actions []action.Action
}

// Origin returns the input origin this binding listens on.
func (b *Binding) Origin() input.Origin {
	return input.Origin{Device: b.Device, Type: b.Type, Code: b.Code}
}

// Profile is a loaded remapping profile.
type Profile struct {
	// Version is the document schema version.
	Version int

	// Bindings in document order.
	Bindings []*Binding
}

// New returns an empty profile at the current schema version.
func New() *Profile {
	return &Profile{Version: currentVersion}
}

// Parse decodes a profile document, resolving action elements through
// the registry. Any malformed binding or action fails the whole parse.
func Parse(data []byte, reg *action.Registry) (*Profile, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	d := xml.NewDecoder(bytes.NewReader(data))

	root, err := findRoot(d)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != profileTag {
		return nil, fmt.Errorf("%w: got <%s>", ErrNotProfile, root.Name.Local)
	}

	p := &Profile{Version: currentVersion}
	for _, attr := range root.Attr {
		if attr.Name.Local == versionAttr {
			v, err := strconv.Atoi(attr.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid profile version %q: %w", attr.Value, err)
			}
			p.Version = v
		}
	}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading profile: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != bindingTag {
				return nil, fmt.Errorf("unexpected element <%s> in profile", el.Name.Local)
			}
			binding, err := parseBinding(d, el, reg)
			if err != nil {
				return nil, err
			}
			p.Bindings = append(p.Bindings, binding)
		case xml.EndElement:
			if el.Name.Local == profileTag {
				return p, nil
			}
		}
	}

	return p, nil
}

// findRoot skips prolog tokens and returns the document root element.
func findRoot(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("reading document root: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// parseBinding decodes one binding element and its action children.
func parseBinding(d *xml.Decoder, start xml.StartElement, reg *action.Registry) (*Binding, error) {
	b := &Binding{}

	var haveDevice, haveType, haveID bool
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case deviceAttr:
			guid, err := uuid.Parse(attr.Value)
			if err != nil {
				return nil, fmt.Errorf("binding: invalid %s %q: %w", deviceAttr, attr.Value, err)
			}
			b.Device = guid
			haveDevice = true
		case inputTypeAttr:
			typ, err := input.TypeFromString(attr.Value)
			if err != nil {
				return nil, fmt.Errorf("binding: %w", err)
			}
			b.Type = typ
			haveType = true
		case inputIDAttr:
			code, err := strconv.Atoi(attr.Value)
			if err != nil {
				return nil, fmt.Errorf("binding: invalid %s %q: %w", inputIDAttr, attr.Value, err)
			}
			b.Code = code
			haveID = true
		}
	}
	if !haveDevice || !haveType || !haveID {
		return nil, fmt.Errorf("binding: missing %s, %s, or %s attribute", deviceAttr, inputTypeAttr, inputIDAttr)
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("reading binding: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			act, err := reg.Create(el.Name.Local)
			if err != nil {
				return nil, fmt.Errorf("binding for %s %d: %w", b.Type, b.Code, err)
			}
			if err := d.DecodeElement(act, &el); err != nil {
				return nil, fmt.Errorf("binding for %s %d: %w", b.Type, b.Code, err)
			}
			b.Actions = append(b.Actions, act)
		case xml.EndElement:
			if el.Name.Local == bindingTag {
				return b, nil
			}
		}
	}
}

// Encode serializes the profile document.
func (p *Profile) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	e := xml.NewEncoder(&buf)
	e.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: profileTag},
		Attr: []xml.Attr{{
			Name:  xml.Name{Local: versionAttr},
			Value: strconv.Itoa(p.Version),
		}},
	}
	if err := e.EncodeToken(root); err != nil {
		return nil, err
	}

	for _, b := range p.Bindings {
		if err := encodeBinding(e, b); err != nil {
			return nil, err
		}
	}

	if err := e.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeBinding(e *xml.Encoder, b *Binding) error {
	start := xml.StartElement{
		Name: xml.Name{Local: bindingTag},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: deviceAttr}, Value: b.Device.String()},
			{Name: xml.Name{Local: inputTypeAttr}, Value: b.Type.String()},
			{Name: xml.Name{Local: inputIDAttr}, Value: strconv.Itoa(b.Code)},
		},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, act := range b.Actions {
		el := xml.StartElement{Name: xml.Name{Local: act.Tag()}}
		if err := e.EncodeElement(act, el); err != nil {
			return fmt.Errorf("encoding %s action: %w", act.Tag(), err)
		}
	}

	return e.EncodeToken(start.End())
}

// Load reads and parses a profile file.
func Load(path string, reg *action.Registry) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	p, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

// Save writes the profile atomically using a temp file and rename.
func (p *Profile) Save(path string) error {
	data, err := p.Encode()
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp profile: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp profile: %w", err)
	}
	return nil
}

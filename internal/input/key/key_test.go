package key

import "testing"

func TestIDName(t *testing.T) {
	tests := []struct {
		code     uint16
		extended bool
		want     string
	}{
		{30, false, "A"},
		{42, false, "LeftShift"},
		{29, false, "LeftControl"},
		{29, true, "RightControl"},
		{72, false, "KP8"},
		{72, true, "Up"},
		{57, false, "Space"},
		{88, false, "F12"},
		{200, false, "Key(200)"},
		{200, true, "Key(0xE0 200)"},
	}

	for _, tt := range tests {
		got := New(tt.code, tt.extended).Name()
		if got != tt.want {
			t.Errorf("Name(%d, %v) = %q, want %q", tt.code, tt.extended, got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name   string
		want   ID
		wantOK bool
	}{
		{"A", ID{Code: 30}, true},
		{"RightControl", ID{Code: 29, Extended: true}, true},
		{"Up", ID{Code: 72, Extended: true}, true},
		{"NoSuchKey", ID{}, false},
	}

	for _, tt := range tests {
		got, ok := FromName(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFromNameRoundTrip(t *testing.T) {
	for code, name := range standardNames {
		id, ok := FromName(name)
		if !ok {
			t.Fatalf("FromName(%q) not found", name)
		}
		if id != (ID{Code: code}) {
			t.Errorf("FromName(%q) = %v, want code %d", name, id, code)
		}
	}
}

func TestCombinationEqual(t *testing.T) {
	a := Combination{{Code: 30}, {Code: 42}}
	b := Combination{{Code: 30}, {Code: 42}}
	c := Combination{{Code: 42}, {Code: 30}}

	if !a.Equal(b) {
		t.Error("expected equal combinations")
	}
	if a.Equal(c) {
		t.Error("order must be significant")
	}
	if a.Equal(a[:1]) {
		t.Error("length mismatch must not be equal")
	}

	var empty Combination
	if !empty.Equal(Combination{}) {
		t.Error("nil and empty combinations should compare equal")
	}
}

func TestCombinationClone(t *testing.T) {
	orig := Combination{{Code: 30}, {Code: 42, Extended: true}}
	clone := orig.Clone()

	if !orig.Equal(clone) {
		t.Fatal("clone differs from original")
	}

	clone[0] = ID{Code: 16}
	if orig[0].Code != 30 {
		t.Error("mutating clone must not affect original")
	}
}

func TestCombinationString(t *testing.T) {
	c := Combination{{Code: 29}, {Code: 30}}
	if got, want := c.String(), "LeftControl + A"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var empty Combination
	if got := empty.String(); got != "(empty)" {
		t.Errorf("empty String() = %q, want (empty)", got)
	}
}

func TestEventCode(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		code int
	}{
		{"standard", ID{Code: 30}, 30},
		{"extended", ID{Code: 72, Extended: true}, 0x148},
		{"extended low", ID{Code: 29, Extended: true}, 0x11d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.EventCode(); got != tt.code {
				t.Errorf("EventCode() = %#x, want %#x", got, tt.code)
			}
			if got := FromEventCode(tt.code); got != tt.id {
				t.Errorf("FromEventCode(%#x) = %v, want %v", tt.code, got, tt.id)
			}
		})
	}
}

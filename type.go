package marker

import "fmt"

// Type is the archetype of a marker. It is fixed for the marker's lifetime
// and selects the glyph, the anchor shift and the label side.
type Type uint8

// Marker types.
const (
	Mark Type = iota
	Tempo
	Meter
	SessionStart
	SessionEnd
	RangeStart
	RangeEnd
	LoopStart
	LoopEnd
	PunchIn
	PunchOut

	numTypes = iota
)

var typeNames = [numTypes]string{
	Mark:         "mark",
	Tempo:        "tempo",
	Meter:        "meter",
	SessionStart: "session-start",
	SessionEnd:   "session-end",
	RangeStart:   "range-start",
	RangeEnd:     "range-end",
	LoopStart:    "loop-start",
	LoopEnd:      "loop-end",
	PunchIn:      "punch-in",
	PunchOut:     "punch-out",
}

// Types returns every marker type in declaration order.
func Types() []Type {
	ts := make([]Type, numTypes)
	for i := range ts {
		ts[i] = Type(i)
	}
	return ts
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t < numTypes
}

// String returns the kebab-case name of the type.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType parses a name produced by Type.String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// labelOnLeft reports whether labels of this type grow leftward from the
// glyph. End-of-region types put their label inside the region.
func (t Type) labelOnLeft() bool {
	switch t {
	case SessionEnd, RangeEnd, LoopEnd, PunchOut:
		return true
	default:
		return false
	}
}

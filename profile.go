package marker

import "fmt"

// Profile selects one of the two display variants.
//
// The profile is consulted at a handful of decision points only: glyph
// suppression and label padding (label layout), line visibility for plain
// marks and line color (line policy), and the label background outline.
type Profile uint8

const (
	// Standard draws glyphs. The extension line shows while the marker is
	// visible and selected or forced, in the edit point color when selected.
	Standard Profile = iota

	// Alternate draws no glyphs and pads labels by NamePadding on both
	// sides. Plain marks always show their line, always in the marker color.
	// The label background is outlined on top, left and right only.
	Alternate
)

// NamePadding is the label padding used by the Alternate profile.
const NamePadding = 10.0

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case Standard:
		return "standard"
	case Alternate:
		return "alternate"
	default:
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
}

// ParseProfile parses a name produced by Profile.String.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "standard", "":
		return Standard, nil
	case "alternate":
		return Alternate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Profile) UnmarshalText(b []byte) error {
	v, err := ParseProfile(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

package marker

import "errors"

// Sentinel errors for marker package.
var (
	// ErrUnknownType is returned when a marker type name cannot be parsed.
	ErrUnknownType = errors.New("marker: unknown marker type")

	// ErrUnknownProfile is returned when a display profile name cannot be parsed.
	ErrUnknownProfile = errors.New("marker: unknown display profile")
)

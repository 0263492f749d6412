package window

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by Parse for an unrecognised window name.
var ErrUnknownType = errors.New("window: unknown window type")

// Parse returns the Type whose String form equals name, ignoring case and
// surrounding space.
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		if t.String() == name {
			return t, nil
		}
	}

	return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

package visibility

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a selection mode is not recognized.
var ErrInvalidMode = errors.New("invalid mode")

// DrawMode selects the seed of the draw set.
type DrawMode string

const (
	// DrawColony seeds the draw set with the player faction's members.
	DrawColony DrawMode = "colony"
	// DrawSeen seeds the draw set with every person the player has observed.
	DrawSeen DrawMode = "seen"
	// DrawAll draws every person in the save without expansion.
	DrawAll DrawMode = "all"
)

// DrawModes lists the valid draw modes in help order.
var DrawModes = []DrawMode{DrawColony, DrawSeen, DrawAll}

// NamedMode selects which persons are shown with real names.
type NamedMode string

const (
	// NamedSeen names only observed persons.
	NamedSeen NamedMode = "seen"
	// NamedRelated names observed persons plus the parents and
	// relationship targets of every colonist.
	NamedRelated NamedMode = "related"
	// NamedAll names everyone.
	NamedAll NamedMode = "all"
)

// NamedModes lists the valid named modes in help order.
var NamedModes = []NamedMode{NamedSeen, NamedRelated, NamedAll}

// ParseDrawMode converts s to a DrawMode.
// The error lists the valid values.
func ParseDrawMode(s string) (DrawMode, error) {
	for _, m := range DrawModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: draw mode %q (must be one of: %s)", ErrInvalidMode, s, join(DrawModes))
}

// ParseNamedMode converts s to a NamedMode.
// The error lists the valid values.
func ParseNamedMode(s string) (NamedMode, error) {
	for _, m := range NamedModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: named mode %q (must be one of: %s)", ErrInvalidMode, s, join(NamedModes))
}

func join[M ~string](modes []M) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

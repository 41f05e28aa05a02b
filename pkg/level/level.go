// Package level orders framework compatibility matrix levels.
//
// A level is either the "legacy" token, a decimal number, or the empty
// string for matrices that do not declare one. Legacy sorts first and the
// unspecified level sorts last.
package level

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Legacy is the reserved level token for pre-Treble matrices.
const Legacy = "legacy"

// ErrInvalidLevel is returned for level strings that are neither a sentinel nor a number.
var ErrInvalidLevel = errors.New("invalid compatibility matrix level")

// Kind tags a Key.
type Kind int

const (
	KindLegacy Kind = iota
	KindNumeric
	KindUnspecified
)

// Key is the sort key of a level.
type Key struct {
	Kind  Kind
	Value int64 // only meaningful for KindNumeric
}

// Parse converts a level string into its sort key.
func Parse(s string) (Key, error) {
	switch s {
	case Legacy:
		return Key{Kind: KindLegacy}, nil
	case "":
		return Key{Kind: KindUnspecified}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return Key{Kind: KindNumeric, Value: n}, nil
}

// Compare returns -1, 0 or 1 depending on whether k sorts before, with or after o.
func (k Key) Compare(o Key) int {
	if k.Kind != o.Kind {
		if k.Kind < o.Kind {
			return -1
		}
		return 1
	}
	if k.Kind != KindNumeric || k.Value == o.Value {
		return 0
	}
	if k.Value < o.Value {
		return -1
	}
	return 1
}

func (k Key) String() string {
	switch k.Kind {
	case KindLegacy:
		return Legacy
	case KindUnspecified:
		return "unspecified"
	default:
		return strconv.FormatInt(k.Value, 10)
	}
}

// Sort returns a sorted copy of levels. Levels with equal keys ("1" and "01")
// fall back to string order.
func Sort(levels []string) ([]string, error) {
	keys := make(map[string]Key, len(levels))
	for _, l := range levels {
		k, err := Parse(l)
		if err != nil {
			return nil, err
		}
		keys[l] = k
	}

	sorted := append([]string(nil), levels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := keys[sorted[i]].Compare(keys[sorted[j]]); c != 0 {
			return c < 0
		}
		return sorted[i] < sorted[j]
	})
	return sorted, nil
}

package mcuschema

import (
	"sort"
	"strings"
)

// Presence is the bit flag collected by BuildWithMeta.
type Presence uint8

const (
	PresenceSeen     Presence = 1 << iota // Field appeared in the source.
	PresenceRepeated                      // Field appeared more than once.
	PresenceMissing                       // Declared field absent from the source.
)

// PresenceMap maps field paths to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the built record along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Has reports whether every bit of flag is set at path.
func (pm PresenceMap) Has(path string, flag Presence) bool {
	return pm[path]&flag == flag
}

// Paths returns the sorted paths carrying flag, restricted to the given
// prefix ("" or "/" for all).
func (pm PresenceMap) Paths(flag Presence, prefix string) []string {
	if prefix == "/" {
		prefix = ""
	}
	var out []string
	for k, v := range pm {
		if v&flag == 0 {
			continue
		}
		if prefix != "" && k != prefix && !strings.HasPrefix(k, prefix+"/") {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Mark ORs flag into path.
func (pm PresenceMap) Mark(path string, flag Presence) {
	if pm == nil {
		return
	}
	pm[path] |= flag
}

// Package def holds the definition data model: sophemes, transclusions,
// entities, definitions, and the dictionary that maps varnames to them.
package def

import (
	"strings"

	"github.com/dekarrin/sophtrie/keysymbol"
)

// Sopheme pairs an orthographic fragment (Chars) with the sequence of
// keysymbols that spell it.
type Sopheme struct {
	Chars      string
	Keysymbols []keysymbol.Keysymbol
}

// NewSopheme creates a Sopheme from its orthographic chars and keysymbols.
func NewSopheme(chars string, keysymbols []keysymbol.Keysymbol) Sopheme {
	return Sopheme{Chars: chars, Keysymbols: keysymbols}
}

// CanBeSilent reports whether every keysymbol in the sopheme is optional,
// meaning the entire sopheme may be elided from a spelling.
func (s Sopheme) CanBeSilent() bool {
	for _, k := range s.Keysymbols {
		if !k.Optional() {
			return false
		}
	}
	return true
}

// Child returns the keysymbol at index, and whether index was in range.
func (s Sopheme) Child(index int) (keysymbol.Keysymbol, bool) {
	if index < 0 || index >= len(s.Keysymbols) {
		return keysymbol.Keysymbol{}, false
	}
	return s.Keysymbols[index], true
}

// NChildren returns the number of keysymbols in the sopheme.
func (s Sopheme) NChildren() int {
	return len(s.Keysymbols)
}

// String renders the sopheme in its canonical text form: "chars.keysymbols",
// parenthesizing the keysymbol sequence when it has more than one member.
func (s Sopheme) String() string {
	parts := make([]string, len(s.Keysymbols))
	for i, k := range s.Keysymbols {
		parts[i] = k.String()
	}
	ksStr := strings.Join(parts, " ")
	if len(s.Keysymbols) > 1 {
		ksStr = "(" + ksStr + ")"
	}
	return s.Chars + "." + ksStr
}

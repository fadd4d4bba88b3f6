// Package keysymbol models a single phoneme token used in a definition's
// phonological spelling: its symbol text, stress level, and whether it may
// be silently elided.
package keysymbol

import (
	"regexp"
	"strconv"
)

var bracketOrDigit = regexp.MustCompile(`[\[\]\d]`)

// vowels holds the fixed set of base symbols considered vowels. Anything
// not in this set is a consonant. Grounded on the upstream phoneme
// inventory; this set is closed and not meant to be extended at runtime.
var vowels = map[string]bool{
	"e": true, "ao": true, "a": true, "ah": true, "oa": true, "aa": true,
	"ar": true, "eh": true, "ou": true, "ouw": true, "oou": true, "o": true,
	"au": true, "oo": true, "or": true, "our": true, "ii": true, "iy": true,
	"i": true, "@r": true, "@": true, "uh": true, "u": true, "uu": true,
	"iu": true, "ei": true, "ee": true, "ai": true, "ae": true, "aer": true,
	"aai": true, "oi": true, "oir": true, "ow": true, "owr": true,
	"oow": true, "ir": true, "@@r": true, "er": true, "eir": true,
	"ur": true, "i@": true,
}

// Keysymbol is a single phoneme token: its literal symbol, the base symbol
// with bracket/digit annotations stripped, a stress level (0 = unstressed),
// and whether it is optional (may be silently elided from the spelling).
type Keysymbol struct {
	symbol     string
	baseSymbol string
	stress     uint8
	optional   bool
}

// New creates a Keysymbol, deriving its base symbol from symbol by
// stripping brackets and digits.
func New(symbol string, stress uint8, optional bool) Keysymbol {
	return Keysymbol{
		symbol:     symbol,
		baseSymbol: bracketOrDigit.ReplaceAllString(symbol, ""),
		stress:     stress,
		optional:   optional,
	}
}

// NewWithKnownBaseSymbol creates a Keysymbol without re-deriving the base
// symbol, for callers that already know it (e.g. a parser that interned
// base symbols ahead of time).
func NewWithKnownBaseSymbol(symbol, baseSymbol string, stress uint8, optional bool) Keysymbol {
	return Keysymbol{symbol: symbol, baseSymbol: baseSymbol, stress: stress, optional: optional}
}

// Symbol returns the keysymbol's literal symbol text.
func (k Keysymbol) Symbol() string { return k.symbol }

// BaseSymbol returns the symbol with bracket/digit annotations stripped.
func (k Keysymbol) BaseSymbol() string { return k.baseSymbol }

// Stress returns the stress level, 0 meaning unstressed.
func (k Keysymbol) Stress() uint8 { return k.stress }

// Optional reports whether this keysymbol may be silently elided.
func (k Keysymbol) Optional() bool { return k.optional }

// IsVowel reports whether the keysymbol's base symbol is a vowel.
func (k Keysymbol) IsVowel() bool { return vowels[k.baseSymbol] }

// IsConsonant reports whether the keysymbol's base symbol is a consonant.
func (k Keysymbol) IsConsonant() bool { return !k.IsVowel() }

// StressMarker renders a stress level as its textual suffix ("" for 0,
// otherwise "!<n>").
func StressMarker(stress uint8) string {
	if stress == 0 {
		return ""
	}
	return "!" + strconv.Itoa(int(stress))
}

// String renders the keysymbol in its canonical textual form:
// symbol + stress marker + optional "?".
func (k Keysymbol) String() string {
	out := k.symbol + StressMarker(k.stress)
	if k.optional {
		out += "?"
	}
	return out
}

package keysymbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_derivesBaseSymbol(t *testing.T) {
	testCases := []struct {
		name       string
		symbol     string
		expectBase string
	}{
		{"plain consonant", "t", "t"},
		{"digit stripped", "t2", "t"},
		{"brackets stripped", "[ng]", "ng"},
		{"bracket and digit", "[ah]3", "ah"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k := New(tc.symbol, 0, false)
			assert.Equal(t, tc.expectBase, k.BaseSymbol())
		})
	}
}

func Test_Keysymbol_String(t *testing.T) {
	testCases := []struct {
		name     string
		ks       Keysymbol
		expect   string
	}{
		{"bare", New("t", 0, false), "t"},
		{"stressed", New("ae", 1, false), "ae!1"},
		{"optional", New("y", 0, true), "y?"},
		{"stressed and optional", New("uu", 1, true), "uu!1?"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.ks.String())
		})
	}
}

func Test_IsVowel(t *testing.T) {
	testCases := []struct {
		name   string
		symbol string
		expect bool
	}{
		{"a is a vowel", "a", true},
		{"ae is a vowel", "ae", true},
		{"t is a consonant", "t", false},
		{"ng is a consonant", "ng", false},
		{"stress annotation does not affect classification", "ae", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k := New(tc.symbol, 1, false)
			assert.Equal(t, tc.expect, k.IsVowel())
			assert.Equal(t, !tc.expect, k.IsConsonant())
		})
	}
}

func Test_StressMarker(t *testing.T) {
	assert.Equal(t, "", StressMarker(0))
	assert.Equal(t, "!1", StressMarker(1))
	assert.Equal(t, "!5", StressMarker(5))
}

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertParsingReversible(t *testing.T, sophemeSeq string) {
	t.Helper()
	entities, err := ParseEntryDefinition(sophemeSeq)
	require.NoError(t, err)

	parts := make([]string, len(entities))
	for i, e := range entities {
		parts[i] = e.String()
	}
	assert.Equal(t, sophemeSeq, strings.Join(parts, " "))
}

func Test_ParseEntryDefinition_roundTrip(t *testing.T) {
	testCases := []string{
		"a.@!2?",
		"h.h y.ae!1 d.d r.r o.@ g.jh e.E5 n.n",
		"a.a n.ng x.(g z) i.ae!1 e.@ t.t y.iy",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			assertParsingReversible(t, tc)
		})
	}
}

func Test_ParseEntryDefinition_transclusion(t *testing.T) {
	entities, err := ParseEntryDefinition("d.d r.r {agon}")
	require.NoError(t, err)
	require.Len(t, entities, 3)
	assert.Equal(t, "{agon}", entities[2].String())
}

func Test_ParseEntryDefinition_transclusionWithStress(t *testing.T) {
	entities, err := ParseEntryDefinition("{amphi}!1")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "{amphi}!1", entities[0].String())
}

func Test_ParseEntryDefinition_parenAtEntityLevelIsNotRawDef(t *testing.T) {
	// RawDef only ever arises from pipe output built on top of parsed
	// entities; raw parser output produces only sophemes and
	// transclusions, so a leading "(" at entity level (rather than inside
	// a sopheme's phonology) is a parse error, not an anonymous raw def.
	_, err := ParseEntryDefinition("(a.a b.b) c.c")
	require.Error(t, err)
}

func Test_ParseSophemeSeq_roundTrip(t *testing.T) {
	sophemes, err := ParseSophemeSeq("h.h y.ae!1 d.d")
	require.NoError(t, err)
	require.Len(t, sophemes, 3)
	assert.Equal(t, "h.h", sophemes[0].String())
}

func Test_ParseKeysymbolSeq(t *testing.T) {
	keysymbols, err := ParseKeysymbolSeq("h y!1 d?")
	require.NoError(t, err)
	require.Len(t, keysymbols, 3)
	assert.Equal(t, "h", keysymbols[0].String())
	assert.Equal(t, "y!1", keysymbols[1].String())
	assert.Equal(t, "d?", keysymbols[2].String())
}

func Test_ParseEntryDefinition_errorOnMissingDot(t *testing.T) {
	_, err := ParseEntryDefinition("ab")
	require.Error(t, err)

	var perr ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "Expected")
}

func Test_ParseEntryDefinition_empty(t *testing.T) {
	entities, err := ParseEntryDefinition("")
	require.NoError(t, err)
	assert.Empty(t, entities)
}

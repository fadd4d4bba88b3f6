package flag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sophtrie/trie"
)

func Test_Manager_FlagAndLookup(t *testing.T) {
	m := NewManager()
	silent := m.NewFlag("silent e elision")
	prefix := m.NewFlag("prefix split")

	key := trie.NewTransitionCostKey(trie.NewTransitionKey(0, 1, 0), 5)

	m.FlagTransition(key, silent)
	m.FlagTransition(key, prefix)

	assert.Equal(t, []int{silent, prefix}, m.GetFlags(key))
	assert.Equal(t, "silent e elision", m.GetLabel(silent))
	assert.Equal(t, "prefix split", m.GetLabel(prefix))
}

func Test_Manager_GetFlags_untaggedKeyIsNil(t *testing.T) {
	m := NewManager()
	key := trie.NewTransitionCostKey(trie.NewTransitionKey(0, 1, 0), 5)
	assert.Nil(t, m.GetFlags(key))
}

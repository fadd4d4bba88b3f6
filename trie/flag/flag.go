// Package flag tags individual trie transitions with caller-defined labels
// (e.g. "silent e elision", "prefix split") without the trie package
// itself needing to know what those labels mean.
package flag

import "github.com/dekarrin/sophtrie/trie"

// Flag is a named tag that a Manager can attach to trie transitions.
type Flag struct {
	Label string
}

// NewFlag creates a Flag with the given label.
func NewFlag(label string) Flag {
	return Flag{Label: label}
}

// Manager assigns flags to specific (transition, translation) pairs and
// tracks which flags apply to which.
type Manager struct {
	mappings  map[trie.TransitionCostKey][]int
	flagTypes []Flag
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{mappings: make(map[trie.TransitionCostKey][]int)}
}

// NewFlag registers a new flag type with the given label and returns its
// index for use with FlagTransition.
func (m *Manager) NewFlag(label string) int {
	m.flagTypes = append(m.flagTypes, NewFlag(label))
	return len(m.flagTypes) - 1
}

// FlagTransition tags key with the flag at flagIndex.
func (m *Manager) FlagTransition(key trie.TransitionCostKey, flagIndex int) {
	m.mappings[key] = append(m.mappings[key], flagIndex)
}

// GetLabel returns the label registered for flagIndex.
func (m *Manager) GetLabel(flagIndex int) string {
	return m.flagTypes[flagIndex].Label
}

// GetFlags returns the flag indices tagged onto key, or nil if none.
func (m *Manager) GetFlags(key trie.TransitionCostKey) []int {
	return m.mappings[key]
}

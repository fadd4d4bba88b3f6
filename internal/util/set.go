package util

// StringSet is a map[string]bool with a handful of convenience methods for
// tracking membership, used for things like the open-varname set walked
// during a transclusion expansion.
type StringSet map[string]bool

// NewStringSet creates an empty StringSet, optionally seeded with the keys
// of any maps passed in.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

// Add adds value to the set. No effect if it's already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Remove removes value from the set. No effect if it isn't present.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

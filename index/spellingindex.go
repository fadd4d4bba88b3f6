// Package index builds a full-text index over every resolvable
// translation in a dictionary, for locating which dictionary entries
// produced a given spelled substring.
package index

import (
	"github.com/coregx/ahocorasick"

	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/view"
)

// Match is one entry whose translation overlaps a scanned span of text.
type Match struct {
	Varname string
	Start   int
	End     int
}

// SpellingIndex is an Aho-Corasick automaton over every dict entry's
// Translation() output, letting FindIn locate every entry spelled inside
// an arbitrary piece of text in a single linear scan.
type SpellingIndex struct {
	ac       *ahocorasick.Automaton
	varnames []string
}

// Build indexes every varname in dd whose view resolves to a translation
// without error. Entries with unresolved transclusions or circular
// dependencies are skipped rather than failing the whole build.
func Build(dd *def.DefDict) (*SpellingIndex, error) {
	var patterns []string
	var varnames []string

	for _, varname := range dd.Varnames() {
		v, err := view.GetEntry(dd, varname)
		if err != nil {
			continue
		}
		translation, err := v.Translation()
		if err != nil {
			continue
		}
		if translation == "" {
			continue
		}

		patterns = append(patterns, translation)
		varnames = append(varnames, varname)
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		Build()
	if err != nil {
		return nil, err
	}

	return &SpellingIndex{ac: automaton, varnames: varnames}, nil
}

// FindIn returns every indexed entry whose translation occurs somewhere
// in text, with byte offsets into text.
func (si *SpellingIndex) FindIn(text string) []Match {
	if si.ac == nil {
		return nil
	}

	found := si.ac.FindAllOverlapping([]byte(text))
	results := make([]Match, 0, len(found))
	for _, m := range found {
		results = append(results, Match{
			Varname: si.varnames[m.PatternID],
			Start:   m.Start,
			End:     m.End,
		})
	}
	return results
}

// Len returns the number of entries currently indexed.
func (si *SpellingIndex) Len() int {
	return len(si.varnames)
}

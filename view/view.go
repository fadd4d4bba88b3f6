package view

import (
	"strings"

	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/internal/util"
	"github.com/dekarrin/sophtrie/sperr"
)

// DefView is a rooted, lazily expanded view over a DefDict: the starting
// point for a DefViewCursor walk, translation-string extraction, and
// positional lookups. Its four positional anchors (first/last
// consonant/vowel) are computed once at construction.
type DefView struct {
	defs *def.DefDict
	root def.Def

	firstConsonant []int
	lastConsonant  []int
	firstVowel     []int
	lastVowel      []int
	anchorErr      error
}

// NewDefView roots a view at root within defs, computing its positional
// anchors eagerly. If root does not fully resolve (a missing transclusion
// target or a transclusion cycle), the anchors are not computed and the
// anchor methods return the CollectSophemes error instead.
func NewDefView(defs *def.DefDict, root def.Def) (*DefView, error) {
	v := &DefView{defs: defs, root: root}

	if _, err := v.CollectSophemes(); err != nil {
		v.anchorErr = err
		return v, nil
	}

	var err error
	if v.firstConsonant, err = v.computeAnchor(isConsonant, true); err != nil {
		return nil, err
	}
	if v.lastConsonant, err = v.computeAnchor(isConsonant, false); err != nil {
		return nil, err
	}
	if v.firstVowel, err = v.computeAnchor(isVowel, true); err != nil {
		return nil, err
	}
	if v.lastVowel, err = v.computeAnchor(isVowel, false); err != nil {
		return nil, err
	}

	return v, nil
}

// GetEntry roots a new DefView at the definition named varname within defs.
func GetEntry(defs *def.DefDict, varname string) (*DefView, error) {
	d, ok := defs.GetDef(varname)
	if !ok {
		return nil, sperr.MissingEntry(varname)
	}
	return NewDefView(defs, d)
}

// Defs returns the dictionary this view resolves transclusions against.
func (v *DefView) Defs() *def.DefDict { return v.defs }

// Root returns the view's root definition.
func (v *DefView) Root() def.Def { return v.root }

// RootItem returns the view's root as an ItemRef.
func (v *DefView) RootItem() ItemRef { return DefItem(v.root) }

func isConsonant(item ItemRef) bool {
	return item.Kind == ItemKeysymbol && item.Keysymbol().IsConsonant()
}

func isVowel(item ItemRef) bool {
	return item.Kind == ItemKeysymbol && item.Keysymbol().IsVowel()
}

func (v *DefView) computeAnchor(pred func(ItemRef) bool, fromStart bool) ([]int, error) {
	var cur *DefViewCursor
	var err error
	if fromStart {
		cur, err = v.FirstIndex(pred)
	} else {
		cur, err = v.LastIndex(pred)
	}
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}
	return cur.IndexStack(), nil
}

func (v *DefView) cursorFromAnchor(stack []int) (*DefViewCursor, error) {
	if v.anchorErr != nil {
		return nil, v.anchorErr
	}
	if stack == nil {
		return nil, nil
	}
	cur, ok, err := WithIndexStack(v, stack)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &cur, nil
}

// FirstConsonantCur returns a cursor at the view's first consonant
// keysymbol, or nil if the view contains no consonants.
func (v *DefView) FirstConsonantCur() (*DefViewCursor, error) { return v.cursorFromAnchor(v.firstConsonant) }

// LastConsonantCur returns a cursor at the view's last consonant
// keysymbol, or nil if the view contains no consonants.
func (v *DefView) LastConsonantCur() (*DefViewCursor, error) { return v.cursorFromAnchor(v.lastConsonant) }

// FirstVowelCur returns a cursor at the view's first vowel keysymbol, or
// nil if the view contains no vowels.
func (v *DefView) FirstVowelCur() (*DefViewCursor, error) { return v.cursorFromAnchor(v.firstVowel) }

// LastVowelCur returns a cursor at the view's last vowel keysymbol, or nil
// if the view contains no vowels.
func (v *DefView) LastVowelCur() (*DefViewCursor, error) { return v.cursorFromAnchor(v.lastVowel) }

// FirstIndexAfter scans forward from (but excluding) start's position
// until it finds an item satisfying pred, returning a cursor at that item.
// Returns nil if no such item exists before the end of the view.
func (v *DefView) FirstIndexAfter(start DefViewCursor, pred func(ItemRef) bool) (*DefViewCursor, error) {
	cur := start
	for {
		item, ok, err := cur.StepForward()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if pred(item) {
			result := cur
			return &result, nil
		}
	}
}

// LastIndexBefore scans backward from (but excluding) start's position
// until it finds an item satisfying pred, returning a cursor at that item.
// Returns nil if no such item exists before the start of the view.
func (v *DefView) LastIndexBefore(start DefViewCursor, pred func(ItemRef) bool) (*DefViewCursor, error) {
	cur := start
	for {
		item, ok, err := cur.StepBackward()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if pred(item) {
			result := cur
			return &result, nil
		}
	}
}

// FirstIndex scans the view from its start (inclusive of the first item)
// for the first item satisfying pred.
func (v *DefView) FirstIndex(pred func(ItemRef) bool) (*DefViewCursor, error) {
	return v.FirstIndexAfter(OfViewAtStart(v), pred)
}

// LastIndex scans the view from its end (inclusive of the last item) for
// the first item, walking backward, satisfying pred.
func (v *DefView) LastIndex(pred func(ItemRef) bool) (*DefViewCursor, error) {
	end, err := OfViewAtEnd(v)
	if err != nil {
		return nil, err
	}

	item, ok, err := end.Peek()
	if err != nil {
		return nil, err
	}
	if ok && pred(item) {
		result := end
		return &result, nil
	}

	return v.LastIndexBefore(end, pred)
}

// Read deterministically descends along indexes from the view's root,
// returning the item found. ok is false (nil error) if an index was out
// of range; err is non-nil if a transclusion along the path targets a
// missing varname.
func (v *DefView) Read(indexes []int) (item ItemRef, ok bool, err error) {
	cur := v.RootItem()
	for _, idx := range indexes {
		cur, ok, err = cur.Child(idx, v.defs)
		if err != nil {
			return ItemRef{}, false, err
		}
		if !ok {
			return ItemRef{}, false, nil
		}
	}
	return cur, true, nil
}

// Foreach walks the view in DFS preorder, invoking callback with each item
// and the cursor positioned at it.
func (v *DefView) Foreach(callback func(ItemRef, *DefViewCursor)) error {
	cur := OfViewAtStart(v)
	for {
		item, ok, err := cur.StepForward()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		callback(item, &cur)
	}
	return nil
}

// CollectSophemes expands the view's entities depth-first into a flat
// sequence of Sophemes, resolving transclusions on demand. It fails with
// sperr.ErrCircularDependency if a transclusion re-enters a varname still
// open on the walk, and sperr.ErrMissingEntry if a transclusion's target
// does not exist.
func (v *DefView) CollectSophemes() ([]def.Sopheme, error) {
	var sophemes []def.Sopheme
	open := util.NewStringSet()
	rootVarname := v.root.Varname

	var walkDef func(d def.Def) error
	walkDef = func(d def.Def) error {
		open.Add(d.Varname)
		for _, e := range d.Entities {
			switch e.Kind {
			case def.EntityKindSopheme:
				sophemes = append(sophemes, e.Sopheme)

			case def.EntityKindTransclusion:
				target := e.Transclusion.TargetVarname
				if open.Has(target) {
					return sperr.CircularDependency(rootVarname, target)
				}
				inner, ok := v.defs.GetDef(target)
				if !ok {
					return sperr.MissingEntry(target)
				}
				if err := walkDef(inner); err != nil {
					return err
				}

			case def.EntityKindRawDef:
				if err := walkDef(e.RawDef); err != nil {
					return err
				}
			}
		}
		open.Remove(d.Varname)
		return nil
	}

	if err := walkDef(v.root); err != nil {
		return nil, err
	}
	return sophemes, nil
}

// Translation returns the concatenation of every sopheme's chars in
// CollectSophemes order.
func (v *DefView) Translation() (string, error) {
	sophemes, err := v.CollectSophemes()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, s := range sophemes {
		sb.WriteString(s.Chars)
	}
	return sb.String(), nil
}

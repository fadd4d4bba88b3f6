package view

import (
	"strings"

	"github.com/dekarrin/sophtrie/sperr"
)

// DefViewCursor is a stack of ChildCursors: the bottom frame iterates the
// view root's own children, and each further frame iterates one level
// deeper. It supports DFS preorder/postorder stepping, index-stack
// serialization, and the view's neighborhood queries.
type DefViewCursor struct {
	view  *DefView
	stack []ChildCursor
}

// OfViewAtStart returns a cursor positioned before the view's first item.
func OfViewAtStart(v *DefView) DefViewCursor {
	return DefViewCursor{
		view:  v,
		stack: []ChildCursor{NewChildCursorAtStart(v.RootItem())},
	}
}

// OfViewAtEnd returns a cursor positioned at the view's last item.
func OfViewAtEnd(v *DefView) (DefViewCursor, error) {
	c := DefViewCursor{
		view:  v,
		stack: []ChildCursor{NewChildCursorAtEnd(v.RootItem())},
	}
	if err := c.drillInBackward(); err != nil {
		return DefViewCursor{}, err
	}
	return c, nil
}

// WithIndexStack reconstructs a cursor from a serialized position: the
// sequence of child indices chosen at each depth (NoIndex entries are
// valid for a trailing before-first frame). ok is false if any index in
// the stack was out of range for its level.
func WithIndexStack(v *DefView, indexes []int) (cursor DefViewCursor, ok bool, err error) {
	if len(indexes) == 0 {
		return DefViewCursor{view: v, stack: nil}, true, nil
	}

	c := DefViewCursor{
		view:  v,
		stack: []ChildCursor{NewChildCursor(v.RootItem(), indexes[0])},
	}

	for _, idx := range indexes[1:] {
		stepped, err := c.StepInAt(idx)
		if err != nil {
			return DefViewCursor{}, false, err
		}
		if !stepped {
			return DefViewCursor{}, false, nil
		}
	}

	if indexes[len(indexes)-1] != NoIndex {
		_, inRange, err := c.Peek()
		if err != nil {
			return DefViewCursor{}, false, err
		}
		if !inRange {
			return DefViewCursor{}, false, nil
		}
	}

	return c, true, nil
}

// View returns the view this cursor walks.
func (c *DefViewCursor) View() *DefView { return c.view }

// Peek returns the item at the current focus: the top frame's peek, or
// the view's root item if the stack is empty.
func (c *DefViewCursor) Peek() (ItemRef, bool, error) {
	if len(c.stack) == 0 {
		return c.view.RootItem(), true, nil
	}
	return c.stack[len(c.stack)-1].Peek(c.view.defs)
}

// StepForward moves to the next item in DFS preorder: first it tries to
// descend into the current item's children; failing that, it advances the
// nearest ancestor frame that still has more children. ok is false at the
// end of the view.
func (c *DefViewCursor) StepForward() (ItemRef, bool, error) {
	if _, err := c.StepInAtStart(); err != nil {
		return ItemRef{}, false, err
	}
	return c.StepOverForward()
}

// StepBackward moves to the previous item in reverse DFS preorder
// (DFS postorder). ok is false when the stack was already empty.
func (c *DefViewCursor) StepBackward() (ItemRef, bool, error) {
	if len(c.stack) == 0 {
		return ItemRef{}, false, nil
	}

	top := &c.stack[len(c.stack)-1]
	_, ok, err := top.Prev(c.view.defs)
	if err != nil {
		return ItemRef{}, false, err
	}

	if ok {
		if err := c.drillInBackward(); err != nil {
			return ItemRef{}, false, err
		}
	} else {
		c.StepOut()
	}

	if len(c.stack) == 0 {
		return ItemRef{}, false, nil
	}
	return c.stack[len(c.stack)-1].Peek(c.view.defs)
}

// StepInAtStart pushes a new frame over the currently selected item's
// children, positioned before the first. Returns false if there is no
// current selection; an item without children (such as a keysymbol)
// still gets a frame, which has no child to advance to.
func (c *DefViewCursor) StepInAtStart() (bool, error) {
	if len(c.stack) == 0 {
		return false, nil
	}
	top := c.stack[len(c.stack)-1]
	child, ok, err := top.CreateChildIterAtStart(c.view.defs)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	c.stack = append(c.stack, child)
	return true, nil
}

// StepInAtEnd is StepInAtStart, positioned at the last grandchild instead.
func (c *DefViewCursor) StepInAtEnd() (bool, error) {
	if len(c.stack) == 0 {
		return false, nil
	}
	top := c.stack[len(c.stack)-1]
	child, ok, err := top.CreateChildIterAtEnd(c.view.defs)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	c.stack = append(c.stack, child)
	return true, nil
}

// StepInAt is StepInAtStart, positioned at a specific index instead.
func (c *DefViewCursor) StepInAt(index int) (bool, error) {
	if len(c.stack) == 0 {
		return false, nil
	}
	top := c.stack[len(c.stack)-1]
	child, ok, err := top.CreateChildIterAt(c.view.defs, index)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	c.stack = append(c.stack, child)
	return true, nil
}

// StepOverForward advances the top frame; if it is exhausted, pops and
// retries at the parent. Returns the next item in DFS preorder, or
// ok=false at the end of the view, where the root frame stays on the stack
// one past its last child so that StepBackward can walk back from there.
func (c *DefViewCursor) StepOverForward() (ItemRef, bool, error) {
	for {
		if len(c.stack) == 0 {
			return ItemRef{}, false, nil
		}
		top := &c.stack[len(c.stack)-1]
		item, ok, err := top.Next(c.view.defs)
		if err != nil {
			return ItemRef{}, false, err
		}
		if ok {
			return item, true, nil
		}
		if len(c.stack) == 1 {
			if n := top.itemRef.NChildren(); top.index > n {
				top.index = n
			}
			return ItemRef{}, false, nil
		}
		c.StepOut()
	}
}

// drillInBackward repeatedly steps in at the end of each new frame, then
// discards the final before-first frame that results — leaving the cursor
// positioned at the deepest last descendant.
func (c *DefViewCursor) drillInBackward() error {
	for {
		ok, err := c.StepInAtEnd()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	return nil
}

// StepOut pops the innermost frame.
func (c *DefViewCursor) StepOut() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Indexes projects the frame stack to its sequence of chosen indices,
// stopping at (and excluding) the first before-first frame.
func (c *DefViewCursor) Indexes() []int {
	out := make([]int, 0, len(c.stack))
	for _, frame := range c.stack {
		if frame.Index() == NoIndex {
			break
		}
		out = append(out, frame.Index())
	}
	return out
}

// IndexStack is an alias for Indexes, matching the vocabulary used for
// cursor serialization and comparison elsewhere in this package.
func (c *DefViewCursor) IndexStack() []int {
	return c.Indexes()
}

// PrevKeysymbolCur scans backward from (but excluding) the current
// position until it finds a keysymbol item.
func (c *DefViewCursor) PrevKeysymbolCur() (*DefViewCursor, error) {
	return c.view.LastIndexBefore(*c, isKeysymbol)
}

// NextKeysymbolCur scans forward from (but excluding) the current
// position until it finds a keysymbol item.
func (c *DefViewCursor) NextKeysymbolCur() (*DefViewCursor, error) {
	return c.view.FirstIndexAfter(*c, isKeysymbol)
}

func isKeysymbol(item ItemRef) bool {
	return item.Kind == ItemKeysymbol
}

// OccursBefore reports whether this cursor's position is lexicographically
// before other's. A nil other is treated as "later than anything", so
// this always returns true in that case.
func (c *DefViewCursor) OccursBefore(other *DefViewCursor) bool {
	if other == nil {
		return true
	}
	return seqLessThan(c.Indexes(), other.Indexes())
}

// OccursAfter reports whether this cursor's position is lexicographically
// after other's. A nil other makes this return true, the same as
// OccursBefore does.
func (c *DefViewCursor) OccursAfter(other *DefViewCursor) bool {
	if other == nil {
		return true
	}
	return seqLessThan(other.Indexes(), c.Indexes())
}

// OccursBeforeFirstConsonant reports whether this cursor occurs before the
// view's first consonant.
func (c *DefViewCursor) OccursBeforeFirstConsonant() (bool, error) {
	anchor, err := c.view.FirstConsonantCur()
	if err != nil {
		return false, err
	}
	return c.OccursBefore(anchor), nil
}

// OccursAfterLastConsonant reports whether this cursor occurs after the
// view's last consonant.
func (c *DefViewCursor) OccursAfterLastConsonant() (bool, error) {
	anchor, err := c.view.LastConsonantCur()
	if err != nil {
		return false, err
	}
	return c.OccursAfter(anchor), nil
}

// OccursBeforeFirstVowel reports whether this cursor occurs before the
// view's first vowel.
func (c *DefViewCursor) OccursBeforeFirstVowel() (bool, error) {
	anchor, err := c.view.FirstVowelCur()
	if err != nil {
		return false, err
	}
	return c.OccursBefore(anchor), nil
}

// OccursAfterLastVowel reports whether this cursor occurs after the
// view's last vowel.
func (c *DefViewCursor) OccursAfterLastVowel() (bool, error) {
	anchor, err := c.view.LastVowelCur()
	if err != nil {
		return false, err
	}
	return c.OccursAfter(anchor), nil
}

// SpellingIncludingSilent renders the current item's sopheme chars
// together with the chars of every contiguous, can-be-silent sopheme
// neighboring it on either side.
func (c *DefViewCursor) SpellingIncludingSilent() (string, error) {
	var backward []string
	{
		cur := DefViewCursor{view: c.view, stack: append([]ChildCursor(nil), c.stack...)}
		for {
			item, ok, err := cur.StepBackward()
			if err != nil {
				return "", err
			}
			if !ok {
				break
			}
			if item.Kind == ItemSopheme {
				if !item.Sopheme().CanBeSilent() {
					break
				}
				backward = append(backward, item.Sopheme().Chars)
			}
		}
	}

	var all []string
	for i := len(backward) - 1; i >= 0; i-- {
		all = append(all, backward[i])
	}

	item, ok, err := c.Peek()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", sperr.New("cursor does not peek at any item", sperr.ErrUnexpectedNone)
	}
	if item.Kind == ItemSopheme {
		all = append(all, item.Sopheme().Chars)
	}

	{
		cur := DefViewCursor{view: c.view, stack: append([]ChildCursor(nil), c.stack...)}
		for {
			item, ok, err := cur.StepForward()
			if err != nil {
				return "", err
			}
			if !ok {
				break
			}
			if item.Kind == ItemSopheme {
				if !item.Sopheme().CanBeSilent() {
					break
				}
				all = append(all, item.Sopheme().Chars)
			}
		}
	}

	return strings.Join(all, ""), nil
}

// seqLessThan reports whether seqA is lexicographically less than seqB,
// with a shorter sequence that is a prefix of the other considered less.
func seqLessThan(seqA, seqB []int) bool {
	for i, a := range seqA {
		if i >= len(seqB) {
			return false
		}
		b := seqB[i]
		if a < b {
			return true
		}
		if a > b {
			return false
		}
	}
	return len(seqA) < len(seqB)
}

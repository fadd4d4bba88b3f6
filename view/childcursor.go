package view

import "github.com/dekarrin/sophtrie/def"

// NoIndex is the sentinel ChildCursor.Index value meaning "before the first
// child" — there is no int value that can double as both a valid index and
// a not-yet-started marker, so -1 plays that role throughout this package.
const NoIndex = -1

// ChildCursor is a single-level iterator over one item's children. index
// is NoIndex when positioned before the first child, or a valid child
// index otherwise.
type ChildCursor struct {
	itemRef ItemRef
	index   int
}

// NewChildCursorAtStart creates a ChildCursor over itemRef's children,
// positioned before the first child.
func NewChildCursorAtStart(itemRef ItemRef) ChildCursor {
	return ChildCursor{itemRef: itemRef, index: NoIndex}
}

// NewChildCursorAtEnd creates a ChildCursor over itemRef's children,
// positioned at the last child (or before-first if it has none).
func NewChildCursorAtEnd(itemRef ItemRef) ChildCursor {
	n := itemRef.NChildren()
	if n > 0 {
		return ChildCursor{itemRef: itemRef, index: n - 1}
	}
	return ChildCursor{itemRef: itemRef, index: NoIndex}
}

// NewChildCursor creates a ChildCursor over itemRef's children positioned
// at the given index (which may be NoIndex).
func NewChildCursor(itemRef ItemRef, index int) ChildCursor {
	return ChildCursor{itemRef: itemRef, index: index}
}

// CreateChildIterAtStart spawns a new ChildCursor over the currently
// selected child's own children, positioned before its first child. It
// returns ok=false if this cursor has no selection (index == NoIndex) or
// the selected index is out of range. A selection without children of its
// own still yields ok=true, with a cursor that has nothing to advance to.
func (c ChildCursor) CreateChildIterAtStart(defs *def.DefDict) (ChildCursor, bool, error) {
	if c.index == NoIndex {
		return ChildCursor{}, false, nil
	}
	child, ok, err := c.itemRef.Child(c.index, defs)
	if err != nil {
		return ChildCursor{}, false, err
	}
	if !ok {
		return ChildCursor{}, false, nil
	}
	return NewChildCursorAtStart(child), true, nil
}

// CreateChildIterAtEnd is CreateChildIterAtStart, but positions the new
// cursor at the selected child's last grandchild.
func (c ChildCursor) CreateChildIterAtEnd(defs *def.DefDict) (ChildCursor, bool, error) {
	if c.index == NoIndex {
		return ChildCursor{}, false, nil
	}
	child, ok, err := c.itemRef.Child(c.index, defs)
	if err != nil {
		return ChildCursor{}, false, err
	}
	if !ok {
		return ChildCursor{}, false, nil
	}
	return NewChildCursorAtEnd(child), true, nil
}

// CreateChildIterAt is CreateChildIterAtStart, but positions the new
// cursor at the given childIndex (which may be NoIndex).
func (c ChildCursor) CreateChildIterAt(defs *def.DefDict, childIndex int) (ChildCursor, bool, error) {
	if c.index == NoIndex {
		return ChildCursor{}, false, nil
	}
	child, ok, err := c.itemRef.Child(c.index, defs)
	if err != nil {
		return ChildCursor{}, false, err
	}
	if !ok {
		return ChildCursor{}, false, nil
	}
	return NewChildCursor(child, childIndex), true, nil
}

// Peek returns the item at the current index, or ok=false if positioned
// before the first child.
func (c ChildCursor) Peek(defs *def.DefDict) (ItemRef, bool, error) {
	if c.index == NoIndex {
		return ItemRef{}, false, nil
	}
	return c.itemRef.Child(c.index, defs)
}

// Next advances the index by one (from NoIndex to 0) and peeks.
func (c *ChildCursor) Next(defs *def.DefDict) (ItemRef, bool, error) {
	c.incr()
	return c.Peek(defs)
}

// Prev retreats the index by one (to NoIndex at 0) and peeks.
func (c *ChildCursor) Prev(defs *def.DefDict) (ItemRef, bool, error) {
	c.decr()
	return c.Peek(defs)
}

func (c *ChildCursor) incr() {
	if c.index == NoIndex {
		c.index = 0
	} else {
		c.index++
	}
}

func (c *ChildCursor) decr() {
	if c.index == NoIndex {
		return
	}
	if c.index == 0 {
		c.index = NoIndex
	} else {
		c.index--
	}
}

// Index returns the current index, or NoIndex if positioned before the
// first child.
func (c ChildCursor) Index() int {
	return c.index
}

// Package view implements a rooted, lazily expanded view over a def.DefDict,
// plus the cursor algebra (ItemRef, ChildCursor, DefViewCursor) used to walk
// it. ItemRef and the cursor types share this package with DefView because
// they are mutually recursive: DefViewCursor needs DefView.Defs()/RootItem(),
// while DefView's neighborhood queries construct and return DefViewCursors.
package view

import (
	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/dekarrin/sophtrie/sperr"
)

// ItemKind discriminates the variant an ItemRef currently holds.
type ItemKind int

const (
	// ItemDef is a whole definition: the view's root, or an inlined RawDef.
	ItemDef ItemKind = iota
	// ItemEntityList is an entity sequence reached via a transclusion; the
	// varname is carried for diagnostics only.
	ItemEntityList
	// ItemSopheme is a single sopheme, whose children are its keysymbols.
	ItemSopheme
	// ItemKeysymbol is a leaf; it has no children.
	ItemKeysymbol
)

// ItemRef is a typed pointer into the current frontier of a live traversal:
// a Def, an entity list reached through a transclusion, a Sopheme, or a
// Keysymbol.
type ItemRef struct {
	Kind ItemKind

	def              def.Def
	entityList       []def.Entity
	entityListSource string
	entityListStress uint8
	sopheme          def.Sopheme
	keysymbol        keysymbol.Keysymbol
}

// DefItem wraps a Def as an ItemRef.
func DefItem(d def.Def) ItemRef {
	return ItemRef{Kind: ItemDef, def: d}
}

// EntityListItem wraps an entity sequence reached via a transclusion to
// varname, carrying the stress override (0 meaning none) the transclusion
// specified. Core navigation never applies this stress; it is carried
// through purely for pipe-level collaborators to interpret, the same way
// def.Transclusion.Stress itself is.
func EntityListItem(entities []def.Entity, varname string, stress uint8) ItemRef {
	return ItemRef{Kind: ItemEntityList, entityList: entities, entityListSource: varname, entityListStress: stress}
}

// SophemeItem wraps a Sopheme as an ItemRef.
func SophemeItem(s def.Sopheme) ItemRef {
	return ItemRef{Kind: ItemSopheme, sopheme: s}
}

// KeysymbolItem wraps a Keysymbol as an ItemRef.
func KeysymbolItem(k keysymbol.Keysymbol) ItemRef {
	return ItemRef{Kind: ItemKeysymbol, keysymbol: k}
}

// Def returns the wrapped Def. Only meaningful when Kind == ItemDef.
func (ir ItemRef) Def() def.Def { return ir.def }

// EntityList returns the wrapped entity sequence. Only meaningful when
// Kind == ItemEntityList.
func (ir ItemRef) EntityList() []def.Entity { return ir.entityList }

// EntityListVarname returns the transclusion target varname that produced
// this entity list, for diagnostics. Only meaningful when
// Kind == ItemEntityList.
func (ir ItemRef) EntityListVarname() string { return ir.entityListSource }

// EntityListStress returns the stress override (0 meaning none) of the
// transclusion that produced this entity list. Only meaningful when
// Kind == ItemEntityList.
func (ir ItemRef) EntityListStress() uint8 { return ir.entityListStress }

// Sopheme returns the wrapped Sopheme. Only meaningful when
// Kind == ItemSopheme.
func (ir ItemRef) Sopheme() def.Sopheme { return ir.sopheme }

// Keysymbol returns the wrapped Keysymbol. Only meaningful when
// Kind == ItemKeysymbol.
func (ir ItemRef) Keysymbol() keysymbol.Keysymbol { return ir.keysymbol }

// NChildren reports how many children this item has: 0 for a keysymbol,
// the keysymbol count for a sopheme, the entity count for a def or
// entity-list.
func (ir ItemRef) NChildren() int {
	switch ir.Kind {
	case ItemDef:
		return ir.def.NChildren()
	case ItemEntityList:
		return len(ir.entityList)
	case ItemSopheme:
		return ir.sopheme.NChildren()
	default:
		return 0
	}
}

func entityChild(e def.Entity, defs *def.DefDict) (ItemRef, bool, error) {
	switch e.Kind {
	case def.EntityKindSopheme:
		return SophemeItem(e.Sopheme), true, nil

	case def.EntityKindTransclusion:
		entities, ok := defs.Get(e.Transclusion.TargetVarname)
		if !ok {
			return ItemRef{}, false, sperr.MissingEntry(e.Transclusion.TargetVarname)
		}
		return EntityListItem(entities, e.Transclusion.TargetVarname, e.Transclusion.Stress), true, nil

	case def.EntityKindRawDef:
		return DefItem(e.RawDef), true, nil

	default:
		return ItemRef{}, false, sperr.New("unrecognized entity kind", sperr.ErrUnexpectedChildItemType)
	}
}

// Child resolves the i-th child of this item. For a transclusion-bearing
// entity, the returned ItemRef is an entity list over the resolved target.
// ok is false (with a nil error) when i is out of range; err is non-nil
// when the child is a transclusion whose target varname is missing from
// defs.
func (ir ItemRef) Child(i int, defs *def.DefDict) (item ItemRef, ok bool, err error) {
	switch ir.Kind {
	case ItemDef:
		e, inRange := ir.def.Child(i)
		if !inRange {
			return ItemRef{}, false, nil
		}
		return entityChild(e, defs)

	case ItemEntityList:
		if i < 0 || i >= len(ir.entityList) {
			return ItemRef{}, false, nil
		}
		return entityChild(ir.entityList[i], defs)

	case ItemSopheme:
		k, inRange := ir.sopheme.Child(i)
		if !inRange {
			return ItemRef{}, false, nil
		}
		return KeysymbolItem(k), true, nil

	default: // ItemKeysymbol
		return ItemRef{}, false, nil
	}
}

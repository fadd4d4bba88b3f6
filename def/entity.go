package def

// EntityKind discriminates the tagged union Entity represents.
type EntityKind int

const (
	// EntityKindSopheme marks an Entity holding a Sopheme.
	EntityKindSopheme EntityKind = iota
	// EntityKindTransclusion marks an Entity holding a Transclusion.
	EntityKindTransclusion
	// EntityKindRawDef marks an Entity holding an inline, anonymous Def.
	EntityKindRawDef
)

// Entity is one item in a Def's entity sequence: a Sopheme, a Transclusion,
// or an inline RawDef (a nested, unnamed Def).
type Entity struct {
	Kind         EntityKind
	Sopheme      Sopheme
	Transclusion Transclusion
	RawDef       Def
}

// NewSophemeEntity wraps a Sopheme as an Entity.
func NewSophemeEntity(s Sopheme) Entity {
	return Entity{Kind: EntityKindSopheme, Sopheme: s}
}

// NewTransclusionEntity wraps a Transclusion as an Entity.
func NewTransclusionEntity(t Transclusion) Entity {
	return Entity{Kind: EntityKindTransclusion, Transclusion: t}
}

// NewRawDefEntity wraps a Def as an inline RawDef Entity.
func NewRawDefEntity(d Def) Entity {
	return Entity{Kind: EntityKindRawDef, RawDef: d}
}

// String renders the entity in its canonical text form. A RawDef entity is
// parenthesized around its child def's own rendering.
func (e Entity) String() string {
	switch e.Kind {
	case EntityKindSopheme:
		return e.Sopheme.String()
	case EntityKindTransclusion:
		return e.Transclusion.String()
	case EntityKindRawDef:
		return "(" + e.RawDef.String() + ")"
	default:
		return ""
	}
}

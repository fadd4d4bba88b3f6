package def

import (
	"strings"

	"github.com/google/uuid"
)

// Def is a named, ordered sequence of entities: the full definition for one
// dictionary varname, or an anonymous nested RawDef.
type Def struct {
	Varname  string
	Entities []Entity
}

// NewDef creates a Def from an explicit varname and entity sequence.
func NewDef(varname string, entities []Entity) Def {
	return Def{Varname: varname, Entities: entities}
}

// NewAnonymous creates a Def for an inline RawDef entity that has no
// dictionary varname of its own; this only ever arises from pipe-built
// output, never from raw parser output. Its varname is a unique,
// unparseable sentinel ("~raw:<uuid>") so it can never collide with a real
// dictionary entry's varname in the cycle-detection set a DefView walk
// maintains (see view.DefView.Translation).
func NewAnonymous(entities []Entity) Def {
	return Def{Varname: "~raw:" + uuid.NewString(), Entities: entities}
}

// Child returns the entity at index, and whether index was in range.
func (d Def) Child(index int) (Entity, bool) {
	if index < 0 || index >= len(d.Entities) {
		return Entity{}, false
	}
	return d.Entities[index], true
}

// NChildren returns the number of entities in the def.
func (d Def) NChildren() int {
	return len(d.Entities)
}

// String renders the def's entities in canonical text form, space-joined.
func (d Def) String() string {
	parts := make([]string, len(d.Entities))
	for i, e := range d.Entities {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

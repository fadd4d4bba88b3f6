package def

// DefDict maps varnames to their entity sequences: the compiled form of a
// dictionary source file, before any DefView is rooted over it.
type DefDict struct {
	entries map[string][]Entity
}

// NewDefDict creates an empty DefDict.
func NewDefDict() *DefDict {
	return &DefDict{entries: make(map[string][]Entity)}
}

// Add inserts or replaces the entity sequence for varname.
func (d *DefDict) Add(varname string, entities []Entity) {
	d.entries[varname] = entities
}

// Get returns the raw entity sequence stored for varname, and whether it
// was present.
func (d *DefDict) Get(varname string) ([]Entity, bool) {
	entities, ok := d.entries[varname]
	return entities, ok
}

// GetDef returns a Def wrapping varname's entity sequence, and whether it
// was present.
func (d *DefDict) GetDef(varname string) (Def, bool) {
	entities, ok := d.entries[varname]
	if !ok {
		return Def{}, false
	}
	return NewDef(varname, entities), true
}

// Varnames returns every varname currently present in the dict. Order is
// unspecified.
func (d *DefDict) Varnames() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of entries in the dict.
func (d *DefDict) Len() int {
	return len(d.entries)
}

package def

import "github.com/dekarrin/sophtrie/keysymbol"

// Transclusion is a named reference to another definition, with an optional
// stress override. Core navigation (view/cursor) never applies Stress; it is
// carried through for pipe-level collaborators to interpret (see
// config.StressPolicy for one such consumer).
type Transclusion struct {
	TargetVarname string
	Stress        uint8
}

// NewTransclusion creates a Transclusion targeting varname with the given
// stress override (0 meaning none).
func NewTransclusion(varname string, stress uint8) Transclusion {
	return Transclusion{TargetVarname: varname, Stress: stress}
}

// String renders the transclusion in its canonical text form: "{varname}",
// with a "!<stress>" suffix when Stress is nonzero.
func (t Transclusion) String() string {
	out := "{" + t.TargetVarname + "}"
	if t.Stress > 0 {
		out += keysymbol.StressMarker(t.Stress)
	}
	return out
}

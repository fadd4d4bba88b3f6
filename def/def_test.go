package def

import (
	"strings"
	"testing"

	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Def_String_mixedEntities(t *testing.T) {
	d := NewDef("dragon", []Entity{
		NewSophemeEntity(NewSopheme("d", []keysymbol.Keysymbol{keysymbol.New("d", 0, false)})),
		NewSophemeEntity(NewSopheme("r", []keysymbol.Keysymbol{keysymbol.New("r", 0, false)})),
		NewTransclusionEntity(NewTransclusion("agon", 0)),
	})
	assert.Equal(t, "d.d r.r {agon}", d.String())
}

func Test_Entity_String_rawDefIsParenthesized(t *testing.T) {
	inner := NewDef("", []Entity{
		NewSophemeEntity(NewSopheme("a", []keysymbol.Keysymbol{keysymbol.New("a", 0, false)})),
	})
	e := NewRawDefEntity(inner)
	assert.Equal(t, "(a.a)", e.String())
}

func Test_Def_Child_boundsChecked(t *testing.T) {
	d := NewDef("x", []Entity{NewSophemeEntity(NewSopheme("x", nil))})

	_, ok := d.Child(0)
	require.True(t, ok)

	_, ok = d.Child(1)
	assert.False(t, ok)
}

func Test_NewAnonymous_producesUniqueUnparseableVarnames(t *testing.T) {
	a := NewAnonymous(nil)
	b := NewAnonymous(nil)

	assert.True(t, strings.HasPrefix(a.Varname, "~raw:"))
	assert.NotEqual(t, a.Varname, b.Varname)
}

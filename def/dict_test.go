package def

import (
	"testing"

	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefDict_AddAndGet(t *testing.T) {
	dict := NewDefDict()
	entities := []Entity{
		NewSophemeEntity(NewSopheme("a", []keysymbol.Keysymbol{keysymbol.New("a", 0, false)})),
	}
	dict.Add("dragon", entities)

	got, ok := dict.Get("dragon")
	require.True(t, ok)
	assert.Equal(t, entities, got)

	_, ok = dict.Get("missing")
	assert.False(t, ok)
}

func Test_DefDict_GetDef_wrapsVarname(t *testing.T) {
	dict := NewDefDict()
	dict.Add("dragon", []Entity{
		NewSophemeEntity(NewSopheme("d", []keysymbol.Keysymbol{keysymbol.New("d", 0, false)})),
	})

	d, ok := dict.GetDef("dragon")
	require.True(t, ok)
	assert.Equal(t, "dragon", d.Varname)
	assert.Equal(t, "d.d", d.String())

	_, ok = dict.GetDef("missing")
	assert.False(t, ok)
}

func Test_DefDict_Len(t *testing.T) {
	dict := NewDefDict()
	assert.Equal(t, 0, dict.Len())
	dict.Add("a", nil)
	dict.Add("b", nil)
	assert.Equal(t, 2, dict.Len())
}

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/keysymbol"
)

func ksym(symbol string) keysymbol.Keysymbol {
	return keysymbol.New(symbol, 0, false)
}

func Test_Build_indexesResolvableEntries(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		def.NewSophemeEntity(def.NewSopheme("d", []keysymbol.Keysymbol{ksym("d")})),
		def.NewSophemeEntity(def.NewSopheme("ragon", []keysymbol.Keysymbol{ksym("r"), ksym("a"), ksym("g"), ksym("o"), ksym("n")})),
	})
	dd.Add("broken", []def.Entity{
		def.NewTransclusionEntity(def.NewTransclusion("missing", 0)),
	})

	idx, err := Build(dd)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
}

func Test_FindIn_locatesIndexedSpelling(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		def.NewSophemeEntity(def.NewSopheme("dragon", []keysymbol.Keysymbol{ksym("d")})),
	})

	idx, err := Build(dd)
	require.NoError(t, err)

	matches := idx.FindIn("a dragon flies")
	require.Len(t, matches, 1)
	assert.Equal(t, "dragon", matches[0].Varname)
	assert.Equal(t, "dragon", "a dragon flies"[matches[0].Start:matches[0].End])
}

func Test_FindIn_noMatch(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		def.NewSophemeEntity(def.NewSopheme("dragon", []keysymbol.Keysymbol{ksym("d")})),
	})

	idx, err := Build(dd)
	require.NoError(t, err)

	assert.Empty(t, idx.FindIn("nothing here"))
}

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/dekarrin/sophtrie/sperr"
)

func sopheme(chars string, syms ...keysymbol.Keysymbol) def.Entity {
	return def.NewSophemeEntity(def.NewSopheme(chars, syms))
}

func trans(varname string, stress uint8) def.Entity {
	return def.NewTransclusionEntity(def.NewTransclusion(varname, stress))
}

func ks(symbol string) keysymbol.Keysymbol {
	return keysymbol.New(symbol, 0, false)
}

func Test_DefView_Translation_simple(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
		sopheme("a", ks("a")),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	translation, err := v.Translation()
	require.NoError(t, err)
	assert.Equal(t, "dra", translation)
}

func Test_DefView_Translation_withTransclusion(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("agon", []def.Entity{
		sopheme("a", ks("a")),
		sopheme("gon", ks("g"), ks("a"), ks("n")),
	})
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
		trans("agon", 0),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	translation, err := v.Translation()
	require.NoError(t, err)
	assert.Equal(t, "dragon", translation)
}

func Test_DefView_CollectSophemes_missingEntry(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		trans("nonexistent", 0),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	_, err = v.CollectSophemes()
	require.Error(t, err)
	assert.ErrorIs(t, err, sperr.ErrMissingEntry)
}

func Test_DefView_CollectSophemes_circularDependency(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("a", []def.Entity{trans("b", 0)})
	dd.Add("b", []def.Entity{trans("a", 0)})

	v, err := GetEntry(dd, "a")
	require.NoError(t, err)

	_, err = v.CollectSophemes()
	require.Error(t, err)
	assert.ErrorIs(t, err, sperr.ErrCircularDependency)

	var serr sperr.Error
	require.ErrorAs(t, err, &serr)
}

func Test_DefView_GetEntry_missingVarname(t *testing.T) {
	dd := def.NewDefDict()
	_, err := GetEntry(dd, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, sperr.ErrMissingEntry)
}

func Test_DefView_Foreach_visitsEveryKeysymbol(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	var keysymbolCount int
	err = v.Foreach(func(item ItemRef, cur *DefViewCursor) {
		if item.Kind == ItemKeysymbol {
			keysymbolCount++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 2, keysymbolCount)
}

func Test_DefView_Read_deterministicDescent(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("gon", ks("g"), ks("a"), ks("n")),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	item, ok, err := v.Read([]int{1, 1})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ItemKeysymbol, item.Kind)
	assert.Equal(t, "a", item.Keysymbol().Symbol())
}

func Test_DefView_Read_outOfRange(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{sopheme("d", ks("d"))})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	_, ok, err := v.Read([]int{5})
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_DefView_FirstAndLastConsonantAnchors(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
		sopheme("a", ks("a")),
		sopheme("g", ks("g")),
		sopheme("o", ks("o")),
		sopheme("n", ks("n")),
	})

	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	first, err := v.FirstConsonantCur()
	require.NoError(t, err)
	require.NotNil(t, first)
	item, ok, err := first.Peek()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "d", item.Keysymbol().Symbol())

	last, err := v.LastConsonantCur()
	require.NoError(t, err)
	require.NotNil(t, last)
	item, ok, err = last.Peek()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "n", item.Keysymbol().Symbol())
}

func Test_DefViewCursor_StepForwardBackward_roundTrip(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
	})
	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	cur := OfViewAtStart(v)
	var forward []string
	for {
		item, ok, err := cur.StepForward()
		require.NoError(t, err)
		if !ok {
			break
		}
		if item.Kind == ItemKeysymbol {
			forward = append(forward, item.Keysymbol().Symbol())
		}
	}
	assert.Equal(t, []string{"d", "r"}, forward)

	var backward []string
	for {
		item, ok, err := cur.StepBackward()
		require.NoError(t, err)
		if !ok {
			break
		}
		if item.Kind == ItemKeysymbol {
			backward = append(backward, item.Keysymbol().Symbol())
		}
	}
	assert.Equal(t, []string{"r", "d"}, backward)
}

func Test_DefViewCursor_OccursBefore(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("dragon", []def.Entity{
		sopheme("d", ks("d")),
		sopheme("r", ks("r")),
	})
	v, err := GetEntry(dd, "dragon")
	require.NoError(t, err)

	first := OfViewAtStart(v)
	_, _, err = first.StepForward()
	require.NoError(t, err)

	second := first
	_, ok, err := second.StepForward()
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, first.OccursBefore(&second))
	assert.True(t, second.OccursAfter(&first))
	assert.True(t, first.OccursBefore(nil))
}

func Test_DefViewCursor_SpellingIncludingSilent(t *testing.T) {
	dd := def.NewDefDict()
	dd.Add("word", []def.Entity{
		sopheme("e", ks("EE")),
		sopheme("", ks("s")),
	})
	v, err := GetEntry(dd, "word")
	require.NoError(t, err)

	cur := OfViewAtStart(v)
	item, ok, err := cur.StepForward()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ItemSopheme, item.Kind)

	spelling, err := cur.SpellingIncludingSilent()
	require.NoError(t, err)
	assert.Equal(t, "e", spelling)
}

package def

import (
	"testing"

	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/stretchr/testify/assert"
)

func Test_Sopheme_String_singleKeysymbol(t *testing.T) {
	s := NewSopheme("ph", []keysymbol.Keysymbol{
		keysymbol.New("f", 0, false),
	})
	assert.Equal(t, "ph.f", s.String())
}

func Test_Sopheme_String_multiKeysymbolIsParenthesized(t *testing.T) {
	s := NewSopheme("u", []keysymbol.Keysymbol{
		keysymbol.New("y", 0, false),
		keysymbol.New("uu", 1, false),
	})
	assert.Equal(t, "u.(y uu!1)", s.String())
}

func Test_Sopheme_CanBeSilent(t *testing.T) {
	allOptional := NewSopheme("e", []keysymbol.Keysymbol{
		keysymbol.New("@", 0, true),
	})
	assert.True(t, allOptional.CanBeSilent())

	mixed := NewSopheme("e", []keysymbol.Keysymbol{
		keysymbol.New("@", 0, true),
		keysymbol.New("ii", 1, false),
	})
	assert.False(t, mixed.CanBeSilent())

	empty := NewSopheme("", nil)
	assert.True(t, empty.CanBeSilent())
}

func Test_Sopheme_Child(t *testing.T) {
	k0 := keysymbol.New("f", 0, false)
	s := NewSopheme("ph", []keysymbol.Keysymbol{k0})

	got, ok := s.Child(0)
	assert.True(t, ok)
	assert.Equal(t, k0, got)

	_, ok = s.Child(1)
	assert.False(t, ok)

	_, ok = s.Child(-1)
	assert.False(t, ok)
}

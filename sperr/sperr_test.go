package sperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MissingEntry_isErrMissingEntry(t *testing.T) {
	err := MissingEntry("dragon")
	assert.True(t, errors.Is(err, ErrMissingEntry))
	assert.Contains(t, err.Error(), "dragon")
}

func Test_CircularDependency_isErrCircularDependency(t *testing.T) {
	err := CircularDependency("dragon", "wyrm")
	assert.True(t, errors.Is(err, ErrCircularDependency))
	assert.Contains(t, err.Error(), "dragon")
	assert.Contains(t, err.Error(), "wyrm")
}

func Test_New_noCauses(t *testing.T) {
	err := New("plain message")
	assert.Equal(t, "plain message", err.Error())
	assert.Nil(t, err.Unwrap())
}

func Test_New_messageAndCauseBothRender(t *testing.T) {
	err := New("wrapping", ErrEmptyStack)
	assert.True(t, errors.Is(err, ErrEmptyStack))
	assert.Equal(t, "wrapping: "+ErrEmptyStack.Error(), err.Error())
}

func Test_New_noMessageFallsBackToFirstCause(t *testing.T) {
	err := New("", ErrIndexOutOfRange)
	assert.Equal(t, ErrIndexOutOfRange.Error(), err.Error())
}

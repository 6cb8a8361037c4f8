package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToPointerIfNotEmpty(t *testing.T) {
	assert.Nil(t, StringToPointerIfNotEmpty(""))

	p := StringToPointerIfNotEmpty("x")
	if assert.NotNil(t, p) {
		assert.Equal(t, "x", *p)
	}
}

func TestFromPointer(t *testing.T) {
	assert.Equal(t, "", FromPointer[string](nil))
	assert.Equal(t, "x", FromPointer(StringToPointer("x")))
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmptyString("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmptyString("", ""))
}

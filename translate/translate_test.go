package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("line 3 'NOP'", From("line %d '%v'", 3, "NOP"))
	assert.Equal("plain", From("plain"))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	before := printer
	assert.Error(SetLanguage("not a language tag!"))
	assert.Same(before, printer)
}

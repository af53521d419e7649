package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestWrapKeepsChain(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.ErrorIs(t, err, errSentinel)
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestExtractStackLines(t *testing.T) {
	lines := ExtractStackLines(WithStack(errSentinel), 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, ExtractStackLines(nil, 3))
}

package colladarender

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {

	err := NewUserError("unknown palette %q", "nope")
	assert.Equal(t, `unknown palette "nope"`, err.Error())
	assert.Nil(t, err.Unwrap())

	assert.Nil(t, WrapUserError(nil, "never"))

	wrapped := WrapUserError(os.ErrNotExist, "%s: can't read mesh file", "ship.dae")
	assert.Equal(t, "ship.dae: can't read mesh file: file does not exist", wrapped.Error())
	assert.True(t, errors.Is(wrapped, os.ErrNotExist))

	assert.True(t, IsUserError(wrapped))
	assert.True(t, IsUserError(errors.Wrap(wrapped, "rendering")))
	assert.False(t, IsUserError(errors.New("boom")))
	assert.False(t, IsUserError(nil))

}

func TestUserErrorIs(t *testing.T) {

	wrapped := WrapUserError(errors.New("image would be 8x0"), "%s", ErrNoExtent.msg)

	assert.True(t, errors.Is(wrapped, ErrNoExtent))
	assert.False(t, errors.Is(wrapped, ErrEmptyScene))
	assert.False(t, errors.Is(ErrEmptyScene, ErrNoExtent))
	assert.False(t, errors.Is(ErrEmptyScene, wrapped), "only sentinels without a cause match by message")

}

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimErrorFormatting(t *testing.T) {
	err := NewSimError(ErrInvalidCard, "card is not a legal rank")
	assert.Equal(t, "INVALID_CARD: card is not a legal rank", err.Error())

	wrapped := WrapError(ErrStorage, "saving run", errors.New("disk full"))
	assert.Equal(t, "STORAGE: saving run (disk full)", wrapped.Error())
}

func TestSimErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(ErrStorage, "saving run", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsSimError(t *testing.T) {
	err := NewSimError(ErrInvalidState, "hand is done")

	assert.True(t, IsSimError(err, ErrInvalidState))
	assert.False(t, IsSimError(err, ErrInvalidCard))
	assert.False(t, IsSimError(nil, ErrInvalidState))
	assert.False(t, IsSimError(errors.New("plain"), ErrInvalidState))

	// Codes survive wrapping with %w.
	outer := fmt.Errorf("playing hand: %w", err)
	assert.True(t, IsSimError(outer, ErrInvalidState))
}

package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorsUnwrapToSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrCollegeNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrFavoriteNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrFavoriteAlreadyExists, ErrConflict)
	assert.ErrorIs(t, ErrReviewRatingRange, ErrValidationFailed)
	assert.Equal(t, "College already in favorites", ErrFavoriteAlreadyExists.Error())
}

func TestIsStoreFailure(t *testing.T) {
	wrapped := fmt.Errorf("%w: find colleges: %w", ErrStoreUnavailable, errors.New("connection refused"))

	assert.True(t, IsStoreFailure(wrapped))
	assert.False(t, IsStoreFailure(nil))
	assert.False(t, IsStoreFailure(ErrCollegeNotFound))
	assert.False(t, IsStoreFailure(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Favorite not found", Message(fmt.Errorf("delete: %w", ErrFavoriteNotFound), "x"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}

func TestIsMatchesAnyInList(t *testing.T) {
	assert.True(t, Is(ErrFavoriteAlreadyExists, ErrResourceNotFound, ErrConflict))
	assert.False(t, Is(ErrFavoriteAlreadyExists, ErrResourceNotFound, ErrBadRequest))
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(InvalidParameters("bad")))
	assert.Equal(t, http.StatusForbidden, StatusCode(Authorization("nope")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("workout")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestStatusCodeSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("updating workout: %w", Authorization("owner mismatch"))
	assert.Equal(t, http.StatusForbidden, StatusCode(wrapped))
}

func TestFromGorm(t *testing.T) {
	assert.NoError(t, FromGorm(nil, "workout"))

	err := FromGorm(gorm.ErrRecordNotFound, "workout")
	assert.ErrorIs(t, err, ErrNotFound)

	err = FromGorm(gorm.ErrDuplicatedKey, "user")
	assert.ErrorIs(t, err, ErrInvalidParameters)

	plain := errors.New("connection refused")
	assert.Equal(t, plain, FromGorm(plain, "workout"))
}

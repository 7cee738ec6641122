package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Sentinel errors for the service taxonomy. Handlers translate these to
// HTTP statuses in one place; usecases wrap them with context via %w.
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrAuthorization     = errors.New("not authorized")
	ErrNotFound          = errors.New("not found")
)

// InvalidParameters wraps ErrInvalidParameters with a reason.
func InvalidParameters(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, reason)
}

// Authorization wraps ErrAuthorization with a reason.
func Authorization(reason string) error {
	return fmt.Errorf("%w: %s", ErrAuthorization, reason)
}

// NotFound wraps ErrNotFound with the missing resource name.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// FromGorm turns database-layer errors into business errors.
func FromGorm(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(resource)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return InvalidParameters(resource + " already exists")
	}
	return err
}

// StatusCode maps an error to the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorization):
		// Missing/invalid credentials get a 401 from the auth middleware;
		// an authenticated requester hitting someone else's resource is a 403.
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

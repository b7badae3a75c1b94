package api

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Login for any non-2xx response.
var ErrInvalidCredentials = errors.New("invalid username or password")

// RequestError is a non-2xx API response.
// Status codes are kept for logging only; callers treat every RequestError alike.
type RequestError struct {
	Op      string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
	}
	return e.Message
}

// IsRequestError reports whether err wraps a *RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

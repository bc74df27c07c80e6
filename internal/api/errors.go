package api

import (
	"errors"
	"fmt"
)

// RequestError is a non-2xx reply from the document store. Message carries
// the server-reported error body verbatim when one was provided.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("document store returned status %d", e.Status)
}

// AsRequestError unwraps err into a RequestError, or nil when the failure
// was transport-level (the request never got a remote verdict).
func AsRequestError(err error) *RequestError {
	var re *RequestError
	if errors.As(err, &re) {
		return re
	}
	return nil
}

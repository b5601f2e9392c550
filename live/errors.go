// Package live defines the domain model of a live room lookup: room ids, quality tiers, container formats and the
// failure taxonomy shared by the fetcher and the flattener.
package live

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks user input that could not be parsed. It is recoverable: prompts ask again.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork marks a transport failure or timeout while talking to the live API.
	ErrNetwork = errors.New("network request failed")

	// ErrResponseFormat marks a response body that is not the JSON shape the API documents.
	ErrResponseFormat = errors.New("malformed api response")

	// ErrAPI marks an envelope with a non-zero code.
	ErrAPI = errors.New("api returned an error")

	// ErrNotLive marks a room that exists but is not streaming.
	ErrNotLive = errors.New("room is not live")
)

// APIError carries the envelope fields of a rejected request.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: code %d", ErrAPI, e.Code)
	}
	return fmt.Sprintf("%s: code %d: %s", ErrAPI, e.Code, e.Message)
}

// Is reports ErrAPI so callers can match the whole class with errors.Is.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

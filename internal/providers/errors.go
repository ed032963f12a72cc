// Package providers defines the upstream data-provider contracts and the
// error taxonomy shared by their implementations.
package providers

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure (connect, timeout) for a
// single upstream request.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports a non-success HTTP status from the upstream API.
type APIError struct {
	URL        string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// DecodeError reports an upstream body that could not be parsed.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GameNotFoundError reports a gamePk the upstream API does not know.
type GameNotFoundError struct {
	GamePk int
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("no game found with id %d", e.GamePk)
}

// PlayerNotFoundError reports a player id the upstream API does not know.
type PlayerNotFoundError struct {
	PlayerID int
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("no player found with id %d", e.PlayerID)
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var target *APIError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsGameNotFound reports whether the error chain contains a GameNotFoundError.
func IsGameNotFound(err error) bool {
	var target *GameNotFoundError
	return errors.As(err, &target)
}

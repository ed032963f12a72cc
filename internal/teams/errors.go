package teams

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownTeamError reports a query that matched no team.
type UnknownTeamError struct {
	Query string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team %q", e.Query)
}

// AmbiguousTeamError reports a query that matched more than one team.
type AmbiguousTeamError struct {
	Query   string
	Matches []string
}

func (e *AmbiguousTeamError) Error() string {
	return fmt.Sprintf("team %q is ambiguous (matches %s)", e.Query, strings.Join(e.Matches, ", "))
}

// AsUnknownTeamError attempts to unwrap an error into an UnknownTeamError.
func AsUnknownTeamError(err error) (*UnknownTeamError, bool) {
	var target *UnknownTeamError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsAmbiguousTeamError attempts to unwrap an error into an AmbiguousTeamError.
func AsAmbiguousTeamError(err error) (*AmbiguousTeamError, bool) {
	var target *AmbiguousTeamError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

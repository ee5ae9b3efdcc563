package league

import (
	"errors"
	"fmt"
)

var (
	// ErrSegmentCount means the line did not split into exactly two results.
	ErrSegmentCount = errors.New("expected two comma separated results")
	// ErrMissingTeam means a result had a goals token but no team name.
	ErrMissingTeam = errors.New("missing team name")
	// ErrInvalidGoals means the goals token was absent, non-numeric or negative.
	ErrInvalidGoals = errors.New("invalid goals")
)

// FormatError reports a malformed results line. It is fatal to the run.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Please check the formatting of your file on line %d", e.Line)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AsFormatError attempts to unwrap an error into a FormatError.
func AsFormatError(err error) (*FormatError, bool) {
	var fmtErr *FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr, true
	}
	return nil, false
}

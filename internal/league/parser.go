package league

import (
	"fmt"
	"strconv"
	"strings"
)

// GameGoals is the parsed form of one results line.
type GameGoals struct {
	TeamOneName  string
	TeamOneGoals int
	TeamTwoName  string
	TeamTwoGoals int
}

// ParseGoals parses a line shaped like "<team> <goals>, <team> <goals>".
// Team names may contain spaces; the last whitespace-delimited token of each
// result is the goal count. lineNumber is only used in the returned error.
func ParseGoals(line string, lineNumber int) (GameGoals, error) {
	segments := strings.Split(line, ",")
	if len(segments) != 2 {
		return GameGoals{}, &FormatError{Line: lineNumber, Err: ErrSegmentCount}
	}

	oneName, oneGoals, err := parseResult(segments[0])
	if err != nil {
		return GameGoals{}, &FormatError{Line: lineNumber, Err: err}
	}
	twoName, twoGoals, err := parseResult(segments[1])
	if err != nil {
		return GameGoals{}, &FormatError{Line: lineNumber, Err: err}
	}

	return GameGoals{
		TeamOneName:  oneName,
		TeamOneGoals: oneGoals,
		TeamTwoName:  twoName,
		TeamTwoGoals: twoGoals,
	}, nil
}

func parseResult(segment string) (string, int, error) {
	fields := strings.Fields(segment)
	switch len(fields) {
	case 0:
		return "", 0, fmt.Errorf("%w: empty result", ErrInvalidGoals)
	case 1:
		return "", 0, ErrMissingTeam
	}

	token := fields[len(fields)-1]
	goals, err := strconv.Atoi(token)
	if err != nil {
		return "", 0, fmt.Errorf("%w %q: %w", ErrInvalidGoals, token, err)
	}
	if goals < 0 {
		return "", 0, fmt.Errorf("%w %q: negative", ErrInvalidGoals, token)
	}

	return strings.Join(fields[:len(fields)-1], " "), goals, nil
}

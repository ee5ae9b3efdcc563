package league

import (
	"errors"
	"strconv"
	"testing"
)

const (
	teamOne = "Mary Jane"
	teamTwo = "John Doe"
)

func TestParseGoalsParsesLine(t *testing.T) {
	goals, err := ParseGoals(teamOne+" 3, "+teamTwo+" 4", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := GameGoals{TeamOneName: teamOne, TeamOneGoals: 3, TeamTwoName: teamTwo, TeamTwoGoals: 4}
	if goals != want {
		t.Fatalf("expected %+v, got %+v", want, goals)
	}
}

func TestParseGoalsNormalizesWhitespace(t *testing.T) {
	cases := []struct {
		line string
		want GameGoals
	}{
		{"A 2, B 3", GameGoals{"A", 2, "B", 3}},
		{"  FC   Awesome   0 ,Lions 12  ", GameGoals{"FC Awesome", 0, "Lions", 12}},
		{"Snakes\t1,\tGrouches 1\r", GameGoals{"Snakes", 1, "Grouches", 1}},
	}

	for _, tc := range cases {
		got, err := ParseGoals(tc.line, 1)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", tc.line, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.line, tc.want, got)
		}
	}
}

func TestParseGoalsRejectsMalformedLines(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"one result", "team one 0", ErrSegmentCount},
		{"three results", "team one 0, team two 2, team three 4", ErrSegmentCount},
		{"blank line", "", ErrSegmentCount},
		{"non-numeric goals", "kittens two, puppies 3", ErrInvalidGoals},
		{"trailing junk in goals", "kittens 2x, puppies 3", ErrInvalidGoals},
		{"negative goals", "kittens -1, puppies 3", ErrInvalidGoals},
		{"empty result", ", puppies 3", ErrInvalidGoals},
		{"missing team", "kittens 2, 3", ErrMissingTeam},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGoals(tc.line, 7)
			if err == nil {
				t.Fatalf("expected error for %q", tc.line)
			}
			fmtErr, ok := AsFormatError(err)
			if !ok {
				t.Fatalf("expected FormatError, got %T", err)
			}
			if fmtErr.Line != 7 {
				t.Fatalf("expected line 7, got %d", fmtErr.Line)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, fmtErr.Err)
			}
			if err.Error() != "Please check the formatting of your file on line 7" {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestParseGoalsKeepsNumericCause(t *testing.T) {
	_, err := ParseGoals("kittens two, puppies 3", 1)

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected strconv.NumError in chain, got %v", err)
	}
}

func TestAsFormatErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsFormatError(errors.New("other")); ok {
		t.Fatalf("expected non-format error to be rejected")
	}
}

package league

import (
	"fmt"
	"sort"
)

// TopTeamCount is how many teams each match-day report lists.
const TopTeamCount = 3

// TeamPoints maps a team name to the points it took on each match day it played.
type TeamPoints map[string][]int

// Total sums a team's points; unknown teams total zero.
func (tp TeamPoints) Total(team string) int {
	total := 0
	for _, p := range tp[team] {
		total += p
	}
	return total
}

// Clone returns a deep copy so callers cannot mutate aggregator state.
func (tp TeamPoints) Clone() TeamPoints {
	out := make(TeamPoints, len(tp))
	for team, history := range tp {
		out[team] = append([]int(nil), history...)
	}
	return out
}

// Standing is a team's accumulated total.
type Standing struct {
	Team  string
	Total int
}

// String renders the report line, e.g. "apples, 3 pts".
func (s Standing) String() string {
	return fmt.Sprintf("%s, %d %s", s.Team, s.Total, pluralize(s.Total, "pt", "pts"))
}

// Standings ranks every known team by total descending, then name ascending.
func Standings(tp TeamPoints) []Standing {
	result := make([]Standing, 0, len(tp))
	for team := range tp {
		result = append(result, Standing{Team: team, Total: tp.Total(team)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total == result[j].Total {
			return result[i].Team < result[j].Team
		}
		return result[i].Total > result[j].Total
	})
	return result
}

// TopTeams returns at most n leading standings.
func TopTeams(tp TeamPoints, n int) []Standing {
	ranked := Standings(tp)
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

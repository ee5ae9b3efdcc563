package league

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// TeamResult is the points one team took from a game.
type TeamResult struct {
	Team   string
	Points int
}

// GamePoints holds both teams' results in the order they appeared on the line.
type GamePoints [2]TeamResult

// CalculatePoints converts a game's goals into league points.
func CalculatePoints(game GameGoals) GamePoints {
	onePoints, twoPoints := PointsDraw, PointsDraw
	switch {
	case game.TeamOneGoals > game.TeamTwoGoals:
		onePoints, twoPoints = PointsWin, PointsLoss
	case game.TeamTwoGoals > game.TeamOneGoals:
		onePoints, twoPoints = PointsLoss, PointsWin
	}

	return GamePoints{
		{Team: game.TeamOneName, Points: onePoints},
		{Team: game.TeamTwoName, Points: twoPoints},
	}
}

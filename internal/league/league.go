package league

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-ranker/internal/logging"
	"github.com/preston-bernstein/league-ranker/internal/metrics"
)

const defaultMaxLineBytes = 1 << 20

// Sink receives report lines and fatal diagnostics.
type Sink interface {
	Info(message string)
	Error(message string)
}

// League accumulates per-team match-day points from an ordered stream of
// results and reports the top teams whenever a match day completes.
//
// A match day rolls over when a line would give a team more results than the
// current day allows; the report for the finished day is emitted before any of
// that line's points are recorded.
type League struct {
	sink         Sink
	logger       *slog.Logger
	metrics      *metrics.Recorder
	maxLineBytes int

	currentMatchDay int
	lineNumber      int
	teamPoints      TeamPoints
	reported        int
}

// Option customizes a League.
type Option func(*League)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *League) { l.logger = logger }
}

// WithMetrics sets the run recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(l *League) { l.metrics = rec }
}

// WithMaxLineBytes bounds the length of a single input line in Run.
func WithMaxLineBytes(n int) Option {
	return func(l *League) {
		if n > 0 {
			l.maxLineBytes = n
		}
	}
}

// New constructs a League starting at match day 1, line 1.
func New(sink Sink, opts ...Option) *League {
	l := &League{
		sink:            sink,
		maxLineBytes:    defaultMaxLineBytes,
		currentMatchDay: 1,
		lineNumber:      1,
		teamPoints:      make(TeamPoints),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *League) CurrentMatchDay() int { return l.currentMatchDay }

// LineNumber is the 1-based number of the next line to be handled.
func (l *League) LineNumber() int { return l.lineNumber }

// TeamPoints returns a copy of every team's per-match-day points.
func (l *League) TeamPoints() TeamPoints { return l.teamPoints.Clone() }

// Run handles every line from r in order, then reports the final match day.
// A malformed line stops the run and is returned as a *FormatError.
func (l *League) Run(ctx context.Context, r io.Reader) error {
	start := time.Now()
	scanner := bufio.NewScanner(r)
	initial := 64 * 1024
	if l.maxLineBytes < initial {
		initial = l.maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), l.maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.HandleLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", l.lineNumber, err)
	}

	l.Finish()
	logging.Info(l.logger, "league run complete",
		logging.FieldCount, l.lineNumber-1,
		logging.FieldMatchDay, l.reported,
		logging.FieldTeams, len(l.teamPoints),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// HandleLine parses one result, scores it and records both teams' points,
// reporting the current match day first if the line starts a new one.
func (l *League) HandleLine(line string) error {
	start := time.Now()

	goals, err := ParseGoals(line, l.lineNumber)
	if err != nil {
		l.metrics.RecordLine(time.Since(start), err)
		logging.Debug(l.logger, "malformed line", logging.FieldLine, l.lineNumber, "error", err)
		l.sink.Error(err.Error())
		return err
	}

	points := CalculatePoints(goals)
	if l.startsNewMatchDay(points) {
		l.rollover()
	}
	for _, result := range points {
		history, known := l.teamPoints[result.Team]
		if !known {
			l.metrics.RecordTeamSeen()
		}
		l.teamPoints[result.Team] = append(history, result.Points)
	}

	l.metrics.RecordLine(time.Since(start), nil)
	l.lineNumber++
	return nil
}

// Finish reports the final, possibly partial, match day.
func (l *League) Finish() {
	l.LogTopTeams()
}

// LogTopTeams emits the current match day's header, the top teams and a blank line.
func (l *League) LogTopTeams() {
	l.sink.Info(fmt.Sprintf("Matchday %d", l.currentMatchDay))
	for _, standing := range TopTeams(l.teamPoints, TopTeamCount) {
		l.sink.Info(standing.String())
	}
	l.sink.Info("")

	l.reported++
	l.metrics.RecordMatchDay()
}

// startsNewMatchDay reports whether recording points would give any team more
// results than the current match day allows. Both teams are checked before
// either is recorded so the finished day's report excludes this line entirely.
func (l *League) startsNewMatchDay(points GamePoints) bool {
	pending := make(map[string]int, len(points))
	for _, result := range points {
		pending[result.Team]++
		if len(l.teamPoints[result.Team])+pending[result.Team] > l.currentMatchDay {
			return true
		}
	}
	return false
}

func (l *League) rollover() {
	logging.Debug(l.logger, "match day complete",
		logging.FieldMatchDay, l.currentMatchDay,
		logging.FieldLine, l.lineNumber,
	)
	l.LogTopTeams()
	l.currentMatchDay++
}

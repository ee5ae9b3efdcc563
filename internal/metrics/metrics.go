package metrics

import (
	"sync"
	"time"
)

type runStats struct {
	lines           int
	formatErrors    int
	matchDays       int
	teams           int
	lastLineLatency time.Duration
}

// Recorder captures in-memory counters for a league run and mirrors them to
// OpenTelemetry instruments when telemetry is configured. A nil Recorder is a no-op.
type Recorder struct {
	mu    sync.Mutex
	stats runStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordLine counts a processed line and stores its latency. A non-nil err
// counts as a format error.
func (r *Recorder) RecordLine(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.lines++
	r.stats.lastLineLatency = duration
	if err != nil {
		r.stats.formatErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLine(duration, err)
	}
}

// RecordMatchDay counts an emitted match-day report.
func (r *Recorder) RecordMatchDay() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.matchDays++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatchDay()
	}
}

// RecordTeamSeen counts the first appearance of a team.
func (r *Recorder) RecordTeamSeen() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.teams++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTeamSeen()
	}
}

// Snapshot returns a copy of the current run stats.
type Snapshot struct {
	Lines           int
	FormatErrors    int
	MatchDays       int
	Teams           int
	LastLineLatency time.Duration
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Lines:           r.stats.lines,
		FormatErrors:    r.stats.formatErrors,
		MatchDays:       r.stats.matchDays,
		Teams:           r.stats.teams,
		LastLineLatency: r.stats.lastLineLatency,
	}
}

package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksLinesAndFormatErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLine(10*time.Microsecond, nil)
	rec.RecordLine(15*time.Microsecond, errors.New("boom"))

	snap := rec.Snapshot()
	if snap.Lines != 2 {
		t.Fatalf("expected 2 lines, got %d", snap.Lines)
	}
	if snap.FormatErrors != 1 {
		t.Fatalf("expected 1 format error, got %d", snap.FormatErrors)
	}
	if snap.LastLineLatency != 15*time.Microsecond {
		t.Fatalf("expected last latency to be 15µs, got %s", snap.LastLineLatency)
	}
}

func TestRecorderTracksMatchDaysAndTeams(t *testing.T) {
	rec := NewRecorder()
	rec.RecordMatchDay()
	rec.RecordMatchDay()
	rec.RecordTeamSeen()

	snap := rec.Snapshot()
	if snap.MatchDays != 2 || snap.Teams != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordLine(time.Millisecond, nil)
	rec.RecordMatchDay()
	rec.RecordTeamSeen()

	if snap := rec.Snapshot(); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}

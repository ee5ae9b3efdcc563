package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOutcome = "outcome"
	AttrReason  = "reason"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

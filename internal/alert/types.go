package alert

import "time"

// FetchFailureInput describes a member source fetch that left a view empty.
type FetchFailureInput struct {
	ViewID     string
	SourceName string
	Err        error
	Duration   time.Duration
	OccurredAt time.Time
}

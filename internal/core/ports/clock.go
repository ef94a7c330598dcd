package ports

import "time"

// Clock is the single source of truth for "now". Both the 11:00 cutoff check
// and the vote date stamp read from it, so tests can pin the time.
type Clock interface {
	Now() time.Time
}

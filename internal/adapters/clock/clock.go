package clock

import (
	"time"

	"github.com/lunchvote/api/internal/core/ports"
)

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a Clock reading wall time in the given location. The
// location decides which calendar day a submission counts for and when the
// 11:00 cutoff falls.
func NewSystem(loc *time.Location) ports.Clock {
	if loc == nil {
		loc = time.Local
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

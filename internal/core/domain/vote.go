package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the storage and wire format for calendar dates.
const DateLayout = "2006-01-02"

type Vote struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	MenuID     uuid.UUID `json:"menu_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// VoteDetail is the read model behind vote responses: a vote joined with its
// menu and the employee who cast it. Both response versions render from it.
type VoteDetail struct {
	Vote
	Menu          Menu
	EmployeeEmail string
	EmployeeName  string
}

// VotingResult is a per-menu tally for one day. Derived, never persisted.
type VotingResult struct {
	MenuID         uuid.UUID
	VotesCount     int64
	Menu           Menu
	RestaurantName string
	Percentage     float64
}

// SameDay reports whether two timestamps fall on the same calendar date,
// each evaluated in its own location.
func SameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

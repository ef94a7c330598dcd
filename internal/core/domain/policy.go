package domain

import "time"

// VotingCutoffHour is the local hour from which new votes are rejected.
const VotingCutoffHour = 11

// ValidateVote applies the submission rules in order: cutoff time, menu
// currency, one vote per day. It has no side effects and serves as a fast
// pre-filter; the votes table's unique constraint is the final authority
// when concurrent submissions race past these checks.
func ValidateVote(menu *Menu, attemptedAt time.Time, hasVoted bool) error {
	if attemptedAt.Hour() >= VotingCutoffHour {
		return ErrVotingClosed
	}
	if !SameDay(menu.Date, attemptedAt) {
		return ErrStaleMenu
	}
	if hasVoted {
		return ErrAlreadyVoted
	}
	return nil
}

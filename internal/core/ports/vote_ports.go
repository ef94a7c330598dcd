package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts the vote. The one_vote_per_day constraint is enforced by
	// the database; a conflict surfaces as domain.ErrAlreadyVoted.
	Save(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]domain.VoteDetail, error)
	ListForDate(ctx context.Context, date time.Time) ([]domain.Vote, error)
	CountByMenuForDate(ctx context.Context, date time.Time) ([]domain.VotingResult, error)
}

type SubmitVoteInput struct {
	EmployeeID uuid.UUID
	MenuID     uuid.UUID
}

type ListVotesInput struct {
	EmployeeID uuid.UUID
	Page       int
}

type VoteService interface {
	Submit(ctx context.Context, input SubmitVoteInput) (*domain.VoteDetail, error)
	History(ctx context.Context, input ListVotesInput) ([]domain.VoteDetail, error)
	TallyForToday(ctx context.Context, page int) ([]domain.VotingResult, error)
}

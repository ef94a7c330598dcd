package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

const pageSize = 20

type voteService struct {
	menuRepo     ports.MenuRepository
	voteRepo     ports.VoteRepository
	employeeRepo ports.EmployeeRepository
	clock        ports.Clock
}

func NewVoteService(menuRepo ports.MenuRepository, voteRepo ports.VoteRepository, employeeRepo ports.EmployeeRepository, clock ports.Clock) ports.VoteService {
	return &voteService{
		menuRepo:     menuRepo,
		voteRepo:     voteRepo,
		employeeRepo: employeeRepo,
		clock:        clock,
	}
}

func (s *voteService) Submit(ctx context.Context, input ports.SubmitVoteInput) (*domain.VoteDetail, error) {
	menu, err := s.menuRepo.GetByID(ctx, input.MenuID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	hasVoted, err := s.voteRepo.HasVoted(ctx, input.EmployeeID, now)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateVote(menu, now, hasVoted); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		ID:         uuid.New(),
		EmployeeID: input.EmployeeID,
		MenuID:     menu.ID,
		Date:       now,
		CreatedAt:  now,
	}

	// Save relies on the one_vote_per_day constraint; a concurrent winner
	// turns this into domain.ErrAlreadyVoted, same as the pre-check.
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee for vote: %w", err)
	}

	return &domain.VoteDetail{
		Vote:          *vote,
		Menu:          *menu,
		EmployeeEmail: employee.Email,
		EmployeeName:  employee.FullName(),
	}, nil
}

func (s *voteService) History(ctx context.Context, input ports.ListVotesInput) ([]domain.VoteDetail, error) {
	limit, offset := pageBounds(input.Page)
	return s.voteRepo.ListByEmployee(ctx, input.EmployeeID, limit, offset)
}

func (s *voteService) TallyForToday(ctx context.Context, page int) ([]domain.VotingResult, error) {
	results, err := s.voteRepo.CountByMenuForDate(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to tally today's votes: %w", err)
	}

	var total int64
	for _, r := range results {
		total += r.VotesCount
	}
	for i := range results {
		results[i].Percentage = percentage(results[i].VotesCount, total)
	}

	// Percentages are computed over the whole day before slicing the page.
	limit, offset := pageBounds(page)
	if offset >= len(results) {
		return []domain.VotingResult{}, nil
	}
	if offset+limit > len(results) {
		limit = len(results) - offset
	}
	return results[offset : offset+limit], nil
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*10) / 10
}

func pageBounds(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}

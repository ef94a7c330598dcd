package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, employee_id, menu_id, date)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.EmployeeID, vote.MenuID, vote.Date.Format(domain.DateLayout))
	if err != nil {
		if isUniqueViolation(err, "one_vote_per_day") {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error) {
	query := `SELECT 1 FROM votes WHERE employee_id = $1 AND date = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, employeeID, date.Format(domain.DateLayout)).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]domain.VoteDetail, error) {
	query := `
		SELECT v.id, v.employee_id, v.menu_id, v.date, v.created_at,
		       m.restaurant_id, m.date, m.created_at, r.name,
		       e.email, e.first_name, e.last_name
		FROM votes v
		JOIN menus m ON m.id = v.menu_id
		JOIN restaurants r ON r.id = m.restaurant_id
		JOIN employees e ON e.id = v.employee_id
		WHERE v.employee_id = $1
		ORDER BY v.date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	details := []domain.VoteDetail{}
	var menuIDs []uuid.UUID
	for rows.Next() {
		var d domain.VoteDetail
		var employee domain.Employee
		err := rows.Scan(
			&d.Vote.ID, &d.Vote.EmployeeID, &d.Vote.MenuID, &d.Vote.Date, &d.Vote.CreatedAt,
			&d.Menu.RestaurantID, &d.Menu.Date, &d.Menu.CreatedAt, &d.Menu.RestaurantName,
			&employee.Email, &employee.FirstName, &employee.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		d.Menu.ID = d.Vote.MenuID
		d.EmployeeEmail = employee.Email
		d.EmployeeName = employee.FullName()
		details = append(details, d)
		menuIDs = append(menuIDs, d.Menu.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	items, err := menuItemsByMenu(ctx, r.db, menuIDs)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].Menu.Items = items[details[i].Menu.ID]
	}

	return details, nil
}

func (r *voteRepository) ListForDate(ctx context.Context, date time.Time) ([]domain.Vote, error) {
	query := `
		SELECT id, employee_id, menu_id, date, created_at
		FROM votes
		WHERE date = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, date.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for date: %w", err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var vote domain.Vote
		if err := rows.Scan(&vote.ID, &vote.EmployeeID, &vote.MenuID, &vote.Date, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return votes, nil
}

// CountByMenuForDate groups the day's votes by menu, ordered by count
// descending with menu id ascending as the tie-break.
func (r *voteRepository) CountByMenuForDate(ctx context.Context, date time.Time) ([]domain.VotingResult, error) {
	query := `
		SELECT v.menu_id, COUNT(v.id) AS votes_count,
		       m.restaurant_id, m.date, m.created_at, r.name
		FROM votes v
		JOIN menus m ON m.id = v.menu_id
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE v.date = $1
		GROUP BY v.menu_id, m.restaurant_id, m.date, m.created_at, r.name
		ORDER BY votes_count DESC, v.menu_id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, date.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	results := []domain.VotingResult{}
	var menuIDs []uuid.UUID
	for rows.Next() {
		var res domain.VotingResult
		err := rows.Scan(
			&res.MenuID, &res.VotesCount,
			&res.Menu.RestaurantID, &res.Menu.Date, &res.Menu.CreatedAt, &res.RestaurantName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voting result: %w", err)
		}
		res.Menu.ID = res.MenuID
		res.Menu.RestaurantName = res.RestaurantName
		results = append(results, res)
		menuIDs = append(menuIDs, res.MenuID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voting results: %w", err)
	}

	items, err := menuItemsByMenu(ctx, r.db, menuIDs)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Menu.Items = items[results[i].MenuID]
	}

	return results, nil
}

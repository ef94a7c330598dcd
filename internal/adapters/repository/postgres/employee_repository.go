package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) ports.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	query := `
		SELECT id, email, first_name, last_name, is_admin, created_at
		FROM employees
		WHERE id = $1
	`
	employee := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID, &employee.Email, &employee.FirstName,
		&employee.LastName, &employee.IsAdmin, &employee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
}

type EmployeeService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
}

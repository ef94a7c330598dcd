package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type RestaurantRepository interface {
	Save(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MenuRepository interface {
	// Save inserts the menu and its items in one transaction. A second menu
	// for the same (restaurant, date) surfaces as domain.ErrMenuExists.
	Save(ctx context.Context, menu *domain.Menu) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Menu, error)
}

type CreateRestaurantInput struct {
	Name         string
	Address      string
	ContactPhone string
	ContactEmail string
}

type CreateMenuInput struct {
	RestaurantID uuid.UUID
	Date         time.Time
	Items        []CreateMenuItemInput
}

type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       string
}

type RestaurantService interface {
	Create(ctx context.Context, input CreateRestaurantInput) (*domain.Restaurant, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	List(ctx context.Context, page int) ([]*domain.Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, input CreateRestaurantInput) (*domain.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateMenu(ctx context.Context, input CreateMenuInput) (*domain.Menu, error)
	GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	TodayMenus(ctx context.Context) ([]*domain.Menu, error)
}

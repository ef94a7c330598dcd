package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type restaurantService struct {
	restaurantRepo ports.RestaurantRepository
	menuRepo       ports.MenuRepository
	clock          ports.Clock
}

func NewRestaurantService(restaurantRepo ports.RestaurantRepository, menuRepo ports.MenuRepository, clock ports.Clock) ports.RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		clock:          clock,
	}
}

func (s *restaurantService) Create(ctx context.Context, input ports.CreateRestaurantInput) (*domain.Restaurant, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}

	now := s.clock.Now()
	restaurant := &domain.Restaurant{
		ID:           uuid.New(),
		Name:         input.Name,
		Address:      input.Address,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.restaurantRepo.Save(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, id)
}

func (s *restaurantService) List(ctx context.Context, page int) ([]*domain.Restaurant, error) {
	limit, offset := pageBounds(page)
	return s.restaurantRepo.List(ctx, limit, offset)
}

func (s *restaurantService) Update(ctx context.Context, id uuid.UUID, input ports.CreateRestaurantInput) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		restaurant.Name = input.Name
	}
	if input.Address != "" {
		restaurant.Address = input.Address
	}
	if input.ContactPhone != "" {
		restaurant.ContactPhone = input.ContactPhone
	}
	if input.ContactEmail != "" {
		restaurant.ContactEmail = input.ContactEmail
	}
	restaurant.UpdatedAt = s.clock.Now()

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.restaurantRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.restaurantRepo.Delete(ctx, id)
}

func (s *restaurantService) CreateMenu(ctx context.Context, input ports.CreateMenuInput) (*domain.Menu, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	menu := &domain.Menu{
		ID:             uuid.New(),
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Date:           date,
		CreatedAt:      now,
	}
	for _, item := range input.Items {
		if item.Name == "" {
			continue
		}
		menu.Items = append(menu.Items, domain.MenuItem{
			ID:          uuid.New(),
			MenuID:      menu.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}

	if err := s.menuRepo.Save(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *restaurantService) GetMenu(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *restaurantService) TodayMenus(ctx context.Context) ([]*domain.Menu, error) {
	return s.menuRepo.ListForDate(ctx, s.clock.Now())
}

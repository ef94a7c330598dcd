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

type restaurantRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) ports.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

func (r *restaurantRepository) Save(ctx context.Context, restaurant *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, address, contact_phone, contact_email)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.ExecContext(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Address, restaurant.ContactPhone, restaurant.ContactEmail)
	if err != nil {
		return fmt.Errorf("failed to save restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, address, contact_phone, contact_email, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`
	restaurant := &domain.Restaurant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Address,
		&restaurant.ContactPhone, &restaurant.ContactEmail,
		&restaurant.CreatedAt, &restaurant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context, limit, offset int) ([]*domain.Restaurant, error) {
	query := `
		SELECT id, name, address, contact_phone, contact_email, created_at, updated_at
		FROM restaurants
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []*domain.Restaurant{}
	for rows.Next() {
		restaurant := &domain.Restaurant{}
		err := rows.Scan(
			&restaurant.ID, &restaurant.Name, &restaurant.Address,
			&restaurant.ContactPhone, &restaurant.ContactEmail,
			&restaurant.CreatedAt, &restaurant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, address = $3, contact_phone = $4, contact_email = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Address, restaurant.ContactPhone, restaurant.ContactEmail)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurants WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	return nil
}

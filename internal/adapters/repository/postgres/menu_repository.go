package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type menuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) ports.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

func (r *menuRepository) Save(ctx context.Context, menu *domain.Menu) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO menus (id, restaurant_id, date)
		VALUES ($1, $2, $3);
	`
	_, err = tx.ExecContext(ctx, query, menu.ID, menu.RestaurantID, menu.Date.Format(domain.DateLayout))
	if err != nil {
		if isUniqueViolation(err, "unique_restaurant_daily_menu") {
			return domain.ErrMenuExists
		}
		return fmt.Errorf("failed to save menu: %w", err)
	}

	itemQuery := `
		INSERT INTO menu_items (id, menu_id, name, description, price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range menu.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, item.ID, menu.ID, item.Name, item.Description, item.Price); err != nil {
			return fmt.Errorf("failed to save menu item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit menu: %w", err)
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	query := `
		SELECT m.id, m.restaurant_id, m.date, m.created_at, r.name
		FROM menus m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.id = $1
	`
	menu := &domain.Menu{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&menu.ID, &menu.RestaurantID, &menu.Date, &menu.CreatedAt, &menu.RestaurantName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	items, err := menuItemsByMenu(ctx, r.db, []uuid.UUID{menu.ID})
	if err != nil {
		return nil, err
	}
	menu.Items = items[menu.ID]

	return menu, nil
}

func (r *menuRepository) ListForDate(ctx context.Context, date time.Time) ([]*domain.Menu, error) {
	query := `
		SELECT m.id, m.restaurant_id, m.date, m.created_at, r.name
		FROM menus m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.date = $1
		ORDER BY r.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, date.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	menus := []*domain.Menu{}
	var menuIDs []uuid.UUID
	for rows.Next() {
		menu := &domain.Menu{}
		err := rows.Scan(&menu.ID, &menu.RestaurantID, &menu.Date, &menu.CreatedAt, &menu.RestaurantName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, menu)
		menuIDs = append(menuIDs, menu.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	items, err := menuItemsByMenu(ctx, r.db, menuIDs)
	if err != nil {
		return nil, err
	}
	for _, menu := range menus {
		menu.Items = items[menu.ID]
	}

	return menus, nil
}

// menuItemsByMenu fetches the items for a batch of menus in one query.
func menuItemsByMenu(ctx context.Context, db *sql.DB, menuIDs []uuid.UUID) (map[uuid.UUID][]domain.MenuItem, error) {
	items := make(map[uuid.UUID][]domain.MenuItem)
	if len(menuIDs) == 0 {
		return items, nil
	}

	query := `
		SELECT id, menu_id, name, description, price
		FROM menu_items
		WHERE menu_id = ANY($1)
		ORDER BY name ASC
	`
	rows, err := db.QueryContext(ctx, query, pq.Array(menuIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.MenuID, &item.Name, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items[item.MenuID] = append(items[item.MenuID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

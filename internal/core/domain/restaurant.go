package domain

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Menu is one restaurant's offering for a single calendar date. At most one
// menu exists per (restaurant, date).
type Menu struct {
	ID             uuid.UUID  `json:"id"`
	RestaurantID   uuid.UUID  `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Date           time.Time  `json:"date"`
	Items          []MenuItem `json:"items"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	MenuID      uuid.UUID `json:"menu_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
}

// IsToday reports whether the menu is published for the given date.
func (m *Menu) IsToday(today time.Time) bool {
	return SameDay(m.Date, today)
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lunchvote/api/internal/config"
)

// Seeds a development database with a few employees, restaurants and
// today's menus.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	employees := []struct {
		email     string
		firstName string
		lastName  string
		admin     bool
	}{
		{"admin@example.com", "Ada", "Admin", true},
		{"bob@example.com", "Bob", "Birch", false},
		{"carol@example.com", "Carol", "Cole", false},
	}
	for _, e := range employees {
		_, err := db.Exec(
			`INSERT INTO employees (id, email, first_name, last_name, is_admin)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
			uuid.New(), e.email, e.firstName, e.lastName, e.admin)
		if err != nil {
			log.Fatal(err)
		}
	}

	restaurants := []string{"Thai Garden", "La Piazza", "Soup Stop"}
	for _, name := range restaurants {
		restaurantID := uuid.New()
		_, err := db.Exec(
			`INSERT INTO restaurants (id, name, address) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			restaurantID, name, fmt.Sprintf("1 %s Street", name))
		if err != nil {
			log.Fatal(err)
		}

		menuID := uuid.New()
		_, err = db.Exec(
			`INSERT INTO menus (id, restaurant_id, date)
			 SELECT $1, id, CURRENT_DATE FROM restaurants WHERE name = $2
			 ON CONFLICT ON CONSTRAINT unique_restaurant_daily_menu DO NOTHING`,
			menuID, name)
		if err != nil {
			log.Fatal(err)
		}

		_, err = db.Exec(
			`INSERT INTO menu_items (id, menu_id, name, price)
			 SELECT $1, id, $2, $3 FROM menus WHERE id = $4`,
			uuid.New(), "Dish of the day", "9.50", menuID)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Seed data inserted.")
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lunchvote/api/internal/adapters/clock"
	"github.com/lunchvote/api/internal/adapters/handler/http"
	"github.com/lunchvote/api/internal/adapters/repository/postgres"
	"github.com/lunchvote/api/internal/config"
	"github.com/lunchvote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	appClock := clock.NewSystem(loc)

	restaurantRepo := postgres.NewRestaurantRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)

	voteSvc := services.NewVoteService(menuRepo, voteRepo, employeeRepo, appClock)
	restaurantSvc := services.NewRestaurantService(restaurantRepo, menuRepo, appClock)
	employeeSvc := services.NewEmployeeService(employeeRepo)

	voteHandler := http.NewVoteHandler(voteSvc)
	restaurantHandler := http.NewRestaurantHandler(restaurantSvc)
	employeeHandler := http.NewEmployeeHandler(employeeSvc)

	handler := http.NewHandler(voteHandler, restaurantHandler, employeeHandler, []byte(cfg.JWTSecret))
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

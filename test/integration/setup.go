package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/lunchvote/api/internal/adapters/handler/http"
	repo "github.com/lunchvote/api/internal/adapters/repository/postgres"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/services"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const jwtSecret = "test-secret"

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *stdhttp.Client
	DBContainer testcontainers.Container
	Now         time.Time
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// setupTestApp wires the full application against a throwaway database with
// the clock pinned to now, so the cutoff and "today" are deterministic.
func setupTestApp(t *testing.T, now time.Time) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	appClock := fixedClock{now: now}

	restaurantRepo := repo.NewRestaurantRepository(db)
	menuRepo := repo.NewMenuRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	employeeRepo := repo.NewEmployeeRepository(db)

	voteSvc := services.NewVoteService(menuRepo, voteRepo, employeeRepo, appClock)
	restaurantSvc := services.NewRestaurantService(restaurantRepo, menuRepo, appClock)
	employeeSvc := services.NewEmployeeService(employeeRepo)

	voteHandler := http.NewVoteHandler(voteSvc)
	restaurantHandler := http.NewRestaurantHandler(restaurantSvc)
	employeeHandler := http.NewEmployeeHandler(employeeSvc)

	router := http.NewHandler(voteHandler, restaurantHandler, employeeHandler, []byte(jwtSecret))
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
		Now:         now,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) createEmployeeAndToken(t *testing.T, admin bool) (uuid.UUID, string) {
	t.Helper()

	employeeID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", employeeID)
	_, err := app.DB.Exec(
		"INSERT INTO employees (id, email, first_name, last_name, is_admin) VALUES ($1, $2, $3, $4, $5)",
		employeeID, email, "Test", "Employee", admin)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   employeeID.String(),
		"email": email,
		"admin": admin,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return employeeID, signedToken
}

func (app *TestApp) createRestaurantAndMenu(t *testing.T, name string, date time.Time) uuid.UUID {
	t.Helper()

	restaurantID := uuid.New()
	_, err := app.DB.Exec(
		"INSERT INTO restaurants (id, name, address) VALUES ($1, $2, $3)",
		restaurantID, name, "1 Test Street")
	require.NoError(t, err)

	menuID := uuid.New()
	_, err = app.DB.Exec(
		"INSERT INTO menus (id, restaurant_id, date) VALUES ($1, $2, $3)",
		menuID, restaurantID, date.Format(domain.DateLayout))
	require.NoError(t, err)

	_, err = app.DB.Exec(
		"INSERT INTO menu_items (id, menu_id, name, price) VALUES ($1, $2, $3, $4)",
		uuid.New(), menuID, "Dish of the day", "9.50")
	require.NoError(t, err)

	return menuID
}

// do issues an authenticated request with an optional version header.
func (app *TestApp) do(t *testing.T, method, path, token, version string, body any) *stdhttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := stdhttp.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&stdhttp.Cookie{Name: "access_token", Value: token})
	}
	if version != "" {
		req.Header.Set(http.VersionHeader, version)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *stdhttp.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return out
}

package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	repo "github.com/lunchvote/api/internal/adapters/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var votingDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestSubmitVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(10*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay)
	employeeID, token := app.createEmployeeAndToken(t, false)

	resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Thai Garden", body["restaurant_name"])
	assert.Equal(t, "2025-03-10", body["menu_date"])

	var count int
	err := app.DB.QueryRow(
		"SELECT COUNT(*) FROM votes WHERE employee_id = $1 AND date = '2025-03-10'",
		employeeID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// second vote the same day is rejected
	resp = app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "DuplicateVote", errBody["code"])

	// other employees keep voting
	_, otherToken := app.createEmployeeAndToken(t, false)
	resp = app.do(t, "POST", "/api/votes", otherToken, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestSubmitVoteAfterCutoff(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(11*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay)
	_, token := app.createEmployeeAndToken(t, false)

	resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "VotingClosed", body["code"])
	assert.Equal(t, "Voting is only allowed before 11:00 AM", body["detail"])
}

func TestSubmitVoteStaleMenu(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(9*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay.AddDate(0, 0, -1))
	_, token := app.createEmployeeAndToken(t, false)

	resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "StaleMenu", body["code"])
}

func TestConcurrentSubmissionsKeepSingleVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(10*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay)
	employeeID, token := app.createEmployeeAndToken(t, false)

	const attempts = 8
	var created atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
			if resp.StatusCode == http.StatusCreated {
				created.Add(1)
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()

	// the unique constraint lets exactly one writer through
	assert.Equal(t, int32(1), created.Load())

	var count int
	err := app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE employee_id = $1", employeeID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListVotesForDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(10*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay)
	for i := 0; i < 2; i++ {
		_, token := app.createEmployeeAndToken(t, false)
		resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	voteRepo := repo.NewVoteRepository(app.DB)
	votes, err := voteRepo.ListForDate(context.Background(), votingDay)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	for _, vote := range votes {
		assert.Equal(t, menuID, vote.MenuID)
	}

	votes, err = voteRepo.ListForDate(context.Background(), votingDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, votingDay.Add(10*time.Hour))
	defer app.Teardown(t)

	menuID := app.createRestaurantAndMenu(t, "Thai Garden", votingDay)
	employeeID, token := app.createEmployeeAndToken(t, false)

	// an older vote exists from a previous day
	oldMenuID := app.createRestaurantAndMenu(t, "La Piazza", votingDay.AddDate(0, 0, -1))
	_, err := app.DB.Exec(
		"INSERT INTO votes (employee_id, menu_id, date) VALUES ($1, $2, $3)",
		employeeID, oldMenuID, "2025-03-09")
	require.NoError(t, err)

	resp := app.do(t, "POST", "/api/votes", token, "", map[string]any{"menu_id": menuID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, "GET", "/api/votes/mine", token, "2.0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	votes := decodeBody[[]map[string]any](t, resp)
	require.Len(t, votes, 2)

	// newest date first
	assert.Equal(t, "2025-03-10", votes[0]["date"])
	assert.Equal(t, "2025-03-09", votes[1]["date"])

	menu, ok := votes[0]["menu"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Thai Garden", menu["restaurant"])
}

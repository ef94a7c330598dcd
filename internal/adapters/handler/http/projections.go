package http

import (
	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

// Versioned projections of votes and results. Both versions render from the
// same read models; the version token never changes what was queried.

type menuProjection struct {
	ID         uuid.UUID            `json:"id"`
	Restaurant string               `json:"restaurant"`
	Date       string               `json:"date"`
	Items      []menuItemProjection `json:"items"`
}

type menuItemProjection struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
}

type voteDetailV1 struct {
	ID             uuid.UUID `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	MenuDate       string    `json:"menu_date"`
}

type voteDetailV2 struct {
	ID            uuid.UUID      `json:"id"`
	Menu          menuProjection `json:"menu"`
	Date          string         `json:"date"`
	EmployeeEmail string         `json:"employee_email"`
	EmployeeName  string         `json:"employee_name"`
}

type votingResultV1 struct {
	VotesCount     int64  `json:"votes_count"`
	RestaurantName string `json:"restaurant_name"`
}

type votingResultV2 struct {
	MenuID         uuid.UUID      `json:"menu_id"`
	VotesCount     int64          `json:"votes_count"`
	MenuDetails    menuProjection `json:"menu_details"`
	RestaurantName string         `json:"restaurant_name"`
	Percentage     float64        `json:"percentage"`
}

func projectMenu(menu domain.Menu) menuProjection {
	items := []menuItemProjection{}
	for _, item := range menu.Items {
		items = append(items, menuItemProjection{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return menuProjection{
		ID:         menu.ID,
		Restaurant: menu.RestaurantName,
		Date:       menu.Date.Format(domain.DateLayout),
		Items:      items,
	}
}

func projectVoteDetail(version apiVersion, detail domain.VoteDetail) any {
	switch version {
	case apiV2:
		return voteDetailV2{
			ID:            detail.Vote.ID,
			Menu:          projectMenu(detail.Menu),
			Date:          detail.Vote.Date.Format(domain.DateLayout),
			EmployeeEmail: detail.EmployeeEmail,
			EmployeeName:  detail.EmployeeName,
		}
	default:
		return voteDetailV1{
			ID:             detail.Vote.ID,
			RestaurantName: detail.Menu.RestaurantName,
			MenuDate:       detail.Menu.Date.Format(domain.DateLayout),
		}
	}
}

func projectVoteDetails(version apiVersion, details []domain.VoteDetail) []any {
	out := []any{}
	for _, detail := range details {
		out = append(out, projectVoteDetail(version, detail))
	}
	return out
}

func projectVotingResult(version apiVersion, result domain.VotingResult) any {
	switch version {
	case apiV2:
		return votingResultV2{
			MenuID:         result.MenuID,
			VotesCount:     result.VotesCount,
			MenuDetails:    projectMenu(result.Menu),
			RestaurantName: result.RestaurantName,
			Percentage:     result.Percentage,
		}
	default:
		return votingResultV1{
			VotesCount:     result.VotesCount,
			RestaurantName: result.RestaurantName,
		}
	}
}

func projectVotingResults(version apiVersion, results []domain.VotingResult) []any {
	out := []any{}
	for _, result := range results {
		out = append(out, projectVotingResult(version, result))
	}
	return out
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type RestaurantHandler struct {
	service ports.RestaurantService
}

func NewRestaurantHandler(service ports.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
	}
}

type restaurantRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

type menuRequest struct {
	Date  string            `json:"date"`
	Items []menuItemRequest `json:"items"`
}

type menuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}

	restaurant, err := h.service.Create(r.Context(), ports.CreateRestaurantInput{
		Name:         req.Name,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.List(r.Context(), pageParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	restaurant, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}

	restaurant, err := h.service.Update(r.Context(), id, ports.CreateRestaurantInput{
		Name:         req.Name,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RestaurantHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	input := ports.CreateMenuInput{
		RestaurantID: id,
		Date:         date,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, ports.CreateMenuItemInput{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}

	menu, err := h.service.CreateMenu(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			writeError(w, http.StatusNotFound, "NotFound", err.Error())
		case errors.Is(err, domain.ErrMenuExists):
			writeError(w, http.StatusBadRequest, "InvalidRequest", "Menu for this date already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, projectMenu(*menu))
}

func (h *RestaurantHandler) TodayMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.TodayMenus(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}

	projections := []menuProjection{}
	for _, menu := range menus {
		projections = append(projections, projectMenu(*menu))
	}
	writeJSON(w, http.StatusOK, projections)
}

func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

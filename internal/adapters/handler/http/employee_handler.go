package http

import (
	"errors"
	"net/http"

	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
	}
}

func (h *EmployeeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "missing user context")
		return
	}

	employee, err := h.service.GetByID(r.Context(), principal.EmployeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

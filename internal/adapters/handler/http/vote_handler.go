package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	MenuID uuid.UUID `json:"menu_id"`
}

// Submit godoc
// @Summary      Casts the caller's vote for today's menu
// @Description  One vote per employee per day, accepted before 11:00 AM local time only.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      404
// @Router       /votes [post]
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "missing user context")
		return
	}

	input := ports.SubmitVoteInput{
		EmployeeID: principal.EmployeeID,
		MenuID:     req.MenuID,
	}

	detail, err := h.service.Submit(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			writeError(w, http.StatusNotFound, "NotFound", err.Error())
		case errors.Is(err, domain.ErrVotingClosed):
			writeError(w, http.StatusBadRequest, "VotingClosed", domain.ErrVotingClosed.Error())
		case errors.Is(err, domain.ErrStaleMenu):
			writeError(w, http.StatusBadRequest, "StaleMenu", domain.ErrStaleMenu.Error())
		case errors.Is(err, domain.ErrAlreadyVoted):
			writeError(w, http.StatusBadRequest, "DuplicateVote", domain.ErrAlreadyVoted.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		}
		return
	}

	version := versionFromContext(r.Context())
	writeJSON(w, http.StatusCreated, projectVoteDetail(version, *detail))
}

func (h *VoteHandler) History(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "missing user context")
		return
	}

	input := ports.ListVotesInput{
		EmployeeID: principal.EmployeeID,
		Page:       pageParam(r),
	}

	details, err := h.service.History(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}

	version := versionFromContext(r.Context())
	writeJSON(w, http.StatusOK, projectVoteDetails(version, details))
}

func (h *VoteHandler) ResultsToday(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.TallyForToday(r.Context(), pageParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}

	version := versionFromContext(r.Context())
	writeJSON(w, http.StatusOK, projectVotingResults(version, results))
}

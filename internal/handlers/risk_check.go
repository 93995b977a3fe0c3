package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

type RiskCheckHandler struct {
	riskCheckService services.RiskCheckServiceInterface
}

func NewRiskCheckHandler(riskCheckService services.RiskCheckServiceInterface) *RiskCheckHandler {
	return &RiskCheckHandler{riskCheckService: riskCheckService}
}

type SubmitRiskCheckRequest struct {
	Answers map[string]any `json:"answers"`
}

// Submit classifies an assessment and stores the result. The response carries
// the assigned tier and its tips.
func (h *RiskCheckHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req SubmitRiskCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	check, err := h.riskCheckService.Submit(r.Context(), user.ID, req.Answers)
	if err != nil {
		log.Printf("Error submitting risk check: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, check)
}

func (h *RiskCheckHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	checks, err := h.riskCheckService.ListByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing risk checks: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if checks == nil {
		checks = []models.RiskCheck{}
	}

	writeJSON(w, http.StatusOK, checks)
}

func (h *RiskCheckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	checkID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid check ID")
		return
	}

	err = h.riskCheckService.Delete(r.Context(), user.ID, checkID)
	if errors.Is(err, services.ErrRiskCheckNotFound) {
		writeError(w, http.StatusNotFound, "Risk check not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting risk check: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Risk check deleted"})
}

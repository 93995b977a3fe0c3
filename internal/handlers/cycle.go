package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

type CycleHandler struct {
	cycleService services.CycleServiceInterface
}

func NewCycleHandler(cycleService services.CycleServiceInterface) *CycleHandler {
	return &CycleHandler{cycleService: cycleService}
}

type CreateCycleEntryRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
}

const dateLayout = "2006-01-02"

// parseDate accepts plain dates and full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *CycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateCycleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StartDate == "" {
		writeError(w, http.StatusBadRequest, "Start date is required")
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date")
		return
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date")
			return
		}
		endDate = &parsed
	}

	entry, err := h.cycleService.Create(r.Context(), models.CreateCycleEntryParams{
		UserID:    user.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	})
	if errors.Is(err, services.ErrInvalidDateRange) {
		writeError(w, http.StatusBadRequest, "End date cannot be before start date")
		return
	}
	if err != nil {
		log.Printf("Error creating cycle entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *CycleHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	entries, err := h.cycleService.ListByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing cycle entries: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entries == nil {
		entries = []models.CycleEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *CycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	err = h.cycleService.Delete(r.Context(), user.ID, entryID)
	if errors.Is(err, services.ErrCycleEntryNotFound) {
		writeError(w, http.StatusNotFound, "Cycle entry not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting cycle entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Cycle entry deleted"})
}

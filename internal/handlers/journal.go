package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

type JournalHandler struct {
	journalService services.JournalServiceInterface
}

func NewJournalHandler(journalService services.JournalServiceInterface) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

type CreateJournalEntryRequest struct {
	Date *string `json:"date"`
	Mood string  `json:"mood"`
	Text string  `json:"text"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Mood = strings.TrimSpace(req.Mood)
	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "Mood is required")
		return
	}

	var date time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	entry, err := h.journalService.Create(r.Context(), models.CreateJournalEntryParams{
		UserID: user.ID,
		Date:   date,
		Mood:   req.Mood,
		Text:   req.Text,
	})
	if errors.Is(err, services.ErrMoodRequired) {
		writeError(w, http.StatusBadRequest, "Mood is required")
		return
	}
	if err != nil {
		log.Printf("Error creating journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	entries, err := h.journalService.ListByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing journal entries: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	err = h.journalService.Delete(r.Context(), user.ID, entryID)
	if errors.Is(err, services.ErrJournalEntryNotFound) {
		writeError(w, http.StatusNotFound, "Journal entry not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Journal entry deleted"})
}

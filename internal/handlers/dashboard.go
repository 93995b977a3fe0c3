package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/riyaaaa19/shecare/internal/services"
)

type DashboardHandler struct {
	cycleService     services.CycleServiceInterface
	journalService   services.JournalServiceInterface
	riskCheckService services.RiskCheckServiceInterface
}

func NewDashboardHandler(cycleService services.CycleServiceInterface, journalService services.JournalServiceInterface, riskCheckService services.RiskCheckServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		cycleService:     cycleService,
		journalService:   journalService,
		riskCheckService: riskCheckService,
	}
}

type DashboardResponse struct {
	LastPeriodDate *time.Time `json:"last_period_date"`
	LatestMood     *string    `json:"latest_mood"`
	LatestRisk     *string    `json:"latest_risk"`
}

// Summary returns the latest of each record type for the home screen. Fields
// for which the user has no records come back null.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var resp DashboardResponse

	cycle, err := h.cycleService.Latest(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error loading latest cycle entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if cycle != nil {
		resp.LastPeriodDate = &cycle.StartDate
	}

	journal, err := h.journalService.Latest(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error loading latest journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if journal != nil {
		resp.LatestMood = &journal.Mood
	}

	risk, err := h.riskCheckService.Latest(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error loading latest risk check: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if risk != nil {
		resp.LatestRisk = &risk.Risk
	}

	writeJSON(w, http.StatusOK, resp)
}

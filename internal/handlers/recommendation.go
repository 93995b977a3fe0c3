package handlers

import (
	"log"
	"net/http"

	"github.com/riyaaaa19/shecare/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationHandler(recommendationService services.RecommendationServiceInterface) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// List evaluates the rule set against the user's current records. Results are
// computed fresh on every call.
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	recs, err := h.recommendationService.ForUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error generating recommendations: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

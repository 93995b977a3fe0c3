package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

type ProfileHandler struct {
	userService services.UserServiceInterface
	authService services.AuthServiceInterface
}

func NewProfileHandler(userService services.UserServiceInterface, authService services.AuthServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authService: authService,
	}
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Age         *int    `json:"age"`
	Weight      *int    `json:"weight"`
	CycleLength *int    `json:"cycle_length"`
	Bio         *string `json:"bio"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update applies a partial profile update. Absent fields keep their current
// values.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		req.Email = &email
	}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if len(name) < 2 || len(name) > 100 {
			writeError(w, http.StatusBadRequest, "Name must be between 2 and 100 characters")
			return
		}
		req.FullName = &name
	}
	if req.Age != nil && (*req.Age < 1 || *req.Age > 120) {
		writeError(w, http.StatusBadRequest, "Age must be between 1 and 120")
		return
	}
	if req.CycleLength != nil && (*req.CycleLength < 1 || *req.CycleLength > 365) {
		writeError(w, http.StatusBadRequest, "Cycle length must be between 1 and 365 days")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, models.UpdateProfileParams{
		FullName:    req.FullName,
		Email:       req.Email,
		Age:         req.Age,
		Weight:      req.Weight,
		CycleLength: req.CycleLength,
		Bio:         req.Bio,
	})
	if errors.Is(err, services.ErrEmailAlreadyExists) {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes the account and every record attached to it.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	_ = h.authService.DeleteAllUserSessions(r.Context(), user.ID)

	if err := h.userService.Delete(r.Context(), user.ID); err != nil {
		log.Printf("Error deleting account: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

const (
	sessionCookieName = "session_token"
	cookieMaxAge      = 7 * 24 * 60 * 60 // 7 days in seconds
)

type AuthHandler struct {
	userService  services.UserServiceInterface
	authService  services.AuthServiceInterface
	emailService services.EmailServiceInterface
	secure       bool // Use secure cookies (HTTPS only)
}

func NewAuthHandler(userService services.UserServiceInterface, authService services.AuthServiceInterface, emailService services.EmailServiceInterface, secure bool) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		authService:  authService,
		emailService: emailService,
		secure:       secure,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeBody parses the request JSON into dst, responding 400 on garbage.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// normalizeEmail lowercases and trims the address and checks its shape.
func normalizeEmail(raw string) (string, bool) {
	email := strings.TrimSpace(strings.ToLower(raw))
	_, err := mail.ParseAddress(email)
	return email, err == nil
}

// hashPassword maps the one client-correctable hashing failure to a 400 and
// everything else to a 500. The second return reports whether to continue.
func (h *AuthHandler) hashPassword(w http.ResponseWriter, password string) (string, bool) {
	hash, err := h.authService.HashPassword(password)
	if errors.Is(err, services.ErrPasswordTooLong) {
		writeError(w, http.StatusBadRequest, "Password is too long")
		return "", false
	}
	if err != nil {
		serverError(w, "hashing password", err)
		return "", false
	}
	return hash, true
}

// issueSession creates a fresh session and sets the cookie.
func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, user *models.User) (string, bool) {
	token, err := h.authService.CreateSession(r.Context(), user.ID)
	if err != nil {
		serverError(w, "creating session", err)
		return "", false
	}
	h.setSessionCookie(w, token)
	return token, true
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	email, ok := normalizeEmail(req.Email)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := validatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fullName := strings.TrimSpace(req.FullName)
	if len(fullName) < 2 || len(fullName) > 100 {
		writeError(w, http.StatusBadRequest, "Name must be between 2 and 100 characters")
		return
	}

	passwordHash, ok := h.hashPassword(w, req.Password)
	if !ok {
		return
	}

	user, err := h.userService.Create(r.Context(), models.CreateUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
	})
	if errors.Is(err, services.ErrEmailAlreadyExists) {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		serverError(w, "creating user", err)
		return
	}

	if _, ok := h.issueSession(w, r, user); !ok {
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := h.userService.GetByEmail(r.Context(), email)
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		serverError(w, "loading user", err)
		return
	}

	if !h.authService.VerifyPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if _, ok := h.issueSession(w, r, user); !ok {
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		_ = h.authService.DeleteSession(r.Context(), cookie.Value)
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, AuthResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if !h.authService.VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	if err := validatePassword(req.NewPassword); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	newHash, ok := h.hashPassword(w, req.NewPassword)
	if !ok {
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), user.ID, newHash); err != nil {
		serverError(w, "updating password", err)
		return
	}

	// Drop every session, including the caller's, then hand back a new one.
	_ = h.authService.DeleteAllUserSessions(r.Context(), user.ID)

	if _, ok := h.issueSession(w, r, user); !ok {
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Message: "Password changed successfully"})
}

// ForgotPassword sends a password reset email. The response is identical for
// known and unknown addresses so it cannot be used to probe for accounts.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	email, ok := normalizeEmail(req.Email)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if user, err := h.userService.GetByEmail(r.Context(), email); err == nil && user != nil {
		if err := h.emailService.SendPasswordResetEmail(r.Context(), user.ID, user.Email); err != nil {
			log.Printf("Error sending password reset email: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "If an account exists, reset instructions have been sent"})
}

// ResetPassword consumes a reset token, sets the new password and logs the
// user straight in.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	if err := validatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := h.emailService.VerifyPasswordResetToken(r.Context(), req.Token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, ok := h.hashPassword(w, req.Password)
	if !ok {
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, passwordHash); err != nil {
		serverError(w, "updating password", err)
		return
	}

	if err := h.emailService.MarkPasswordResetUsed(r.Context(), req.Token); err != nil {
		log.Printf("Error marking reset token as used: %v", err)
	}

	// Any session created with the old password is now invalid.
	_ = h.authService.DeleteAllUserSessions(r.Context(), userID)

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		serverError(w, "loading user", err)
		return
	}

	if _, ok := h.issueSession(w, r, user); !ok {
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{User: user, Message: "Password reset successfully"})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
	})
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	// bcrypt truncates beyond 72 bytes; reject rather than silently clip.
	if len(password) > 72 {
		return errors.New("password must be at most 72 bytes")
	}

	var upper, lower, digit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errors.New("password must contain at least one uppercase letter, one lowercase letter, and one digit")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("Error %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

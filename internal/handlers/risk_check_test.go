package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

func TestRiskCheckSubmit(t *testing.T) {
	user := testUser()
	checkID := uuid.New()

	riskChecks := &mockRiskCheckService{
		SubmitFunc: func(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error) {
			if userID != user.ID {
				t.Errorf("user ID = %v, want %v", userID, user.ID)
			}
			if answers["irregular_periods"] != true {
				t.Errorf("answers not forwarded: %v", answers)
			}
			return &models.RiskCheck{
				ID:      checkID,
				UserID:  userID,
				Answers: answers,
				Risk:    "Low",
				Tips:    []string{"Maintain a healthy lifestyle with balanced meals and regular exercise.", "Track your symptoms and cycle regularly.", "Stay hydrated and manage stress."},
			}, nil
		},
	}

	h := NewRiskCheckHandler(riskChecks)
	req := newRequest(t, http.MethodPost, "/api/risk-checks", SubmitRiskCheckRequest{
		Answers: map[string]any{"irregular_periods": true},
	}, user)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp models.RiskCheck
	decodeResponse(t, rec, &resp)
	if resp.Risk != "Low" {
		t.Errorf("risk = %q, want Low", resp.Risk)
	}
	if len(resp.Tips) != 3 {
		t.Errorf("got %d tips, want 3", len(resp.Tips))
	}
}

func TestRiskCheckSubmitEmptyBodyAllowed(t *testing.T) {
	riskChecks := &mockRiskCheckService{
		SubmitFunc: func(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error) {
			return &models.RiskCheck{ID: uuid.New(), UserID: userID, Risk: "Low"}, nil
		},
	}

	h := NewRiskCheckHandler(riskChecks)
	req := newRequest(t, http.MethodPost, "/api/risk-checks", SubmitRiskCheckRequest{}, testUser())
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestRiskCheckList(t *testing.T) {
	riskChecks := &mockRiskCheckService{
		ListByUserFunc: func(ctx context.Context, userID uuid.UUID) ([]models.RiskCheck, error) {
			return []models.RiskCheck{
				{ID: uuid.New(), UserID: userID, Risk: "Moderate"},
			}, nil
		},
	}

	h := NewRiskCheckHandler(riskChecks)
	req := newRequest(t, http.MethodGet, "/api/risk-checks", nil, testUser())
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []models.RiskCheck
	decodeResponse(t, rec, &resp)
	if len(resp) != 1 || resp[0].Risk != "Moderate" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestRiskCheckDeleteNotFound(t *testing.T) {
	riskChecks := &mockRiskCheckService{
		DeleteFunc: func(ctx context.Context, userID, checkID uuid.UUID) error {
			return services.ErrRiskCheckNotFound
		},
	}

	checkID := uuid.New()
	h := NewRiskCheckHandler(riskChecks)
	req := newRequest(t, http.MethodDelete, "/api/risk-checks/"+checkID.String(), nil, testUser())
	req.SetPathValue("id", checkID.String())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRiskCheckRequiresAuth(t *testing.T) {
	h := NewRiskCheckHandler(&mockRiskCheckService{})

	for _, fn := range []http.HandlerFunc{h.Submit, h.List, h.Delete} {
		req := newRequest(t, http.MethodGet, "/api/risk-checks", nil, nil)
		rec := httptest.NewRecorder()
		fn(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	}
}

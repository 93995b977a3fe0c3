package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
	"github.com/riyaaaa19/shecare/internal/services"
)

func TestJournalCreate(t *testing.T) {
	user := testUser()
	entryID := uuid.New()

	journals := &mockJournalService{
		CreateFunc: func(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error) {
			if params.Mood != "happy" {
				t.Errorf("mood = %q, want %q", params.Mood, "happy")
			}
			return &models.JournalEntry{ID: entryID, UserID: params.UserID, Mood: params.Mood, Text: params.Text}, nil
		},
	}

	h := NewJournalHandler(journals)
	req := newRequest(t, http.MethodPost, "/api/journal", CreateJournalEntryRequest{
		Mood: "happy",
		Text: "a good day",
	}, user)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestJournalCreateWithDate(t *testing.T) {
	user := testUser()
	date := "2025-06-12"

	journals := &mockJournalService{
		CreateFunc: func(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error) {
			want := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
			if !params.Date.Equal(want) {
				t.Errorf("date = %v, want %v", params.Date, want)
			}
			return &models.JournalEntry{ID: uuid.New(), UserID: params.UserID, Date: params.Date, Mood: params.Mood}, nil
		},
	}

	h := NewJournalHandler(journals)
	req := newRequest(t, http.MethodPost, "/api/journal", CreateJournalEntryRequest{
		Date: &date,
		Mood: "calm",
	}, user)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestJournalCreateMissingMood(t *testing.T) {
	h := NewJournalHandler(&mockJournalService{})
	req := newRequest(t, http.MethodPost, "/api/journal", CreateJournalEntryRequest{
		Mood: "   ",
		Text: "no mood",
	}, testUser())
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestJournalList(t *testing.T) {
	journals := &mockJournalService{
		ListByUserFunc: func(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
			return []models.JournalEntry{
				{ID: uuid.New(), UserID: userID, Mood: "happy"},
			}, nil
		},
	}

	h := NewJournalHandler(journals)
	req := newRequest(t, http.MethodGet, "/api/journal", nil, testUser())
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []models.JournalEntry
	decodeResponse(t, rec, &resp)
	if len(resp) != 1 {
		t.Errorf("got %d entries, want 1", len(resp))
	}
}

func TestJournalListEmptyIsArray(t *testing.T) {
	journals := &mockJournalService{
		ListByUserFunc: func(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
			return nil, nil
		},
	}

	h := NewJournalHandler(journals)
	req := newRequest(t, http.MethodGet, "/api/journal", nil, testUser())
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty list rendered as %q, want JSON array", got)
	}
}

func TestJournalDeleteNotFound(t *testing.T) {
	journals := &mockJournalService{
		DeleteFunc: func(ctx context.Context, userID, id uuid.UUID) error {
			return services.ErrJournalEntryNotFound
		},
	}

	entryID := uuid.New()
	h := NewJournalHandler(journals)
	req := newRequest(t, http.MethodDelete, "/api/journal/"+entryID.String(), nil, testUser())
	req.SetPathValue("id", entryID.String())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestJournalRequiresAuth(t *testing.T) {
	h := NewJournalHandler(&mockJournalService{})

	for _, fn := range []http.HandlerFunc{h.Create, h.List, h.Delete} {
		req := newRequest(t, http.MethodGet, "/api/journal", nil, nil)
		rec := httptest.NewRecorder()
		fn(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	}
}

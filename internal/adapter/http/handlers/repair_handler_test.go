package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier_backend/internal/adapter/http/handlers/mocks"
	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRepairHandler_CreateAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairUseCase(ctrl)
		h := NewRepairHandler(uc, nil)

		r := gin.New()
		r.POST("/api/reparations/rdv", h.CreateAppointment)

		body := `{"utilisateurId":1,"dateHeure":"next tuesday"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reparations/rdv", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_DATETIME" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("accepts local datetime layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairUseCase(ctrl)
		h := NewRepairHandler(uc, nil)

		r := gin.New()
		r.POST("/api/reparations/rdv", h.CreateAppointment)

		want := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateAppointment(gomock.Any(), int64(1), gomock.Nil(), "écran cassé", want).Return(
			entities.Appointment{ID: 5, UserID: 1, Problem: "écran cassé", ScheduledAt: want, Status: entities.AppointmentStatusPending}, nil)

		body := `{"utilisateurId":1,"probleme":"écran cassé","dateHeure":"2025-04-18T10:00"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reparations/rdv", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairUseCase(ctrl)
		h := NewRepairHandler(uc, nil)

		r := gin.New()
		r.POST("/api/reparations/rdv", h.CreateAppointment)

		uc.EXPECT().CreateAppointment(gomock.Any(), int64(9), gomock.Nil(), gomock.Any(), gomock.Any()).Return(
			entities.Appointment{}, usecase.ErrUserNotFound)

		body := `{"utilisateurId":9,"dateHeure":"2025-04-18T10:00"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reparations/rdv", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRepairHandler_AvailableSlots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		h := NewRepairHandler(nil, nil)

		r := gin.New()
		r.GET("/api/reparations/creneaux", h.AvailableSlots)

		req := httptest.NewRequest(http.MethodGet, "/api/reparations/creneaux?date=18-04-2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("slots render as HH:MM", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sched := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewRepairHandler(nil, sched)

		r := gin.New()
		r.GET("/api/reparations/creneaux", h.AvailableSlots)

		day := time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)
		sched.EXPECT().AvailableSlots(gomock.Any(), day).Return([]time.Time{
			day.Add(9 * time.Hour),
			day.Add(9*time.Hour + 20*time.Minute),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/reparations/creneaux?date=2025-04-18", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Date     string   `json:"date"`
			Creneaux []string `json:"creneaux"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Date != "2025-04-18" || len(resp.Creneaux) != 2 || resp.Creneaux[0] != "09:00" || resp.Creneaux[1] != "09:20" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("closed day renders empty list, not null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sched := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewRepairHandler(nil, sched)

		r := gin.New()
		r.GET("/api/reparations/creneaux", h.AvailableSlots)

		sched.EXPECT().AvailableSlots(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/reparations/creneaux?date=2025-04-20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"creneaux":[]`)) {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestRepairHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairUseCase(ctrl)
		h := NewRepairHandler(uc, nil)

		r := gin.New()
		r.POST("/api/reparations/suivi", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.AppointmentStatus("shipped"), "").Return(
			entities.TrackingEntry{}, usecase.ErrInvalidStatus)

		body := `{"rdvId":1,"statut":"shipped"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reparations/suivi", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("appended entry is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairUseCase(ctrl)
		h := NewRepairHandler(uc, nil)

		r := gin.New()
		r.POST("/api/reparations/suivi", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.AppointmentStatusInProgress, "diagnostic fait").Return(
			entities.TrackingEntry{ID: 3, AppointmentID: 1, Status: entities.AppointmentStatusInProgress, Note: "diagnostic fait"}, nil)

		body := `{"rdvId":1,"statut":"in_progress","note":"diagnostic fait"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reparations/suivi", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["rdvId"] != float64(1) || resp["statut"] != "in_progress" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

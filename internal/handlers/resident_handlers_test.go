package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory_backend/internal/models"
	"inventory_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResidentService struct {
	createFn func(req services.CreateResidentRequest) (*models.Resident, error)
	listFn   func() ([]models.Resident, error)
	updateFn func(residentID string, req services.UpdateResidentRequest) (*models.Resident, error)
	deleteFn func(residentID string) error
}

func (s *stubResidentService) CreateResident(req services.CreateResidentRequest) (*models.Resident, error) {
	return s.createFn(req)
}

func (s *stubResidentService) GetResidents() ([]models.Resident, error) {
	return s.listFn()
}

func (s *stubResidentService) UpdateResident(residentID string, req services.UpdateResidentRequest) (*models.Resident, error) {
	return s.updateFn(residentID, req)
}

func (s *stubResidentService) DeleteResident(residentID string) error {
	return s.deleteFn(residentID)
}

func newResidentTestRouter(svc services.ResidentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewResidentHandler(svc)

	residents := engine.Group("/api/residents")
	residents.GET("", handler.GetResidents)
	residents.POST("", handler.CreateResident)
	residents.PUT("/:id", handler.UpdateResident)
	residents.DELETE("/:id", handler.DeleteResident)
	return engine
}

func TestResidentHandler_CreateResident(t *testing.T) {
	t.Run("returns the created resident", func(t *testing.T) {
		svc := &stubResidentService{createFn: func(req services.CreateResidentRequest) (*models.Resident, error) {
			return &models.Resident{ID: "resident-1", Name: req.Name}, nil
		}}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/residents", strings.NewReader(`{"name":"Tanaka"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resident models.Resident
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resident))
		assert.Equal(t, "resident-1", resident.ID)
		assert.Equal(t, "Tanaka", resident.Name)
	})

	t.Run("rejects a nameless body", func(t *testing.T) {
		svc := &stubResidentService{createFn: func(req services.CreateResidentRequest) (*models.Resident, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		}}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/residents", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResidentHandler_GetResidents(t *testing.T) {
	svc := &stubResidentService{listFn: func() ([]models.Resident, error) {
		return nil, nil
	}}
	engine := newResidentTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/residents", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestResidentHandler_UpdateResident(t *testing.T) {
	t.Run("unknown resident maps to 404", func(t *testing.T) {
		svc := &stubResidentService{updateFn: func(residentID string, req services.UpdateResidentRequest) (*models.Resident, error) {
			return nil, services.ErrResidentNotFound
		}}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/residents/missing", strings.NewReader(`{"name":"Sato"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resident not found")
	})

	t.Run("returns the refreshed record", func(t *testing.T) {
		svc := &stubResidentService{updateFn: func(residentID string, req services.UpdateResidentRequest) (*models.Resident, error) {
			return &models.Resident{ID: residentID, Name: req.Name}, nil
		}}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/residents/resident-1", strings.NewReader(`{"name":"Sato"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resident models.Resident
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resident))
		assert.Equal(t, "Sato", resident.Name)
	})
}

func TestResidentHandler_DeleteResident(t *testing.T) {
	t.Run("returns a confirmation message", func(t *testing.T) {
		svc := &stubResidentService{deleteFn: func(residentID string) error { return nil }}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/residents/resident-1", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Resident and associated items deleted successfully"}`, w.Body.String())
	})

	t.Run("unknown resident maps to 404", func(t *testing.T) {
		svc := &stubResidentService{deleteFn: func(residentID string) error { return services.ErrResidentNotFound }}
		engine := newResidentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/residents/missing", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

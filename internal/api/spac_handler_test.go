package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/rules"
	"github.com/spacos/spac-os-api/internal/services"
)

// Mock SPAC service for testing. It embeds the interface so only the methods
// a test exercises need stubbing.
type mockSPACService struct {
	services.SPACService
	spac *models.SPAC
	err  error
}

func (m *mockSPACService) GetByID(id string) (*models.SPAC, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.spac, nil
}

func (m *mockSPACService) UpdateStatus(id, requested string) (*models.SPAC, error) {
	if m.err != nil {
		return nil, m.err
	}
	updated := *m.spac
	updated.Status = requested
	return &updated, nil
}

func setupSPACRouter(svc services.SPACService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewSPACHandler(svc)
	r.GET("/spacs/:id", handler.GetSPAC)
	r.PUT("/spacs/:id/status", handler.UpdateSPACStatus)
	return r
}

func TestGetSPAC(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACSearching}
	router := setupSPACRouter(&mockSPACService{spac: spac})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/spacs/"+spac.ID.String(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		SPAC models.SPAC `json:"spac"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.SPAC.Name != "Apex Acquisition Corp" {
		t.Errorf("name = %q, want Apex Acquisition Corp", body.SPAC.Name)
	}
}

func TestGetSPACNotFound(t *testing.T) {
	router := setupSPACRouter(&mockSPACService{err: apperrors.NotFound("SPAC not found", nil)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/spacs/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateSPACStatus(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACSearching}
	router := setupSPACRouter(&mockSPACService{spac: spac})

	payload, _ := json.Marshal(map[string]string{"status": rules.SPACLOISigned})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/spacs/"+spac.ID.String()+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestUpdateSPACStatusInvalidTransition(t *testing.T) {
	router := setupSPACRouter(&mockSPACService{
		err: apperrors.InvalidTransition("invalid spac status transition SEARCHING -> COMPLETED", nil),
	})

	payload, _ := json.Marshal(map[string]string{"status": rules.SPACCompleted})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/spacs/"+uuid.New().String()+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Code != apperrors.ErrCodeInvalidTransition {
		t.Errorf("code = %q, want %q", body.Code, apperrors.ErrCodeInvalidTransition)
	}
}

func TestUpdateSPACStatusMissingBody(t *testing.T) {
	router := setupSPACRouter(&mockSPACService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/spacs/"+uuid.New().String()+"/status", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/internal/api/handlers"
	"suraksha/internal/models"
	"suraksha/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every operation
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("store down") }
func (brokenStore) Delete(context.Context, string) error      { return errors.New("store down") }
func (brokenStore) Ping(context.Context) error                { return errors.New("store down") }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		store      storage.Store
		wantStatus int
		wantErr    bool
	}{
		{
			name:       "Success",
			store:      storage.NewMemoryStore(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Error_StorageDown",
			store:      brokenStore{},
			wantStatus: http.StatusServiceUnavailable,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(tt.store)

			router := gin.New()
			router.GET("/health", handler.Health)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantErr {
				var errResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				require.Equal(t, "storage connection failed", errResp.Error)
			} else {
				var resp models.HealthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, "healthy", resp.Status)
			}
		})
	}
}

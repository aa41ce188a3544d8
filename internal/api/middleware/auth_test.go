package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/internal/api/middleware"
	"suraksha/internal/auth"
	"suraksha/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tc := testutil.NewTestContext(t)
	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)
	token := tc.GetTestJWT(user)

	authMiddleware := middleware.NewAuthMiddleware(tc.AuthService, tc.UserRepo)

	router := gin.New()
	router.GET("/protected", authMiddleware.AuthRequired(), func(c *gin.Context) {
		u := auth.GetUserFromContext(c)
		require.NotNil(t, u)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthRequiredUnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tc := testutil.NewTestContext(t)
	// A token for a user that was never persisted
	ghost := tc.CreateTestUser("Ghost", "ghost@example.com", "strongpassword", true)
	token := tc.GetTestJWT(ghost)

	other := testutil.NewTestContext(t)
	authMiddleware := middleware.NewAuthMiddleware(tc.AuthService, other.UserRepo)

	router := gin.New()
	router.GET("/protected", authMiddleware.AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-capacity-backend/internal/auth"
	"team-capacity-backend/internal/config"
	"team-capacity-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Environment:            "test",
		JWTSecret:              testSecret,
		JWTTokenTTL:            time.Hour,
		AuthEnabled:            true,
		AllowedOrigins:         []string{"http://localhost:3000"},
		DefaultAnnualLeaveDays: 25,
	}
}

func tokenFor(t *testing.T, role models.UserRole) string {
	service, err := auth.NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)
	token, err := service.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "planner@example.com",
		Role:      role,
	})
	require.NoError(t, err)
	return token
}

// These cases are all answered by middleware before a handler touches the database.
func TestSetupRoutes_Guards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(nil, testConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		role       models.UserRole
		wantStatus int
	}{
		{"missing token", http.MethodGet, "/api/v1/employees", "", http.StatusUnauthorized},
		{"member cannot create allocations", http.MethodPost, "/api/v1/allocations", models.UserRoleMember, http.StatusForbidden},
		{"member cannot delete employees", http.MethodDelete, "/api/v1/employees/" + uuid.NewString(), models.UserRoleMember, http.StatusForbidden},
		{"guest cannot list users", http.MethodGet, "/api/v1/users", models.UserRoleGuest, http.StatusForbidden},
		{"bad employee id", http.MethodGet, "/api/v1/employees/not-a-uuid", models.UserRoleMember, http.StatusBadRequest},
		{"unknown endpoint", http.MethodGet, "/api/v2/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.role != "" {
				req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.role))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestSetupRoutes_ValidateToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.UserRoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}

func TestSetupRoutes_AuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.AuthEnabled = false
	router := SetupRoutes(nil, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/markers/oops", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetupHealthRoutes_Live(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupHealthRoutes(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

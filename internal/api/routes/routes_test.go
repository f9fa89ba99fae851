package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/config"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Environment: env,
		LogLevel:    "info",
		Server: config.ServerConfig{
			Port:            8080,
			Host:            "localhost",
			ReadTimeout:     30,
			WriteTimeout:    30,
			RateLimitPerMin: 1000,
			AllowedOrigins:  []string{"*"},
		},
	}
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(testConfig("test"), constants.Default(), logger.NewNop())

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/constants", http.StatusOK},
		{"/api/v1/constants.env", http.StatusOK},
		{"/api/v1/constants/groups/amm", http.StatusOK},
		{"/api/v1/constants/CETUS_GLOBAL_CONFIG_ID", http.StatusOK},
		{"/api/v1/constants/NOPE", http.StatusNotFound},
		{"/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestSwaggerDisabledInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(testConfig("production"), constants.Default(), logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

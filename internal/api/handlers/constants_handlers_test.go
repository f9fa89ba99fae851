package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pumpsui/pumpsui_service/internal/domain/entities"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func setupConstantsRouter(set *constants.Set) *gin.Engine {
	return setupConstantsRouterWithMetrics(set, nil)
}

func setupConstantsRouterWithMetrics(set *constants.Set, lookups *tracing.LookupMetrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewConstantsHandlers(set, lookups, zap.NewNop())
	health := NewHealthHandler(set, "test")

	router := gin.New()
	router.GET("/health", health.Health)
	router.GET("/api/v1/constants", h.ListConstants)
	router.GET("/api/v1/constants.env", h.ExportEnv)
	router.GET("/api/v1/constants/groups/:group", h.GetGroup)
	router.GET("/api/v1/constants/:key", h.GetConstant)
	return router
}

func doGet(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListConstants(t *testing.T) {
	router := setupConstantsRouter(constants.Default())

	w := doGet(router, "/api/v1/constants")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.ConstantListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Count)
	require.Len(t, resp.Constants, 11)
	assert.Equal(t, constants.KeyTestSuiPackageID, resp.Constants[0].Key)
	assert.Equal(t, "object_id", resp.Constants[0].Kind)
	assert.Equal(t, constants.KeyAPIBaseURL, resp.Constants[10].Key)
	assert.Equal(t, constants.APIBaseURL, resp.Constants[10].Value)
}

func TestGetConstant(t *testing.T) {
	router := setupConstantsRouter(constants.Default())

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedValue  string
		expectedCode   string
	}{
		{
			name:           "exact key",
			path:           "/api/v1/constants/CLOCK_ID",
			expectedStatus: http.StatusOK,
			expectedValue:  constants.ClockID,
		},
		{
			name:           "lower case key",
			path:           "/api/v1/constants/cetus_pools_id",
			expectedStatus: http.StatusOK,
			expectedValue:  constants.CetusPoolsID,
		},
		{
			name:           "unknown key",
			path:           "/api/v1/constants/ORACLE_ID",
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrCodeConstantNotFound,
		},
		{
			name:           "blank key",
			path:           "/api/v1/constants/%20",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.path)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var errResp entities.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
				return
			}

			var resp entities.ConstantResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedValue, resp.Value)
		})
	}
}

func TestGetGroup(t *testing.T) {
	router := setupConstantsRouter(constants.Default())

	w := doGet(router, "/api/v1/constants/groups/lending")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.ConstantListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, constants.LendingCorePackageID, resp.Constants[0].Value)
	assert.Equal(t, constants.LendingStorageID, resp.Constants[1].Value)

	w = doGet(router, "/api/v1/constants/groups/oracle")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrCodeGroupNotFound)
}

func TestServesOverriddenSet(t *testing.T) {
	set, err := constants.Default().WithOverrides(map[string]string{
		constants.KeyAPIBaseURL: "https://api.pumpsui.example/api",
	})
	require.NoError(t, err)
	router := setupConstantsRouter(set)

	w := doGet(router, "/api/v1/constants/API_BASE_URL")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://api.pumpsui.example/api")
}

func TestExportEnv(t *testing.T) {
	router := setupConstantsRouter(constants.Default())

	w := doGet(router, "/api/v1/constants.env")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "CLOCK_ID="+constants.ClockID+"\n")
}

func TestHealth(t *testing.T) {
	router := setupConstantsRouter(constants.Default())

	w := doGet(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Environment)
	assert.Equal(t, 11, resp.Constants)
}

func TestGetConstantRecordsLookups(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	lookups, err := tracing.NewLookupMetrics()
	require.NoError(t, err)
	router := setupConstantsRouterWithMetrics(constants.Default(), lookups)

	require.Equal(t, http.StatusOK, doGet(router, "/api/v1/constants/CLOCK_ID").Code)
	require.Equal(t, http.StatusNotFound, doGet(router, "/api/v1/constants/ORACLE_ID").Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)

	results := map[string]int64{}
	for _, dp := range sum.DataPoints {
		result, _ := dp.Attributes.Value(attribute.Key("result"))
		results[result.AsString()] += dp.Value
	}
	assert.Equal(t, map[string]int64{"found": 1, "not_found": 1}, results)
}

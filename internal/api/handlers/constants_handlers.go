package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pumpsui/pumpsui_service/internal/domain/entities"
	domainerrors "github.com/pumpsui/pumpsui_service/internal/domain/errors"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/metrics"
	"github.com/pumpsui/pumpsui_service/pkg/tracing"
	"go.uber.org/zap"
)

// ConstantsHandlers serves the constant set read-only
type ConstantsHandlers struct {
	set     *constants.Set
	lookups *tracing.LookupMetrics
	logger  *zap.Logger
}

// NewConstantsHandlers creates constants handlers for a validated set.
// lookups may be nil.
func NewConstantsHandlers(set *constants.Set, lookups *tracing.LookupMetrics, logger *zap.Logger) *ConstantsHandlers {
	return &ConstantsHandlers{set: set, lookups: lookups, logger: logger}
}

// ListConstants returns every constant in declaration order
// @Summary List constants
// @Tags constants
// @Produce json
// @Success 200 {object} entities.ConstantListResponse
// @Router /api/v1/constants [get]
func (h *ConstantsHandlers) ListConstants(c *gin.Context) {
	c.JSON(http.StatusOK, entities.NewConstantListResponse(h.set.Entries()))
}

// GetConstant returns one constant by key
// @Summary Get constant
// @Tags constants
// @Produce json
// @Param key path string true "Constant key, e.g. CETUS_POOLS_ID"
// @Success 200 {object} entities.ConstantResponse
// @Failure 404 {object} entities.ErrorResponse
// @Router /api/v1/constants/{key} [get]
func (h *ConstantsHandlers) GetConstant(c *gin.Context) {
	key := strings.ToUpper(strings.TrimSpace(c.Param("key")))
	if key == "" {
		SendDomainError(c, domainerrors.ValidationError("key", "constant key is required"))
		return
	}

	entry, ok := h.set.Entry(key)
	if !ok {
		metrics.ConstantLookupsTotal.WithLabelValues("unknown", "not_found").Inc()
		h.lookups.Record(c.Request.Context(), "unknown", "not_found")
		h.logger.Debug("Unknown constant requested", zap.String("key", key))
		_, err := h.set.Get(key)
		SendDomainError(c, domainerrors.FromConstantError(err, key))
		return
	}

	metrics.ConstantLookupsTotal.WithLabelValues(entry.Key, "found").Inc()
	h.lookups.Record(c.Request.Context(), entry.Key, "found")
	c.JSON(http.StatusOK, entities.NewConstantResponse(entry))
}

// GetGroup returns the constants of one group
// @Summary List constants in a group
// @Tags constants
// @Produce json
// @Param group path string true "token, amm, lending, framework or api"
// @Success 200 {object} entities.ConstantListResponse
// @Failure 404 {object} entities.ErrorResponse
// @Router /api/v1/constants/groups/{group} [get]
func (h *ConstantsHandlers) GetGroup(c *gin.Context) {
	group := strings.ToLower(strings.TrimSpace(c.Param("group")))
	if !constants.IsGroup(group) {
		SendNotFound(c, ErrCodeGroupNotFound, "group "+group+" not found")
		return
	}

	c.JSON(http.StatusOK, entities.NewConstantListResponse(h.set.Group(constants.Group(group))))
}

// ExportEnv renders the set as KEY=value lines for build pipelines
// @Summary Export constants as dotenv
// @Tags constants
// @Produce plain
// @Success 200 {string} string
// @Router /api/v1/constants.env [get]
func (h *ConstantsHandlers) ExportEnv(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.set.EnvLines()))
}

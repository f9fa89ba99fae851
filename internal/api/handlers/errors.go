package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pumpsui/pumpsui_service/internal/domain/entities"
	domainerrors "github.com/pumpsui/pumpsui_service/internal/domain/errors"
)

// Error codes as constants for consistent error responses across handlers
const (
	ErrCodeConstantNotFound = "CONSTANT_NOT_FOUND"
	ErrCodeGroupNotFound    = "GROUP_NOT_FOUND"
)

// SendNotFound sends a 404 Not Found error
func SendNotFound(c *gin.Context, code, message string) {
	c.JSON(http.StatusNotFound, entities.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// SendDomainError maps a domain error onto its HTTP status
func SendDomainError(c *gin.Context, err *domainerrors.DomainError) {
	c.JSON(domainerrors.HTTPStatus(err), entities.ErrorResponse{
		Code:    err.Code,
		Message: err.Error(),
		Details: err.Details,
	})
}

// Package http provides HTTP handlers for the delivery audit trail.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/caseflow/internal/deliveryaudit/http/dto"
	auditUseCase "github.com/allisson/caseflow/internal/deliveryaudit/usecase"
	"github.com/allisson/caseflow/internal/httputil"
)

// DeliveryHandler handles HTTP requests for the per-case delivery audit trail.
type DeliveryHandler struct {
	auditUseCase auditUseCase.UseCase
	logger       *slog.Logger
}

// NewDeliveryHandler creates a new delivery handler with required dependencies.
func NewDeliveryHandler(
	auditUseCase auditUseCase.UseCase,
	logger *slog.Logger,
) *DeliveryHandler {
	return &DeliveryHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// ListDeliveriesHandler retrieves delivery records for a case with pagination support.
// GET /v1/cases/:case_id/deliveries?offset=0&limit=50 - Requires authentication.
// Returns 200 OK with the paginated delivery record list.
func (h *DeliveryHandler) ListDeliveriesHandler(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	records, err := h.auditUseCase.ListDeliveries(c.Request.Context(), caseID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapDeliveryRecordsToListResponse(records)
	c.JSON(http.StatusOK, response)
}

// ListCorrespondenceHandler retrieves diverted letters for a case with pagination support.
// GET /v1/cases/:case_id/correspondence?offset=0&limit=50 - Requires authentication.
// Returns 200 OK with the paginated correspondence list, bodies decrypted.
func (h *DeliveryHandler) ListCorrespondenceHandler(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	entries, err := h.auditUseCase.ListCorrespondence(c.Request.Context(), caseID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapCorrespondenceToListResponse(entries)
	c.JSON(http.StatusOK, response)
}

// parseCaseID parses the case_id path parameter.
func parseCaseID(c *gin.Context) (int64, error) {
	caseID, err := strconv.ParseInt(c.Param("case_id"), 10, 64)
	if err != nil || caseID < 1 {
		return 0, fmt.Errorf("invalid case_id parameter: must be a positive integer")
	}
	return caseID, nil
}

// Package http provides the HTTP entry point for inbound case events.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/caseflow/internal/callback/http/dto"
	callbackUseCase "github.com/allisson/caseflow/internal/callback/usecase"
	"github.com/allisson/caseflow/internal/httputil"
	customValidation "github.com/allisson/caseflow/internal/validation"
)

// CallbackHandler handles HTTP requests carrying case events.
// It binds the inbound envelope and hands the event to the dispatcher.
type CallbackHandler struct {
	dispatcher callbackUseCase.Dispatcher
	logger     *slog.Logger
}

// NewCallbackHandler creates a new callback handler with required dependencies.
func NewCallbackHandler(
	dispatcher callbackUseCase.Dispatcher,
	logger *slog.Logger,
) *CallbackHandler {
	return &CallbackHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessCallbackHandler dispatches an inbound case event to the registered handlers.
// POST /v1/callback - Requires authentication.
// Returns 200 OK once every applicable handler has run.
func (h *CallbackHandler) ProcessCallbackHandler(c *gin.Context) {
	var req dto.CaseEventRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	event := req.ToDomain()

	// Dispatch runs every applicable handler synchronously; a handler failure
	// aborts the run and surfaces here.
	if err := h.dispatcher.Dispatch(c.Request.Context(), event); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.CaseEventResponse{
		CaseID:  event.CaseID(),
		Message: "case event processed",
	}

	c.JSON(http.StatusOK, response)
}

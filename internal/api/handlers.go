package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
	"github.com/wordweaver-ai/wordweaver/internal/service/orchestrator"
	"github.com/wordweaver-ai/wordweaver/pkg/errors"
)

type Handler struct {
	orchestrator *orchestrator.Orchestrator
	logger       *logger.Logger
}

func NewHandler(orch *orchestrator.Orchestrator, log *logger.Logger) *Handler {
	return &Handler{
		orchestrator: orch,
		logger:       log,
	}
}

func (h *Handler) Generate(c *gin.Context) {
	requestID := c.GetString(requestIDKey)
	log := h.logger.With("request_id", requestID)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.Wrap(err, errors.ErrCodeInvalidReq, "malformed request body")
		log.Warn("invalid request", "code", appErr.Code, "error", appErr)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: InvalidRequestMessage})
		return
	}

	result, err := h.orchestrator.Generate(c.Request.Context(), &orchestrator.GenerateRequest{
		RequestID:   requestID,
		Description: req.Description,
		Platform:    req.Platform,
		Style:       req.Style,
		Language:    req.Language,
	})
	if err != nil {
		h.handleError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Result: result.Result})
}

// handleError collapses every failure into the generic message. An empty
// completion still answers 200 with the fallback sentence.
func (h *Handler) handleError(c *gin.Context, log *logger.Logger, err error) {
	if errors.Is(err, errors.ErrCodeEmptyCompletion) {
		c.JSON(http.StatusOK, GenerateResponse{Result: FallbackResult})
		return
	}

	log.Debug("failed to generate caption",
		"code", errors.CodeOf(err),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ProviderFailureMessage})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
	"github.com/MeritX-US/meritx-intake/internal/adapter/dto"
	"github.com/MeritX-US/meritx-intake/internal/usecase/summary"
)

// SummarizeHandler handles transcript summarization requests
type SummarizeHandler struct {
	svc    summary.Service
	logger *zap.Logger
}

// NewSummarizeHandler creates a new summarization handler
func NewSummarizeHandler(svc summary.Service, logger *zap.Logger) *SummarizeHandler {
	return &SummarizeHandler{svc: svc, logger: logger}
}

// Summarize produces a structured consultation summary from transcript text
// @Summary      Summarize a consultation transcript
// @Description  Generates a structured legal intake summary in Markdown from the full transcript text
// @Tags         Summarization
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequest  true  "Transcript text"
// @Success      200  {object}  dto.SummarizeResponse
// @Failure      400  {object}  dto.ErrorResponse  "Missing or empty transcript text"
// @Failure      500  {object}  dto.ErrorResponse  "Summarization failed"
// @Router       /summarize [post]
func (h *SummarizeHandler) Summarize(c echo.Context) error {
	var req dto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("No transcript text provided"))
	}

	result, err := h.svc.Summarize(c.Request().Context(), req.Text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: result})
}

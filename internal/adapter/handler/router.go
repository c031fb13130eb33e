package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MeritX-US/meritx-intake/internal/adapter/dto"
)

// Router wires the HTTP endpoints to their handlers
type Router struct {
	transcribe *TranscribeHandler
	summarize  *SummarizeHandler
}

// NewRouter creates a new router
func NewRouter(transcribe *TranscribeHandler, summarize *SummarizeHandler) *Router {
	return &Router{transcribe: transcribe, summarize: summarize}
}

// Setup registers all routes on the Echo instance
func (r *Router) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.health)
	api.POST("/transcribe", r.transcribe.Transcribe)
	api.POST("/summarize", r.summarize.Summarize)
}

// health reports service liveness
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (r *Router) health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

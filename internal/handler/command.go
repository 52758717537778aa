package handler

import (
	"errors"
	"net/http"

	"cartsense/internal/model"
	"cartsense/internal/service"

	"github.com/gin-gonic/gin"
)

// CommandHandler handles natural-language command HTTP requests
type CommandHandler struct {
	pipeline *service.Pipeline
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(pipeline *service.Pipeline) *CommandHandler {
	return &CommandHandler{pipeline: pipeline}
}

// Command handles POST /api/v1/command
func (h *CommandHandler) Command(c *gin.Context) {
	var req model.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.pipeline.Process(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Command text is empty"})
		case errors.Is(err, service.ErrExtractionUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Intent extraction is unavailable: " + err.Error(),
				"hint":  "Check GEMINI_API_KEY / OPENAI_API_KEY configuration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Command failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

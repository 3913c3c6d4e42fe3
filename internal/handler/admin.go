package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/markdown"
)

// adminPreview renders editor content to sanitized HTML for the live
// preview pane.
func (h *Handler) adminPreview(c *gin.Context) {
	var input dto.PreviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.PreviewResponse{HTML: markdown.Render(input.Content)})
}

// adminViewStats exposes the process-lifetime view tally. The durable
// per-post counter lives on the posts themselves; this one resets on
// every restart.
func (h *Handler) adminViewStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"views": h.tally.Snapshot()})
}

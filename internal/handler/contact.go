package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
)

func (h *Handler) contactSend(c *gin.Context) {
	var input dto.ContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errMissingFields.Error()))
		return
	}

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errMissingFields.Error()))
		return
	}

	if err := h.services.Contact.Send(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("message sent"))
}

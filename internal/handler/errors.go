package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/service"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errMissingFields = errors.New("name, email and message are required")
)

// respondError converts a service error into the status + {error} body
// contract. Unknown errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err {
	case service.ErrPostNotFound:
		status = http.StatusNotFound
	case service.ErrSlugTaken:
		status = http.StatusConflict
	case service.ErrInvalidCategory, service.ErrAuthorNotFound:
		status = http.StatusBadRequest
	case service.ErrInvalidCredentials:
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		err = service.ErrInternal
	}

	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

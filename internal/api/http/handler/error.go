package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/model"
)

func handleError(err error) (int, string) {
	apiErr, ok := apiErrors.As(err)
	switch {
	case ok:
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		apiErr = apiErrors.NewErrInternalServerError(err)
	}
	return apiErr.HTTPCode, apiErr.Message
}

func respondError(c *gin.Context, err error) {
	code, message := handleError(err)
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apiErrors.NewErrMalformattedID(err)
	}
	return id, nil
}

func errInvalidBody(err error) error {
	apiErr := apiErrors.NewErrValidation("invalid request body")
	apiErr.Err = err
	return apiErr
}

// UnknownEndpoint answers requests that match no route.
func UnknownEndpoint(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
}

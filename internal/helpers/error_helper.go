package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/repositories"
	"github.com/tmarqs/eventstay/internal/services"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithServiceError maps workflow errors onto HTTP statuses: missing
// resources become 404 with the handler's message, policy rejections keep
// the status they carry, anything else is a 500.
func RespondWithServiceError(c *gin.Context, err error, notFoundMessage string) {
	var reqErr *services.RequestError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, notFoundMessage)
	case errors.As(err, &reqErr):
		RespondWithError(c, reqErr.Status, reqErr.Message)
	default:
		RespondWithError(c, http.StatusInternalServerError, "Something went wrong.")
	}
}

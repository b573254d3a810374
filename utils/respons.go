package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError maps the error taxonomy to HTTP status codes:
// validation -> 400, conflict -> 409, not found -> 404, anything else -> 500.
func RespondAppError(c *gin.Context, err error) {
	switch err.(type) {
	case *ValidationError:
		RespondError(c, http.StatusBadRequest, err)
	case *ConflictError:
		RespondError(c, http.StatusConflict, err)
	case *NotFoundError:
		RespondError(c, http.StatusNotFound, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}

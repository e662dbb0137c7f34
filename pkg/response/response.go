package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func Success(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Data:    data,
		Message: msg,
	})
}

func Created(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Data:    data,
		Message: msg,
	})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{
		Status:  status,
		Message: msg,
	})
}

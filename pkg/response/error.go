package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError is a terminal domain failure. Code doubles as the HTTP status.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func InvalidArgument(msg string) *BizError { return NewError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *BizError    { return NewError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *BizError       { return NewError(http.StatusForbidden, msg) }
func NotFound(msg string) *BizError        { return NewError(http.StatusNotFound, msg) }
func Conflict(msg string) *BizError        { return NewError(http.StatusConflict, msg) }

// CodeOf reports the status carried by err, or 500 for anything that is not a BizError.
func CodeOf(err error) int {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return http.StatusInternalServerError
}

// IsCode reports whether err is a BizError with the given code.
func IsCode(err error, code int) bool {
	var be *BizError
	return errors.As(err, &be) && be.Code == code
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  httpStatus,
		Message: msg,
	})
}

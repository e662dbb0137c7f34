package handler

import (
	"net/http"

	"Vidtube/pkg/context"
	"Vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Health struct {
	Db *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", context.Wrap(h.Check))
}

func (h *Health) Check(c *gin.Context) error {
	sqlDB, err := h.Db.DB()
	if err != nil {
		return errors.Wrap(err, "health: sql db")
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		return response.NewError(http.StatusServiceUnavailable, "database unavailable")
	}
	response.Success(c, gin.H{"database": "ok"}, "OK")
	return nil
}

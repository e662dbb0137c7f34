package handler

import (
	"Vidtube/config"
	"Vidtube/middleware"
	"Vidtube/pkg/context"
	"Vidtube/pkg/response"
	"Vidtube/service"
	"Vidtube/types"

	"github.com/gin-gonic/gin"
)

type Subscription struct {
	Config              *config.Config
	UserService         service.IUserService
	SubscriptionService service.ISubscriptionService
}

func (h *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	subs := r.Group("/subscriptions", authorize)
	subs.POST("/c/:channelId", context.Wrap(h.Toggle))
	subs.GET("/c/:channelId", context.Wrap(h.Subscribers))
	subs.GET("/u/:subscriberId", context.Wrap(h.Channels))
}

// Toggle 订阅/取消订阅频道
func (h *Subscription) Toggle(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}
	status, err := h.SubscriptionService.Toggle(c.Request.Context(), uid, channelID)
	if err != nil {
		return err
	}
	msg := "Unsubscribed successfully"
	if status.IsSubscribed {
		msg = "Subscribed successfully"
	}
	response.Success(c, status, msg)
	return nil
}

func (h *Subscription) Subscribers(c *gin.Context) error {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.SubscriptionService.Subscribers(c.Request.Context(), channelID, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Subscribers fetched successfully")
	return nil
}

func (h *Subscription) Channels(c *gin.Context) error {
	subscriberID, err := pathID(c, "subscriberId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.SubscriptionService.SubscribedChannels(c.Request.Context(), subscriberID, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Subscribed channels fetched successfully")
	return nil
}

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

type Tweet struct {
	Config       *config.Config
	UserService  service.IUserService
	TweetService service.ITweetService
}

func (h *Tweet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	tweets := r.Group("/tweets", authorize)
	tweets.POST("", context.Wrap(h.Create))
	tweets.GET("/user/:userId", context.Wrap(h.ListByUser))
	tweets.PATCH("/:tweetId", context.Wrap(h.Update))
	tweets.DELETE("/:tweetId", context.Wrap(h.Delete))
}

func (h *Tweet) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	tweet, err := h.TweetService.Create(c.Request.Context(), uid, req.Content)
	if err != nil {
		return err
	}
	response.Created(c, tweet, "Tweet created successfully")
	return nil
}

func (h *Tweet) ListByUser(c *gin.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.TweetService.ListByUser(c.Request.Context(), userID, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Tweets fetched successfully")
	return nil
}

func (h *Tweet) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	tweet, err := h.TweetService.Update(c.Request.Context(), uid, tweetID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, tweet, "Tweet updated successfully")
	return nil
}

func (h *Tweet) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}
	if err := h.TweetService.Delete(c.Request.Context(), uid, tweetID); err != nil {
		return err
	}
	response.Success(c, gin.H{}, "Tweet deleted successfully")
	return nil
}

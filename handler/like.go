package handler

import (
	"Vidtube/config"
	"Vidtube/middleware"
	"Vidtube/models"
	"Vidtube/pkg/context"
	"Vidtube/pkg/response"
	"Vidtube/service"
	"Vidtube/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	UserService service.IUserService
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	likes := r.Group("/likes", authorize)
	likes.POST("/toggle/v/:videoId", context.Wrap(h.toggle(models.LikeSubjectVideo, "videoId")))
	likes.POST("/toggle/c/:commentId", context.Wrap(h.toggle(models.LikeSubjectComment, "commentId")))
	likes.POST("/toggle/t/:tweetId", context.Wrap(h.toggle(models.LikeSubjectTweet, "tweetId")))
	likes.POST("/video/:videoId", context.Wrap(h.toggle(models.LikeSubjectVideo, "videoId")))
	likes.POST("/comment/:commentId", context.Wrap(h.toggle(models.LikeSubjectComment, "commentId")))
	likes.POST("/tweet/:tweetId", context.Wrap(h.toggle(models.LikeSubjectTweet, "tweetId")))
	likes.GET("/videos", context.Wrap(h.LikedVideos))
}

func (h *Like) toggle(subject models.LikeSubject, param string) func(*gin.Context) error {
	return func(c *gin.Context) error {
		uid, err := context.GetUserID(c)
		if err != nil {
			return err
		}
		id, err := pathID(c, param)
		if err != nil {
			return err
		}
		status, err := h.LikeService.Toggle(c.Request.Context(), uid, subject, id)
		if err != nil {
			return err
		}
		msg := "Like removed"
		if status.IsLiked {
			msg = "Like added"
		}
		response.Success(c, status, msg)
		return nil
	}
}

// LikedVideos 我点赞的视频
func (h *Like) LikedVideos(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.LikeService.LikedVideos(c.Request.Context(), uid, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Liked videos fetched successfully")
	return nil
}

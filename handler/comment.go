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

type Comment struct {
	Config         *config.Config
	UserService    service.IUserService
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	comments := r.Group("/comments", authorize)
	comments.GET("/:videoId", context.Wrap(h.List))
	comments.POST("/:videoId", context.Wrap(h.Add))
	comments.PATCH("/c/:commentId", context.Wrap(h.Update))
	comments.DELETE("/c/:commentId", context.Wrap(h.Delete))
	comments.PATCH("/:commentId", context.Wrap(h.Update))
	comments.DELETE("/:commentId", context.Wrap(h.Delete))
}

// List 视频评论 (分页)
func (h *Comment) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.CommentService.List(c.Request.Context(), uid, videoID, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Comments fetched successfully")
	return nil
}

func (h *Comment) Add(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	comment, err := h.CommentService.Add(c.Request.Context(), uid, videoID, req.Content)
	if err != nil {
		return err
	}
	response.Created(c, comment, "Comment added successfully")
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	comment, err := h.CommentService.Update(c.Request.Context(), uid, commentID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, comment, "Comment updated successfully")
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}
	if err := h.CommentService.Delete(c.Request.Context(), uid, commentID); err != nil {
		return err
	}
	response.Success(c, gin.H{}, "Comment deleted successfully")
	return nil
}

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

type Video struct {
	Config       *config.Config
	UserService  service.IUserService
	VideoService service.IVideoService
}

func (h *Video) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	videos := r.Group("/videos", authorize)
	videos.GET("", context.Wrap(h.List))
	videos.GET("/u/:ownerId", context.Wrap(h.ListByOwner))
	videos.POST("", context.Wrap(h.Publish))
	videos.GET("/:videoId", context.Wrap(h.Get))
	videos.PATCH("/:videoId", context.Wrap(h.Update))
	videos.DELETE("/:videoId", context.Wrap(h.Delete))
	videos.PATCH("/toggle/publish/:videoId", context.Wrap(h.TogglePublish))
	videos.PATCH("/:videoId/toggle-publish", context.Wrap(h.TogglePublish))
}

// List 视频列表，userId 为空时列出自己的视频
func (h *Video) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.VideoListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	ownerID := uid
	if q.UserID != "" {
		if ownerID, err = decodeID(q.UserID, "userId"); err != nil {
			return err
		}
	}
	return h.list(c, uid, ownerID, &q.PageQuery)
}

func (h *Video) ListByOwner(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	ownerID, err := pathID(c, "ownerId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	return h.list(c, uid, ownerID, &q)
}

func (h *Video) list(c *gin.Context, uid, ownerID int64, q *types.PageQuery) error {
	res, err := h.VideoService.List(c.Request.Context(), uid, ownerID, q)
	if err != nil {
		return err
	}
	response.Success(c, res, "Videos fetched successfully")
	return nil
}

// Publish 上传视频 (multipart: videoFile, thumbnail)
func (h *Video) Publish(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	files := newUploads(h.Config.Upload.TempDir)
	defer files.cleanup()
	videoPath, err := files.save(c, "videoFile")
	if err != nil {
		return err
	}
	thumbPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.VideoService.Publish(c.Request.Context(), uid, &service.PublishVideoInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return err
	}
	response.Created(c, video, "Video uploaded successfully")
	return nil
}

func (h *Video) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	video, err := h.VideoService.Get(c.Request.Context(), uid, videoID)
	if err != nil {
		return err
	}
	response.Success(c, video, "Video fetched successfully")
	return nil
}

func (h *Video) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	files := newUploads(h.Config.Upload.TempDir)
	defer files.cleanup()
	videoPath, err := files.save(c, "videoFile")
	if err != nil {
		return err
	}
	thumbPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.VideoService.Update(c.Request.Context(), uid, videoID, &service.UpdateVideoInput{
		Title:         optionalForm(c, "title"),
		Description:   optionalForm(c, "description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return err
	}
	response.Success(c, video, "Video updated successfully")
	return nil
}

func (h *Video) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	if err := h.VideoService.Delete(c.Request.Context(), uid, videoID); err != nil {
		return err
	}
	response.Success(c, gin.H{}, "Video deleted successfully")
	return nil
}

func (h *Video) TogglePublish(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	status, err := h.VideoService.TogglePublish(c.Request.Context(), uid, videoID)
	if err != nil {
		return err
	}
	response.Success(c, status, "Publish status toggled successfully")
	return nil
}

package handler

import (
	stdctx "context"

	"Vidtube/config"
	"Vidtube/middleware"
	"Vidtube/pkg/context"
	"Vidtube/pkg/response"
	"Vidtube/service"
	"Vidtube/types"

	"github.com/gin-gonic/gin"
)

type Playlist struct {
	Config          *config.Config
	UserService     service.IUserService
	PlaylistService service.IPlaylistService
}

func (h *Playlist) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserService)
	playlist := r.Group("/playlist", authorize)
	playlist.POST("", context.Wrap(h.Create))
	playlist.GET("/:playlistId", context.Wrap(h.Get))
	playlist.PATCH("/:playlistId", context.Wrap(h.Update))
	playlist.DELETE("/:playlistId", context.Wrap(h.Delete))
	playlist.GET("/user/:userId", context.Wrap(h.ListByUser))
	playlist.PATCH("/add/:videoId/:playlistId", context.Wrap(h.AddVideo))
	playlist.PATCH("/remove/:videoId/:playlistId", context.Wrap(h.RemoveVideo))
}

func (h *Playlist) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	playlist, err := h.PlaylistService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, playlist, "Playlist created successfully")
	return nil
}

func (h *Playlist) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	detail, err := h.PlaylistService.Get(c.Request.Context(), uid, playlistID, &q)
	if err != nil {
		return err
	}
	response.Success(c, detail, "Playlist fetched successfully")
	return nil
}

func (h *Playlist) ListByUser(c *gin.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	res, err := h.PlaylistService.ListByUser(c.Request.Context(), userID, &q)
	if err != nil {
		return err
	}
	response.Success(c, res, "User playlists fetched successfully")
	return nil
}

func (h *Playlist) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}
	var req types.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	playlist, err := h.PlaylistService.Update(c.Request.Context(), uid, playlistID, &req)
	if err != nil {
		return err
	}
	response.Success(c, playlist, "Playlist updated successfully")
	return nil
}

func (h *Playlist) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}
	if err := h.PlaylistService.Delete(c.Request.Context(), uid, playlistID); err != nil {
		return err
	}
	response.Success(c, gin.H{}, "Playlist deleted successfully")
	return nil
}

func (h *Playlist) AddVideo(c *gin.Context) error {
	return h.entry(c, h.PlaylistService.AddVideo, "Video added to playlist")
}

func (h *Playlist) RemoveVideo(c *gin.Context) error {
	return h.entry(c, h.PlaylistService.RemoveVideo, "Video removed from playlist")
}

type playlistEntryFunc func(ctx stdctx.Context, uid, playlistID, videoID int64) (*types.PlaylistResponse, error)

func (h *Playlist) entry(c *gin.Context, fn playlistEntryFunc, msg string) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}
	playlist, err := fn(c.Request.Context(), uid, playlistID, videoID)
	if err != nil {
		return err
	}
	response.Success(c, playlist, msg)
	return nil
}

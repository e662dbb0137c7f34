package service

import (
	"context"
	"strings"

	"Vidtube/dao"
	"Vidtube/models"
	"Vidtube/pkg/response"
	"Vidtube/pkg/snowflake"
	"Vidtube/types"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ IPlaylistService = (*PlaylistService)(nil)

type IPlaylistService interface {
	Create(ctx context.Context, uid int64, req *types.CreatePlaylistRequest) (*types.PlaylistResponse, error)
	Get(ctx context.Context, viewerID, playlistID int64, q *types.PageQuery) (*types.PlaylistDetail, error)
	ListByUser(ctx context.Context, userID int64, q *types.PageQuery) (*types.PageResult[*types.PlaylistResponse], error)
	Update(ctx context.Context, uid, playlistID int64, req *types.UpdatePlaylistRequest) (*types.PlaylistResponse, error)
	Delete(ctx context.Context, uid, playlistID int64) error
	AddVideo(ctx context.Context, uid, playlistID, videoID int64) (*types.PlaylistResponse, error)
	RemoveVideo(ctx context.Context, uid, playlistID, videoID int64) (*types.PlaylistResponse, error)
}

type PlaylistService struct {
	PlaylistRepo *dao.PlaylistDAO
	VideoRepo    *dao.VideoDAO
	UsersRepo    *dao.Users
}

func (s *PlaylistService) Create(ctx context.Context, uid int64, req *types.CreatePlaylistRequest) (*types.PlaylistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.InvalidArgument("name is required")
	}
	playlist := &models.Playlist{
		ID:          snowflake.GenID(),
		OwnerID:     uid,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.PlaylistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "create playlist")
	}
	return s.respond(ctx, playlist.ID)
}

// Get returns the playlist with one page of its videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, viewerID, playlistID int64, q *types.PageQuery) (*types.PlaylistDetail, error) {
	spec, err := playlistVideoListing.resolve(q)
	if err != nil {
		return nil, err
	}
	summary, err := s.respond(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	scope := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(dao.InPlaylist(playlistID), dao.VisibleTo(viewerID))
	}
	items, total, err := s.VideoRepo.Paginate(ctx, scope, spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list playlist videos")
	}
	videos, err := videoPage(ctx, s.UsersRepo, items, total, spec)
	if err != nil {
		return nil, err
	}
	return &types.PlaylistDetail{PlaylistResponse: *summary, Videos: videos}, nil
}

func (s *PlaylistService) ListByUser(ctx context.Context, userID int64, q *types.PageQuery) (*types.PageResult[*types.PlaylistResponse], error) {
	spec, err := playlistListing.resolve(q)
	if err != nil {
		return nil, err
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{userID})
	if err != nil {
		return nil, err
	}
	owner, ok := owners[userID]
	if !ok {
		return nil, response.NotFound("user not found")
	}

	items, total, err := s.PlaylistRepo.Paginate(ctx, dao.PlaylistsOf(userID), spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list playlists")
	}
	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	counts, err := s.PlaylistRepo.CountVideos(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "count playlist videos")
	}
	out := make([]*types.PlaylistResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPlaylistResponse(p, owner, counts[p.ID]))
	}
	return types.NewPageResult(out, total, spec.page, spec.limit), nil
}

func (s *PlaylistService) Update(ctx context.Context, uid, playlistID int64, req *types.UpdatePlaylistRequest) (*types.PlaylistResponse, error) {
	data := make(map[string]any)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.InvalidArgument("name must not be empty")
		}
		data["name"] = name
	}
	if req.Description != nil {
		data["description"] = strings.TrimSpace(*req.Description)
	}
	if len(data) == 0 {
		return nil, response.InvalidArgument("nothing to update")
	}
	if _, err := s.owned(ctx, uid, playlistID); err != nil {
		return nil, err
	}

	n, err := s.PlaylistRepo.UpdateWhere(ctx, data, "id = ? AND owner_id = ?", playlistID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "update playlist")
	}
	if n == 0 {
		return nil, response.NotFound("playlist not found")
	}
	return s.respond(ctx, playlistID)
}

func (s *PlaylistService) Delete(ctx context.Context, uid, playlistID int64) error {
	if _, err := s.owned(ctx, uid, playlistID); err != nil {
		return err
	}
	if err := s.PlaylistRepo.DeleteCascade(ctx, playlistID); err != nil {
		return errors.Wrap(err, "delete playlist")
	}
	return nil
}

// AddVideo 添加视频到播放列表，重复添加不报错
func (s *PlaylistService) AddVideo(ctx context.Context, uid, playlistID, videoID int64) (*types.PlaylistResponse, error) {
	if _, err := s.owned(ctx, uid, playlistID); err != nil {
		return nil, err
	}
	if _, err := findVisibleVideo(ctx, s.VideoRepo, uid, videoID); err != nil {
		return nil, err
	}
	if err := s.PlaylistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "add video to playlist")
	}
	return s.respond(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, uid, playlistID, videoID int64) (*types.PlaylistResponse, error) {
	if _, err := s.owned(ctx, uid, playlistID); err != nil {
		return nil, err
	}
	if err := s.PlaylistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "remove video from playlist")
	}
	return s.respond(ctx, playlistID)
}

func (s *PlaylistService) find(ctx context.Context, playlistID int64) (*models.Playlist, error) {
	playlist, err := s.PlaylistRepo.FindById(ctx, playlistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("playlist not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) owned(ctx context.Context, uid, playlistID int64) (*models.Playlist, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != uid {
		return nil, response.Forbidden("you are not the owner of this playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) respond(ctx context.Context, playlistID int64) (*types.PlaylistResponse, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{playlist.OwnerID})
	if err != nil {
		return nil, err
	}
	counts, err := s.PlaylistRepo.CountVideos(ctx, []int64{playlistID})
	if err != nil {
		return nil, errors.Wrap(err, "count playlist videos")
	}
	return toPlaylistResponse(playlist, owners[playlist.OwnerID], counts[playlistID]), nil
}

package service

import (
	"context"

	"Vidtube/dao"
	"Vidtube/models"
	"Vidtube/pkg/idcodec"
	"Vidtube/types"

	"github.com/pkg/errors"
)

func toUserResponse(u *models.User) *types.UserResponse {
	return &types.UserResponse{
		ID:         idcodec.Encode(u.ID),
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toOwner(s *models.UserSummary) *types.OwnerSummary {
	if s == nil {
		return nil
	}
	return &types.OwnerSummary{
		ID:       idcodec.Encode(s.ID),
		Username: s.Username,
		FullName: s.FullName,
		Avatar:   s.Avatar,
	}
}

func userToOwner(u *models.User) *types.OwnerSummary {
	return &types.OwnerSummary{
		ID:       idcodec.Encode(u.ID),
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

func toVideoResponse(v *models.Video, owner *types.OwnerSummary) *types.VideoResponse {
	return &types.VideoResponse{
		ID:          idcodec.Encode(v.ID),
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoURL,
		Thumbnail:   v.ThumbnailURL,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		Owner:       owner,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toCommentResponse(c *models.Comment, owner *types.OwnerSummary) *types.CommentResponse {
	return &types.CommentResponse{
		ID:        idcodec.Encode(c.ID),
		Content:   c.Content,
		VideoID:   idcodec.Encode(c.VideoID),
		Owner:     owner,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toTweetResponse(t *models.Tweet, owner *types.OwnerSummary) *types.TweetResponse {
	return &types.TweetResponse{
		ID:        idcodec.Encode(t.ID),
		Content:   t.Content,
		Owner:     owner,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toPlaylistResponse(p *models.Playlist, owner *types.OwnerSummary, total int64) *types.PlaylistResponse {
	return &types.PlaylistResponse{
		ID:          idcodec.Encode(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Owner:       owner,
		TotalVideos: total,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ownersOf fetches the public summaries of the given owners in one query.
// Owners that no longer exist are missing from the result.
func ownersOf(ctx context.Context, users *dao.Users, ids []int64) (map[int64]*types.OwnerSummary, error) {
	summaries, err := users.FindSummaries(ctx, uniq(ids))
	if err != nil {
		return nil, errors.Wrap(err, "load owners")
	}
	owners := make(map[int64]*types.OwnerSummary, len(summaries))
	for id, s := range summaries {
		owners[id] = toOwner(s)
	}
	return owners, nil
}

// videoPage attaches owner summaries to a page of videos.
func videoPage(ctx context.Context, users *dao.Users, items []*models.Video, total int64, spec *pageSpec) (*types.PageResult[*types.VideoResponse], error) {
	ids := make([]int64, 0, len(items))
	for _, v := range items {
		ids = append(ids, v.OwnerID)
	}
	owners, err := ownersOf(ctx, users, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*types.VideoResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVideoResponse(v, owners[v.OwnerID]))
	}
	return types.NewPageResult(out, total, spec.page, spec.limit), nil
}

func uniq(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

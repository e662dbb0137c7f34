package dao

import (
	"context"

	"Vidtube/models"
	"Vidtube/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistDAO struct {
	Repo[models.Playlist]
}

func NewPlaylistDAO(db *gorm.DB) *PlaylistDAO {
	return &PlaylistDAO{Repo: NewRepo[models.Playlist](db)}
}

func PlaylistsOf(ownerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// AddVideo is idempotent: adding a video twice keeps one entry.
func (d *PlaylistDAO) AddVideo(ctx context.Context, playlistID, videoID int64) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PlaylistVideo{
			ID:         snowflake.GenID(),
			PlaylistID: playlistID,
			VideoID:    videoID,
		}).Error
}

func (d *PlaylistDAO) RemoveVideo(ctx context.Context, playlistID, videoID int64) error {
	return d.Db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error
}

// CountVideos returns the number of entries per playlist id.
func (d *PlaylistDAO) CountVideos(ctx context.Context, playlistIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		PlaylistID int64
		Total      int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Select("playlist_id, COUNT(*) AS total").
		Where("playlist_id IN ?", playlistIDs).
		Group("playlist_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PlaylistID] = row.Total
	}
	return result, nil
}

func (d *PlaylistDAO) DeleteCascade(ctx context.Context, playlistID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", playlistID).Delete(&models.Playlist{}).Error
	})
}

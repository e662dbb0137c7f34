package dao

import (
	"context"

	"Vidtube/models"
	"Vidtube/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoDAO struct {
	Repo[models.Video]
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{Repo: NewRepo[models.Video](db)}
}

// RecordView adds videoID to the user's watch history and bumps the view
// counter, both only the first time the pair is seen. The unique
// (user_id, video_id) index decides which request counts.
func (d *VideoDAO) RecordView(ctx context.Context, userID, videoID int64) (bool, error) {
	counted := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.WatchHistory{
			ID:      snowflake.GenID(),
			UserID:  userID,
			VideoID: videoID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		counted = true
		return tx.Model(&models.Video{}).
			Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	})
	return counted, err
}

// TogglePublish flips is_published in one statement, scoped to the owner.
// It reports false when no row belongs to ownerID.
func (d *VideoDAO) TogglePublish(ctx context.Context, videoID, ownerID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ? AND owner_id = ?", videoID, ownerID).
		Update("is_published", gorm.Expr("NOT is_published"))
	return res.RowsAffected > 0, res.Error
}

// DeleteCascade removes the video and every row that points at it.
func (d *VideoDAO) DeleteCascade(ctx context.Context, videoID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("video_id = ?", videoID)
		if err := tx.Where("subject_type = ? AND subject_id IN (?)", models.LikeSubjectComment, commentIDs).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_type = ? AND subject_id = ?", models.LikeSubjectVideo, videoID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.WatchHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", videoID).Delete(&models.Video{}).Error
	})
}

// ByOwner filters videos of ownerID, hiding unpublished ones unless
// includeUnpublished is set.
func ByOwner(ownerID int64, includeUnpublished bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("videos.owner_id = ?", ownerID)
		if !includeUnpublished {
			db = db.Where("videos.is_published = ?", true)
		}
		return db
	}
}

// LikedBy joins likes so only videos liked by userID that still exist match.
func LikedBy(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN likes ON likes.subject_id = videos.id AND likes.subject_type = ?", models.LikeSubjectVideo).
			Where("likes.liked_by = ?", userID)
	}
}

// WatchedBy joins the watch history of userID.
func WatchedBy(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN watch_histories ON watch_histories.video_id = videos.id").
			Where("watch_histories.user_id = ?", userID)
	}
}

// InPlaylist joins the entries of playlistID.
func InPlaylist(playlistID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
			Where("playlist_videos.playlist_id = ?", playlistID)
	}
}

// VisibleTo hides unpublished videos from everyone but their owner.
func VisibleTo(viewerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("videos.is_published = ? OR videos.owner_id = ?", true, viewerID)
	}
}

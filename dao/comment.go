package dao

import (
	"context"

	"Vidtube/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

func OnVideo(videoID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("video_id = ?", videoID)
	}
}

// DeleteCascade 删除评论及其点赞
func (d *Comment) DeleteCascade(ctx context.Context, commentID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_type = ? AND subject_id = ?", models.LikeSubjectComment, commentID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
}

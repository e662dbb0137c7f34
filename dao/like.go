package dao

import (
	"context"

	"Vidtube/models"
	"Vidtube/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// Toggle flips the like of userID on the subject and returns the new state.
// Both branches are single statements: a delete that removed a row means the
// subject was liked; otherwise an insert guarded by the unique
// (subject_type, subject_id, liked_by) index makes it liked. When a concurrent
// request inserted first, the conflict is ignored and the state is still liked.
func (d *LikeDAO) Toggle(ctx context.Context, subject models.LikeSubject, subjectID, userID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND liked_by = ?", subject, subjectID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	err := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{
			ID:          snowflake.GenID(),
			SubjectType: subject,
			SubjectID:   subjectID,
			LikedBy:     userID,
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsLiked 是否点赞
func (d *LikeDAO) IsLiked(ctx context.Context, subject models.LikeSubject, subjectID, userID int64) (bool, error) {
	return d.IsExist(ctx, "subject_type = ? AND subject_id = ? AND liked_by = ?", subject, subjectID, userID)
}

func (d *LikeDAO) Count(ctx context.Context, subject models.LikeSubject, subjectID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("subject_type = ? AND subject_id = ?", subject, subjectID).
		Count(&count).Error
	return count, err
}

package dao

import (
	"context"

	"Vidtube/models"

	"gorm.io/gorm"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

func TweetsOf(ownerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

func (d *TweetDAO) DeleteCascade(ctx context.Context, tweetID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_type = ? AND subject_id = ?", models.LikeSubjectTweet, tweetID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tweetID).Delete(&models.Tweet{}).Error
	})
}

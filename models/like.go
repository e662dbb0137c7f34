package models

import "time"

type LikeSubject string

const (
	LikeSubjectVideo   LikeSubject = "video"
	LikeSubjectComment LikeSubject = "comment"
	LikeSubjectTweet   LikeSubject = "tweet"
)

// Like 点赞记录
// 对应表 likes
// 唯一键: subject_type + subject_id + liked_by
// 行存在即已点赞，取消点赞直接删除
type Like struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	SubjectType LikeSubject `gorm:"column:subject_type;type:varchar(16);not null;uniqueIndex:uk_subject_user,priority:1" json:"subject_type"`
	SubjectID   int64       `gorm:"column:subject_id;not null;uniqueIndex:uk_subject_user,priority:2" json:"subject_id"`
	LikedBy     int64       `gorm:"column:liked_by;not null;uniqueIndex:uk_subject_user,priority:3;index:idx_likes_liked_by" json:"liked_by"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

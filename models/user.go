package models

import "time"

type User struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username           string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Email              string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_email" json:"email"`
	FullName           string    `gorm:"column:full_name;type:varchar(128);not null" json:"full_name"`
	Avatar             string    `gorm:"column:avatar;type:varchar(512);not null" json:"avatar"`
	AvatarPublicID     string    `gorm:"column:avatar_public_id;type:varchar(255);not null;default:''" json:"-"`
	CoverImage         string    `gorm:"column:cover_image;type:varchar(512);not null;default:''" json:"cover_image"`
	CoverImagePublicID string    `gorm:"column:cover_image_public_id;type:varchar(255);not null;default:''" json:"-"`
	Password           string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the public projection of a user embedded into listings.
// Only these columns are ever selected for it.
type UserSummary struct {
	ID       int64  `gorm:"column:id"`
	Username string `gorm:"column:username"`
	FullName string `gorm:"column:full_name"`
	Avatar   string `gorm:"column:avatar"`
}

var UserSummaryColumns = []string{"id", "username", "full_name", "avatar"}

package dao

import (
	"context"

	"Vidtube/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByLogin 用户名或邮箱查询
func (u *Users) FindByLogin(ctx context.Context, username, email string) (*models.User, error) {
	q := u.Db.WithContext(ctx)
	switch {
	case username != "" && email != "":
		q = q.Where("username = ? OR email = ?", username, email)
	case username != "":
		q = q.Where("username = ?", username)
	default:
		q = q.Where("email = ?", email)
	}
	var user models.User
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.IsExist(ctx, "email = ?", email)
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.IsExist(ctx, "username = ?", username)
}

// FindSummaries loads the public columns of the given users keyed by id.
// Ids that do not resolve are simply missing from the map.
func (u *Users) FindSummaries(ctx context.Context, ids []int64) (map[int64]*models.UserSummary, error) {
	result := make(map[int64]*models.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*models.UserSummary
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Select(models.UserSummaryColumns).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row
	}
	return result, nil
}

package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the gorm-backed base embedded by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Page describes one slice of an ordered listing. Order must be built from a
// whitelist, it is passed to the database verbatim.
type Page struct {
	Offset int
	Limit  int
	Order  string
	// Select restricts the columns of the list query, needed when Scope joins
	// tables that share column names.
	Select string
}

func (r *Repo[T]) Create(ctx context.Context, v *T) error {
	return r.Db.WithContext(ctx).Create(v).Error
}

// FindById returns gorm.ErrRecordNotFound when no row matches.
func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var v T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var v T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo[T]) FindByIds(ctx context.Context, ids []int64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

// UpdateWhere applies data to the matching rows and reports how many changed.
func (r *Repo[T]) UpdateWhere(ctx context.Context, data map[string]any, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Updates(data)
	return res.RowsAffected, res.Error
}

// Paginate runs the filtered page query and, separately, the count of every
// row the filter matches.
func (r *Repo[T]) Paginate(ctx context.Context, scope func(*gorm.DB) *gorm.DB, page Page) ([]*T, int64, error) {
	var total int64
	if err := r.Db.WithContext(ctx).Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*T, 0, page.Limit)
	if total == 0 || int64(page.Offset) >= total {
		return items, total, nil
	}

	query := r.Db.WithContext(ctx).Model(new(T)).Scopes(scope)
	if page.Select != "" {
		query = query.Select(page.Select)
	}
	if page.Order != "" {
		query = query.Order(page.Order)
	}
	err := query.Offset(page.Offset).Limit(page.Limit).Find(&items).Error
	return items, total, err
}

package audit

import (
	"context"

	"jample-admin/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	FindAllByCompany(ctx context.Context, companyID int64, kind string, offset, limit int) ([]Entry, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID int64, kind string, offset, limit int) ([]Entry, int64, error) {
	q := r.db.WithContext(ctx).Model(&Entry{}).Scopes(tenant.Scope(companyID))
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []Entry
	err := q.Order("occurred_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

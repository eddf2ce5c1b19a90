package repository

import (
	"context"

	"gorm.io/gorm"

	"tablebook/internal/domain"
)

type CommissionRepository struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

func (r *CommissionRepository) Create(ctx context.Context, c *domain.Commission) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommissionRepository) List(ctx context.Context, limit, offset int) ([]domain.Commission, error) {
	var list []domain.Commission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *CommissionRepository) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"tablebook/internal/domain"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	var t domain.Table
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("capacity, id").
		Find(&tables).Error
	return tables, err
}

// CandidatesForParty returns available tables that seat the party, tightest
// fit first, id as the tiebreaker so selection is deterministic.
func (r *TableRepository) CandidatesForParty(ctx context.Context, restaurantID int64, partySize int) ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_available = ? AND capacity >= ?", restaurantID, true, partySize).
		Order("capacity, id").
		Find(&tables).Error
	return tables, err
}

// AllAvailable returns every available table regardless of capacity. Feeds
// the degraded-fit fallback only.
func (r *TableRepository) AllAvailable(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("capacity, id").
		Find(&tables).Error
	return tables, err
}

func (r *TableRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

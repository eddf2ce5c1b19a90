package repository

import (
	"context"

	"gorm.io/gorm"

	"tablebook/internal/domain"
)

type RestaurantFilters struct {
	City   string
	Active bool
	Limit  int
	Offset int
}

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) GetAll(ctx context.Context, f RestaurantFilters) ([]domain.Restaurant, int64, error) {
	var restaurants []domain.Restaurant
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("deleted_at IS NULL")

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Active {
		q = q.Where("is_active = ?", true)
	}

	q.Count(&total)

	err := q.
		Preload("Tables").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&restaurants).Error

	return restaurants, total, err
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant

	err := r.db.WithContext(ctx).
		Where("restaurants.id = ? AND deleted_at IS NULL", id).
		Preload("Tables").
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// SetActive soft-switches the restaurant; rows are never deleted.
func (r *RestaurantRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("id = ?", id).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

type RestaurantRepository interface {
	GetAll(ctx context.Context, f repository.RestaurantFilters) ([]domain.Restaurant, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Create(ctx context.Context, r *domain.Restaurant) error
	Update(ctx context.Context, r *domain.Restaurant) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) error
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Table, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

type Service struct {
	restaurants RestaurantRepository
	tables      TableRepository
}

func NewService(restaurants RestaurantRepository, tables TableRepository) *Service {
	return &Service{restaurants: restaurants, tables: tables}
}

func (s *Service) ListRestaurants(ctx context.Context, f repository.RestaurantFilters) ([]domain.Restaurant, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.restaurants.GetAll(ctx, f)
}

func (s *Service) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	r, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// validateHours enforces the restaurant invariant opening < closing.
func validateHours(opening, closing string) error {
	open, err := domain.ParseClock(opening)
	if err != nil {
		return ErrValidation
	}
	close, err := domain.ParseClock(closing)
	if err != nil {
		return ErrValidation
	}
	if open >= close {
		return ErrValidation
	}
	return nil
}

func (s *Service) CreateRestaurant(ctx context.Context, ownerID int64, req CreateRestaurantRequest) (*domain.Restaurant, error) {
	if err := validateHours(req.OpeningTime, req.ClosingTime); err != nil {
		return nil, err
	}

	r := &domain.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		IsActive:    true,
	}
	if err := s.restaurants.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ownedRestaurant loads the restaurant and enforces vendor ownership.
func (s *Service) ownedRestaurant(ctx context.Context, ownerID, restaurantID int64) (*domain.Restaurant, error) {
	r, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return r, nil
}

func (s *Service) UpdateRestaurant(ctx context.Context, ownerID, restaurantID int64, req UpdateRestaurantRequest) (*domain.Restaurant, error) {
	r, err := s.ownedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.Address != nil {
		r.Address = *req.Address
	}
	if req.City != nil {
		r.City = *req.City
	}
	if req.OpeningTime != nil {
		r.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		r.ClosingTime = *req.ClosingTime
	}

	if err := validateHours(r.OpeningTime, r.ClosingTime); err != nil {
		return nil, err
	}
	if err := s.restaurants.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeactivateRestaurant soft-disables bookings; restaurants are never
// deleted.
func (s *Service) DeactivateRestaurant(ctx context.Context, ownerID, restaurantID int64) error {
	if _, err := s.ownedRestaurant(ctx, ownerID, restaurantID); err != nil {
		return err
	}
	return s.restaurants.SetActive(ctx, restaurantID, false)
}

func (s *Service) ActivateRestaurant(ctx context.Context, ownerID, restaurantID int64) error {
	if _, err := s.ownedRestaurant(ctx, ownerID, restaurantID); err != nil {
		return err
	}
	return s.restaurants.SetActive(ctx, restaurantID, true)
}

func (s *Service) AddTable(ctx context.Context, ownerID, restaurantID int64, req CreateTableRequest) (*domain.Table, error) {
	if req.Capacity <= 0 {
		return nil, ErrValidation
	}
	if _, err := s.ownedRestaurant(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	t := &domain.Table{
		RestaurantID: restaurantID,
		Label:        req.Label,
		Capacity:     req.Capacity,
		IsAvailable:  true,
	}
	if err := s.tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTables(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	if _, err := s.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.tables.ListByRestaurant(ctx, restaurantID)
}

// SetTableAvailability soft-disables a table without touching its booking
// history. Capacity is immutable once tables exist; there is deliberately
// no resize path.
func (s *Service) SetTableAvailability(ctx context.Context, ownerID, restaurantID, tableID int64, available bool) (*domain.Table, error) {
	if _, err := s.ownedRestaurant(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	t, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}

	if err := s.tables.SetAvailability(ctx, tableID, available); err != nil {
		return nil, err
	}
	t.IsAvailable = available
	return t, nil
}

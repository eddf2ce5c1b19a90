package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) GetAll(ctx context.Context, f repository.RestaurantFilters) ([]domain.Restaurant, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Restaurant), args.Get(1).(int64), args.Error(2)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Create(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r != nil {
		r.ID = 10
	}
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Create(ctx context.Context, t *domain.Table) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil && t != nil {
		t.ID = 1
	}
	return args.Error(0)
}

func (m *MockTableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockTableRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func ownedRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:          10,
		OwnerID:     77,
		Name:        "Trattoria",
		OpeningTime: "10:00",
		ClosingTime: "22:00",
		IsActive:    true,
	}
}

func TestCreateRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Create", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).Return(nil)

	svc := NewService(restaurants, new(MockTableRepository))

	r, err := svc.CreateRestaurant(context.Background(), 77, CreateRestaurantRequest{
		Name:        "Trattoria",
		City:        "Portland",
		OpeningTime: "10:00",
		ClosingTime: "22:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(77), r.OwnerID)
	assert.True(t, r.IsActive)
}

func TestCreateRestaurant_InvalidHours(t *testing.T) {
	svc := NewService(new(MockRestaurantRepository), new(MockTableRepository))

	cases := []struct{ open, close string }{
		{"22:00", "10:00"}, // closing before opening
		{"10:00", "10:00"}, // zero-length day
		{"10am", "22:00"},  // malformed clock
		{"10:00", "24:30"},
	}
	for _, c := range cases {
		_, err := svc.CreateRestaurant(context.Background(), 77, CreateRestaurantRequest{
			Name: "X", OpeningTime: c.open, ClosingTime: c.close,
		})
		assert.ErrorIs(t, err, ErrValidation, "%s-%s", c.open, c.close)
	}
}

func TestUpdateRestaurant_PatchesFields(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)
	restaurants.On("Update", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).Return(nil)

	svc := NewService(restaurants, new(MockTableRepository))

	name := "Trattoria Nuova"
	closing := "23:00"
	r, err := svc.UpdateRestaurant(context.Background(), 77, 10, UpdateRestaurantRequest{
		Name:        &name,
		ClosingTime: &closing,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Trattoria Nuova", r.Name)
	assert.Equal(t, "23:00", r.ClosingTime)
	assert.Equal(t, "10:00", r.OpeningTime) // untouched
}

func TestUpdateRestaurant_ForeignOwner(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)

	svc := NewService(restaurants, new(MockTableRepository))

	name := "Hijacked"
	_, err := svc.UpdateRestaurant(context.Background(), 78, 10, UpdateRestaurantRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
	restaurants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRestaurant_HoursStayConsistent(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)

	svc := NewService(restaurants, new(MockTableRepository))

	// moving opening past the existing closing must be rejected
	opening := "23:00"
	_, err := svc.UpdateRestaurant(context.Background(), 77, 10, UpdateRestaurantRequest{OpeningTime: &opening})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeactivateRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)
	restaurants.On("SetActive", mock.Anything, int64(10), false).Return(nil)

	svc := NewService(restaurants, new(MockTableRepository))

	assert.NoError(t, svc.DeactivateRestaurant(context.Background(), 77, 10))
	restaurants.AssertCalled(t, "SetActive", mock.Anything, int64(10), false)
}

func TestGetRestaurant_NotFound(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurants.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(restaurants, new(MockTableRepository))

	_, err := svc.GetRestaurant(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddTable(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	tables := new(MockTableRepository)

	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)
	tables.On("Create", mock.Anything, mock.AnythingOfType("*domain.Table")).Return(nil)

	svc := NewService(restaurants, tables)

	tab, err := svc.AddTable(context.Background(), 77, 10, CreateTableRequest{Label: "T1", Capacity: 4})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), tab.RestaurantID)
	assert.True(t, tab.IsAvailable)
}

func TestAddTable_InvalidCapacity(t *testing.T) {
	svc := NewService(new(MockRestaurantRepository), new(MockTableRepository))

	_, err := svc.AddTable(context.Background(), 77, 10, CreateTableRequest{Capacity: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetTableAvailability(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	tables := new(MockTableRepository)

	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)
	tables.On("GetByID", mock.Anything, int64(1)).Return(&domain.Table{ID: 1, RestaurantID: 10, Capacity: 4, IsAvailable: true}, nil)
	tables.On("SetAvailability", mock.Anything, int64(1), false).Return(nil)

	svc := NewService(restaurants, tables)

	tab, err := svc.SetTableAvailability(context.Background(), 77, 10, 1, false)
	assert.NoError(t, err)
	assert.False(t, tab.IsAvailable)
}

func TestSetTableAvailability_TableFromOtherRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	tables := new(MockTableRepository)

	restaurants.On("GetByID", mock.Anything, int64(10)).Return(ownedRestaurant(), nil)
	tables.On("GetByID", mock.Anything, int64(9)).Return(&domain.Table{ID: 9, RestaurantID: 11, Capacity: 4}, nil)

	svc := NewService(restaurants, tables)

	_, err := svc.SetTableAvailability(context.Background(), 77, 10, 9, false)
	assert.ErrorIs(t, err, ErrNotFound)
	tables.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebook/internal/domain"
)

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Create(ctx context.Context, c *domain.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommissionRepository) List(ctx context.Context, limit, offset int) ([]domain.Commission, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) Total(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestLedgerRecordCompleted(t *testing.T) {
	commissions := new(MockCommissionRepository)
	commissions.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Commission) bool {
		return c.ReservationID == 999 && c.RestaurantID == 10 && c.Amount == 40
	})).Return(nil)

	ledger := NewLedger(commissions, 40)

	err := ledger.RecordCompleted(context.Background(), &domain.Reservation{
		ID:           999,
		RestaurantID: 10,
		Status:       domain.ReservationCompleted,
	})
	assert.NoError(t, err)
	commissions.AssertExpectations(t)
}

func TestListCommissions(t *testing.T) {
	commissions := new(MockCommissionRepository)
	commissions.On("List", mock.Anything, 50, 0).Return([]domain.Commission{
		{ID: 1, ReservationID: 999, RestaurantID: 10, Amount: 40},
		{ID: 2, ReservationID: 1000, RestaurantID: 10, Amount: 40},
	}, nil)
	commissions.On("Total", mock.Anything).Return(float64(80), nil)

	svc := NewService(commissions)

	page, err := svc.ListCommissions(context.Background(), 0, 0) // defaults applied
	assert.NoError(t, err)
	assert.Len(t, page.Commissions, 2)
	assert.Equal(t, float64(80), page.Total)
}

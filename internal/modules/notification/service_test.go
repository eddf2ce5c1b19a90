package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebook/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           999,
		RestaurantID: 10,
		TableID:      1,
		CustomerID:   5,
		Date:         "2026-09-15",
		SlotMinutes:  690,
		PartySize:    2,
	}
}

func TestNotifyReservationCreated(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 77 &&
			n.Type == domain.NotifReservationCreated &&
			len(n.Data) > 0
	})).Return(nil)

	svc := NewService(repo, nil)

	err := svc.NotifyReservationCreated(context.Background(), 77, sampleReservation())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNotifyReservationCancelled_ReasonInMessage(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifReservationCancelled &&
			strings.Contains(n.Message, "running late")
	})).Return(nil)

	svc := NewService(repo, nil)

	err := svc.NotifyReservationCancelled(context.Background(), 5, sampleReservation(), "running late")
	assert.NoError(t, err)
}

func TestGetUserNotifications_DefaultLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByUserID", mock.Anything, int64(5), 20).Return([]domain.Notification{
		{ID: 1, UserID: 5},
	}, nil)
	repo.On("CountUnread", mock.Anything, int64(5)).Return(int64(1), nil)

	svc := NewService(repo, nil)

	list, unread, err := svc.GetUserNotifications(context.Background(), 5, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), unread)
}

func TestGetUserNotifications_UnreadCountFailureIsSoft(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByUserID", mock.Anything, int64(5), 20).Return([]domain.Notification{}, nil)
	repo.On("CountUnread", mock.Anything, int64(5)).Return(int64(0), errors.New("db down"))

	svc := NewService(repo, nil)

	list, unread, err := svc.GetUserNotifications(context.Background(), 5, 20)
	assert.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, unread)
}

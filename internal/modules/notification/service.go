package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"tablebook/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
	}
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		n.Data = b
	}

	if err := s.repo.Create(ctx, n); err != nil {
		// Best effort: delivery problems are logged, never propagated into
		// the write path that triggered them.
		s.log.Warn("notification create failed",
			zap.Int64("user_id", userID),
			zap.String("type", string(t)),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func reservationData(r *domain.Reservation) map[string]any {
	return map[string]any{
		"reservation_id": r.ID,
		"restaurant_id":  r.RestaurantID,
		"table_id":       r.TableID,
		"date":           r.Date,
		"time":           r.Time(),
	}
}

func (s *Service) NotifyReservationCreated(ctx context.Context, vendorUserID int64, r *domain.Reservation) error {
	return s.Create(
		ctx,
		vendorUserID,
		domain.NotifReservationCreated,
		"New reservation request",
		fmt.Sprintf("Party of %d requested %s at %s", r.PartySize, r.Date, r.Time()),
		reservationData(r),
	)
}

func (s *Service) NotifyReservationConfirmed(ctx context.Context, customerID int64, r *domain.Reservation) error {
	return s.Create(
		ctx,
		customerID,
		domain.NotifReservationConfirmed,
		"Reservation confirmed",
		fmt.Sprintf("Your reservation for %s at %s has been confirmed", r.Date, r.Time()),
		reservationData(r),
	)
}

func (s *Service) NotifyReservationCancelled(ctx context.Context, userID int64, r *domain.Reservation, reason string) error {
	msg := fmt.Sprintf("Reservation for %s at %s has been cancelled", r.Date, r.Time())
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Create(
		ctx,
		userID,
		domain.NotifReservationCancelled,
		"Reservation cancelled",
		msg,
		reservationData(r),
	)
}

func (s *Service) NotifyReservationCompleted(ctx context.Context, customerID int64, r *domain.Reservation) error {
	return s.Create(
		ctx,
		customerID,
		domain.NotifReservationCompleted,
		"Reservation completed",
		"Thank you for your visit",
		reservationData(r),
	)
}

func (s *Service) NotifyPaymentReceived(ctx context.Context, customerID int64, r *domain.Reservation) error {
	return s.Create(
		ctx,
		customerID,
		domain.NotifPaymentReceived,
		"Payment received",
		"Your payment was received; the reservation is awaiting restaurant confirmation",
		reservationData(r),
	)
}

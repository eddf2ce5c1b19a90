package payment

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tablebook/internal/domain"
)

var (
	ErrNotFound   = errors.New("reservation not found")
	ErrNotPayable = errors.New("reservation can no longer be paid")
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type NotificationSender interface {
	NotifyPaymentReceived(ctx context.Context, customerID int64, r *domain.Reservation) error
}

// Service consumes the opaque "payment completed" event from the payment
// channel. Payment only gates the reservation toward vendor review; it
// never confirms by itself.
type Service struct {
	reservations ReservationRepository
	notifs       NotificationSender
	log          *zap.Logger
}

func NewService(reservations ReservationRepository, notifs NotificationSender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{reservations: reservations, notifs: notifs, log: log}
}

func (s *Service) HandlePaymentCompleted(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// The gateway may deliver the event more than once.
	if r.PaymentStatus == domain.PaymentPaid {
		return r, nil
	}
	if r.Status.Terminal() {
		return nil, ErrNotPayable
	}

	if err := s.reservations.UpdatePaymentStatus(ctx, reservationID, domain.PaymentPaid); err != nil {
		return nil, err
	}
	r.PaymentStatus = domain.PaymentPaid

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentReceived(ctx, r.CustomerID, r)
	}

	s.log.Info("payment completed",
		zap.Int64("reservation_id", r.ID),
		zap.Int64("customer_id", r.CustomerID))

	return r, nil
}

package admin

import (
	"context"

	"tablebook/internal/domain"
)

type CommissionRepository interface {
	Create(ctx context.Context, c *domain.Commission) error
	List(ctx context.Context, limit, offset int) ([]domain.Commission, error)
	Total(ctx context.Context) (float64, error)
}

// Ledger records the flat platform fee charged per completed reservation.
type Ledger struct {
	commissions CommissionRepository
	fee         float64
}

func NewLedger(commissions CommissionRepository, fee float64) *Ledger {
	return &Ledger{commissions: commissions, fee: fee}
}

func (l *Ledger) RecordCompleted(ctx context.Context, r *domain.Reservation) error {
	return l.commissions.Create(ctx, &domain.Commission{
		ReservationID: r.ID,
		RestaurantID:  r.RestaurantID,
		Amount:        l.fee,
	})
}

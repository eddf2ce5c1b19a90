package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tablebook/internal/domain"
)

// ErrSlotTaken is returned when an insert loses the race for a
// (table, date, slot) binding to a concurrent writer. The unique index
// uq_reservations_active_slot is the source of truth; this error is the
// only way the conflict surfaces.
var ErrSlotTaken = errors.New("table already bound for this slot")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	RestaurantID       int64      `gorm:"column:restaurant_id"`
	TableID            int64      `gorm:"column:table_id"`
	CustomerID         int64      `gorm:"column:customer_id"`
	Date               string     `gorm:"column:date"`
	SlotMinutes        int        `gorm:"column:slot_minutes"`
	PartySize          int        `gorm:"column:party_size"`
	Status             string     `gorm:"column:status"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	SpecialNotes       *string    `gorm:"column:special_notes"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var notes, reason string
	if m.SpecialNotes != nil {
		notes = *m.SpecialNotes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Reservation{
		ID:                 m.ID,
		RestaurantID:       m.RestaurantID,
		TableID:            m.TableID,
		CustomerID:         m.CustomerID,
		Date:               m.Date,
		SlotMinutes:        domain.MinuteOfDay(m.SlotMinutes),
		PartySize:          m.PartySize,
		Status:             domain.ReservationStatus(m.Status),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		SpecialNotes:       notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var notes *string
	if r.SpecialNotes != "" {
		v := r.SpecialNotes
		notes = &v
	}
	var reason *string
	if r.CancellationReason != "" {
		v := r.CancellationReason
		reason = &v
	}

	return reservationModel{
		ID:                 r.ID,
		RestaurantID:       r.RestaurantID,
		TableID:            r.TableID,
		CustomerID:         r.CustomerID,
		Date:               r.Date,
		SlotMinutes:        int(r.SlotMinutes),
		PartySize:          r.PartySize,
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		SpecialNotes:       notes,
		CancellationReason: reason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CancelledAt:        r.CancelledAt,
	}
}

// Create inserts the reservation. The whole check-then-bind of the
// allocation engine hinges on the insert failing with ErrSlotTaken when a
// concurrent writer bound the same table for the same (date, slot) first.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isDuplicateSlot(tx.Error) {
			return ErrSlotTaken
		}
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func isDuplicateSlot(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_reservations_active_slot"
	}
	// modernc sqlite reports constraint violations by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// ActiveTableIDs reports which tables are bound by a pending or confirmed
// reservation at the exact (restaurant, date, slot).
func (r *ReservationRepository) ActiveTableIDs(ctx context.Context, restaurantID int64, date string, slot domain.MinuteOfDay) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("restaurant_id = ? AND date = ? AND slot_minutes = ? AND status IN ?",
			restaurantID, date, int(slot),
			[]string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Pluck("table_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

// SlotBinding is one (slot, table) pair occupied on a given date.
type SlotBinding struct {
	SlotMinutes int   `gorm:"column:slot_minutes"`
	TableID     int64 `gorm:"column:table_id"`
}

// ActiveBindingsForDate returns every occupied (slot, table) pair for the
// restaurant on the date, one snapshot for the whole availability read.
func (r *ReservationRepository) ActiveBindingsForDate(ctx context.Context, restaurantID int64, date string) ([]SlotBinding, error) {
	var rows []SlotBinding
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Select("slot_minutes, table_id").
		Where("restaurant_id = ? AND date = ? AND status IN ?",
			restaurantID, date,
			[]string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// UpdateStatusIf performs the compare-and-set at the heart of every
// lifecycle transition. It reports false when the reservation was not in
// the expected source status.
func (r *ReservationRepository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.ReservationStatus, reason string) (bool, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if to == domain.ReservationCancelled {
		updates["cancelled_at"] = time.Now()
		if reason != "" {
			updates["cancellation_reason"] = reason
		}
	}

	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, slot_minutes DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) ListByRestaurant(ctx context.Context, restaurantID int64, date string) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var rows []reservationModel
	tx := q.Order("date, slot_minutes").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

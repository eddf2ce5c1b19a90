package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/metrics"
	"tablebook/internal/repository"
)

// Options carries the policy knobs of the allocation engine.
type Options struct {
	// SlotGranularityMinutes is the width of a bookable slot.
	SlotGranularityMinutes int
	// AllowDegradedFit enables the fallback to any free table when no
	// table matches the party size. Off by default: the strict filter
	// coming up empty then means NoCapacity.
	AllowDegradedFit bool
}

type Service struct {
	reservations ReservationRepository
	tables       TableRepository
	restaurants  RestaurantDirectory
	notifs       NotificationSender
	commissions  CommissionRecorder
	opts         Options
	log          *zap.Logger
}

func NewService(
	reservations ReservationRepository,
	tables TableRepository,
	restaurants RestaurantDirectory,
	notifs NotificationSender,
	commissions CommissionRecorder,
	opts Options,
	log *zap.Logger,
) *Service {
	if opts.SlotGranularityMinutes <= 0 {
		opts.SlotGranularityMinutes = 30
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		reservations: reservations,
		tables:       tables,
		restaurants:  restaurants,
		notifs:       notifs,
		commissions:  commissions,
		opts:         opts,
		log:          log,
	}
}

func (s *Service) getActiveRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !rest.IsActive {
		return nil, ErrRestaurantInactive
	}
	return rest, nil
}

// Availability reports, per slot of the restaurant's operating day, how
// many candidate tables are free for the party size. It is a snapshot read:
// it does not reserve anything and does not prevent races. The write-time
// guarantee lives in CreateReservation.
func (s *Service) Availability(ctx context.Context, restaurantID int64, date string, partySize int) ([]TimeSlot, error) {
	if partySize < domain.MinPartySize || partySize > domain.MaxPartySize {
		return nil, ErrValidation
	}
	date, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	rest, err := s.getActiveRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	open, close, err := rest.Hours()
	if err != nil {
		return nil, err
	}

	candidates, err := s.tables.CandidatesForParty(ctx, restaurantID, partySize)
	if err != nil {
		return nil, err
	}

	bindings, err := s.reservations.ActiveBindingsForDate(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}

	busy := make(map[domain.MinuteOfDay]map[int64]bool, len(bindings))
	for _, b := range bindings {
		slot := domain.MinuteOfDay(b.SlotMinutes)
		if busy[slot] == nil {
			busy[slot] = make(map[int64]bool)
		}
		busy[slot][b.TableID] = true
	}

	slots := Slots(open, close, s.opts.SlotGranularityMinutes)
	out := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		free := 0
		for _, t := range candidates {
			if !busy[slot][t.ID] {
				free++
			}
		}
		out = append(out, TimeSlot{
			Time:            slot.Clock(),
			Available:       free > 0,
			TablesAvailable: free,
		})
	}
	return out, nil
}

// CreateReservation is the write path: it validates the request, selects
// the tightest-fitting free table and records the reservation as PENDING.
// The uniqueness guarantee is enforced by the persistence layer; a lost
// race is retried once with fresh table selection, then reported as
// NoCapacity.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return nil, ErrValidation
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := domain.ParseClock(req.Time)
	if err != nil {
		return nil, ErrValidation
	}

	rest, err := s.getActiveRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	open, close, err := rest.Hours()
	if err != nil {
		return nil, err
	}

	// Minute-of-day comparison, closing time inclusive.
	if slot < open || slot > close {
		return nil, ErrOutOfHours
	}
	if int(slot-open)%s.opts.SlotGranularityMinutes != 0 {
		return nil, ErrValidation
	}

	for attempt := 0; attempt < 2; attempt++ {
		tableID, err := s.pickTable(ctx, rest.ID, date, slot, req.PartySize)
		if err != nil {
			return nil, err
		}

		r := &domain.Reservation{
			RestaurantID:  rest.ID,
			TableID:       tableID,
			CustomerID:    req.CustomerID,
			Date:          date,
			SlotMinutes:   slot,
			PartySize:     req.PartySize,
			Status:        domain.ReservationPending,
			PaymentStatus: domain.PaymentUnpaid,
			SpecialNotes:  req.Notes,
		}

		if err := s.reservations.Create(ctx, r); err != nil {
			if errors.Is(err, repository.ErrSlotTaken) {
				metrics.AllocationConflicts.Inc()
				s.log.Info("allocation conflict, reselecting table",
					zap.Int64("restaurant_id", rest.ID),
					zap.String("date", date),
					zap.String("time", slot.Clock()),
					zap.Int64("table_id", tableID))
				continue
			}
			return nil, err
		}

		metrics.ReservationsCreated.Inc()

		// Side effects after the committed insert, best effort.
		if s.notifs != nil {
			_ = s.notifs.NotifyReservationCreated(ctx, rest.OwnerID, r)
		}
		return r, nil
	}

	metrics.AllocationNoCapacity.Inc()
	return nil, ErrNoCapacity
}

// pickTable returns the smallest free candidate, capacity then id order.
func (s *Service) pickTable(ctx context.Context, restaurantID int64, date string, slot domain.MinuteOfDay, partySize int) (int64, error) {
	bound, err := s.reservations.ActiveTableIDs(ctx, restaurantID, date, slot)
	if err != nil {
		return 0, err
	}
	taken := make(map[int64]bool, len(bound))
	for _, id := range bound {
		taken[id] = true
	}

	candidates, err := s.tables.CandidatesForParty(ctx, restaurantID, partySize)
	if err != nil {
		return 0, err
	}
	for _, t := range candidates {
		if !taken[t.ID] {
			return t.ID, nil
		}
	}

	if s.opts.AllowDegradedFit {
		all, err := s.tables.AllAvailable(ctx, restaurantID)
		if err != nil {
			return 0, err
		}
		for _, t := range all {
			if !taken[t.ID] {
				return t.ID, nil
			}
		}
	}

	metrics.AllocationNoCapacity.Inc()
	return 0, ErrNoCapacity
}

// TransitionStatus drives the reservation state machine. Adjacency is
// checked first (InvalidTransition), then actor authority (Forbidden), then
// the compare-and-set against the persisted status.
func (s *Service) TransitionStatus(ctx context.Context, reservationID, actorID int64, role domain.UserRole, target domain.ReservationStatus, reason string) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	from := r.Status
	if !CanTransition(from, target) {
		return nil, ErrInvalidTransition
	}
	if !roleMayTransition(role, from, target) {
		return nil, ErrForbidden
	}

	switch role {
	case domain.RoleCustomer:
		if r.CustomerID != actorID {
			return nil, ErrForbidden
		}
	case domain.RoleVendor:
		rest, err := s.restaurants.GetByID(ctx, r.RestaurantID)
		if err != nil {
			return nil, err
		}
		if rest.OwnerID != actorID {
			return nil, ErrForbidden
		}
	case domain.RoleAdmin:
		// Platform override: ownership bypassed, adjacency already held.
	default:
		return nil, ErrForbidden
	}

	ok, err := s.reservations.UpdateStatusIf(ctx, reservationID, from, target, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race: the reservation left the expected source state.
		return nil, ErrInvalidTransition
	}

	metrics.StatusTransitions.WithLabelValues(string(target)).Inc()

	updated, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	s.dispatchTransitionEffects(ctx, updated, role, reason)
	return updated, nil
}

// dispatchTransitionEffects runs the post-commit side effects: best-effort
// notifications and, on completion, the commission record. None of these
// can roll back the transition.
func (s *Service) dispatchTransitionEffects(ctx context.Context, r *domain.Reservation, actorRole domain.UserRole, reason string) {
	if s.notifs != nil {
		switch r.Status {
		case domain.ReservationConfirmed:
			_ = s.notifs.NotifyReservationConfirmed(ctx, r.CustomerID, r)
		case domain.ReservationCompleted:
			_ = s.notifs.NotifyReservationCompleted(ctx, r.CustomerID, r)
		case domain.ReservationCancelled:
			if actorRole == domain.RoleCustomer {
				if rest, err := s.restaurants.GetByID(ctx, r.RestaurantID); err == nil {
					_ = s.notifs.NotifyReservationCancelled(ctx, rest.OwnerID, r, reason)
				}
			} else {
				_ = s.notifs.NotifyReservationCancelled(ctx, r.CustomerID, r, reason)
			}
		}
	}

	if r.Status == domain.ReservationCompleted && s.commissions != nil {
		if err := s.commissions.RecordCompleted(ctx, r); err != nil {
			s.log.Warn("commission record failed",
				zap.Int64("reservation_id", r.ID),
				zap.Error(err))
		}
	}
}

// CancelByCustomer cancels the customer's own reservation. Cancellation is
// a status transition, never a delete; the freed slot becomes allocatable
// again because the engine only counts pending/confirmed bindings.
func (s *Service) CancelByCustomer(ctx context.Context, reservationID, customerID int64, reason string) (*domain.Reservation, error) {
	return s.TransitionStatus(ctx, reservationID, customerID, domain.RoleCustomer, domain.ReservationCancelled, reason)
}

func (s *Service) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) ListCustomerReservations(ctx context.Context, customerID int64, limit, offset int) ([]domain.Reservation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reservations.ListByCustomer(ctx, customerID, limit, offset)
}

// ListRestaurantReservations is the vendor view; only the owner (or an
// admin) may read a restaurant's book.
func (s *Service) ListRestaurantReservations(ctx context.Context, restaurantID, actorID int64, role domain.UserRole, date string) ([]domain.Reservation, error) {
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && rest.OwnerID != actorID {
		return nil, ErrForbidden
	}
	if date != "" {
		if date, err = parseDate(date); err != nil {
			return nil, err
		}
	}
	return s.reservations.ListByRestaurant(ctx, restaurantID, date)
}

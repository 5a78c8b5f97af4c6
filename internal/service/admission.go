// Package service holds business logic that sits between handlers and
// repositories.  The admission service decides whether a candidate
// booking may become a persisted reservation.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// ErrInvalidInterval is returned when a candidate's check-in is not
// strictly before its check-out.  Same-day and inverted stays are both
// rejected with this error before any conflict query runs.
var ErrInvalidInterval = errors.New("check-in must be before check-out")

// ErrRoomUnavailable is returned when the requested dates overlap an
// existing reservation for the room.
var ErrRoomUnavailable = errors.New("room is already booked for these dates")

// RoomStore is the room lookup the admission check depends on.
// *repository.RoomRepo satisfies it.
type RoomStore interface {
	GetByID(ctx context.Context, id uint64) (model.Room, error)
}

// ReservationStore persists reservations.  CreateIfAvailable must
// perform the conflict check and the insert atomically and return
// repository.ErrConflict when the interval is taken.
// *repository.ReservationRepo satisfies it.
type ReservationStore interface {
	CreateIfAvailable(ctx context.Context, res *model.Reservation) error
}

// AdmissionService runs the reservation admission check.  Stores are
// injected explicitly; there is no package-level database handle.
type AdmissionService struct {
	Rooms        RoomStore
	Reservations ReservationStore
	Now          func() time.Time
}

// NewAdmissionService constructs an AdmissionService.  Both stores
// must be non-nil; Now defaults to time.Now.
func NewAdmissionService(rooms RoomStore, reservations ReservationStore) *AdmissionService {
	if rooms == nil || reservations == nil {
		panic("nil store passed to NewAdmissionService")
	}
	return &AdmissionService{Rooms: rooms, Reservations: reservations, Now: time.Now}
}

// CreateReservation validates a candidate booking and persists it on
// success.  Ownership always comes from userID (the authenticated
// caller); the candidate carries no user field and any user value a
// client submits is discarded long before this point.
//
// Validation order: the interval check runs first and short-circuits,
// since overlap semantics are undefined for an empty or inverted
// interval.  The room lookup follows, then the atomic conflict check
// and insert in the store.  Exactly one row is inserted on success
// and none on any failure.
func (s *AdmissionService) CreateReservation(ctx context.Context, userID uint64, cand model.CandidateBooking) (model.Reservation, error) {
	if !cand.ValidInterval() {
		return model.Reservation{}, ErrInvalidInterval
	}
	if _, err := s.Rooms.GetByID(ctx, cand.RoomID); err != nil {
		return model.Reservation{}, err
	}
	res := model.Reservation{
		UserID:    userID,
		RoomID:    cand.RoomID,
		CheckIn:   cand.CheckIn,
		CheckOut:  cand.CheckOut,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.Reservations.CreateIfAvailable(ctx, &res); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return model.Reservation{}, ErrRoomUnavailable
		}
		return model.Reservation{}, err
	}
	return res, nil
}

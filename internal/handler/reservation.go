package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// ReservationHandler exposes the booking endpoints.  Creation runs
// the admission service; listing, fetching and deletion are always
// scoped to the authenticated owner, so users can never see or touch
// each other's reservations.
type ReservationHandler struct {
	Admission    *service.AdmissionService
	Reservations *repository.ReservationRepo
	Rooms        *repository.RoomRepo
	Hotels       *repository.HotelRepo
	// Publish emits the reservation.confirmed event after a booking
	// commits.  Nil disables publishing.
	Publish func(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// NewReservationHandler constructs a ReservationHandler; repositories
// and the admission service must be non-nil.
func NewReservationHandler(adm *service.AdmissionService, reservations *repository.ReservationRepo, rooms *repository.RoomRepo, hotels *repository.HotelRepo) *ReservationHandler {
	if adm == nil || reservations == nil || rooms == nil || hotels == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Admission:    adm,
		Reservations: reservations,
		Rooms:        rooms,
		Hotels:       hotels,
		Publish:      service.PublishReservationConfirmed,
	}
}

// createReservationReq binds only the candidate fields.  A user or
// user_id field in the payload is deliberately not bound: ownership
// comes from the access token alone.
type createReservationReq struct {
	RoomID   uint64 `json:"room_id"`
	CheckIn  string `json:"check_in"`  // YYYY-MM-DD
	CheckOut string `json:"check_out"` // YYYY-MM-DD
}

type reservationResp struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	RoomID    uint64    `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

func toReservationResp(res model.Reservation) reservationResp {
	return reservationResp{
		ID:        res.ID,
		UserID:    res.UserID,
		RoomID:    res.RoomID,
		CheckIn:   res.CheckIn.Format(model.DateLayout),
		CheckOut:  res.CheckOut.Format(model.DateLayout),
		CreatedAt: res.CreatedAt,
	}
}

// parseCandidate turns the request body into a CandidateBooking.  The
// reason string is non-empty on malformed input; interval ordering is
// left to the admission service so its error taxonomy stays in one
// place.
func parseCandidate(req createReservationReq) (model.CandidateBooking, string) {
	if req.RoomID == 0 {
		return model.CandidateBooking{}, "room_id required"
	}
	checkIn, err := model.ParseDate(req.CheckIn)
	if err != nil {
		return model.CandidateBooking{}, "check_in must be YYYY-MM-DD"
	}
	checkOut, err := model.ParseDate(req.CheckOut)
	if err != nil {
		return model.CandidateBooking{}, "check_out must be YYYY-MM-DD"
	}
	return model.CandidateBooking{RoomID: req.RoomID, CheckIn: checkIn, CheckOut: checkOut}, ""
}

// Create handles POST /v1/reservations.  Failure modes map to
// distinct statuses so clients can tell "fix your dates" (400) from
// "pick different dates" (409).
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cand, reason := parseCandidate(req)
	if reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Admission.CreateReservation(ctx, userID, cand)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInterval):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": service.ErrInvalidInterval.Error()})
		case errors.Is(err, service.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": service.ErrRoomUnavailable.Error()})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}

	h.publishConfirmed(res)
	return c.JSON(http.StatusCreated, toReservationResp(res))
}

// publishConfirmed emits the reservation.confirmed event in the
// background.  The booking is already committed; a broker outage must
// not fail the request, so errors are logged by the publisher and
// dropped here.
func (h *ReservationHandler) publishConfirmed(res model.Reservation) {
	if h.Publish == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ev := queue.ReservationConfirmedEvent{
			ReservationID: res.ID,
			UserID:        res.UserID,
			RoomID:        res.RoomID,
			CheckIn:       res.CheckIn.Format(model.DateLayout),
			CheckOut:      res.CheckOut.Format(model.DateLayout),
			ConfirmedAt:   res.CreatedAt.Format(time.RFC3339),
		}
		if rm, err := h.Rooms.GetByID(ctx, res.RoomID); err == nil {
			ev.RoomNumber = rm.RoomNumber
			ev.HotelID = rm.HotelID
			if ht, err := h.Hotels.GetByID(ctx, rm.HotelID); err == nil {
				ev.HotelName = ht.Name
			}
		}
		_ = h.Publish(ctx, ev)
	}()
}

// List handles GET /v1/reservations and returns only the caller's
// reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reservations.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]reservationResp, 0, len(list))
	for _, res := range list {
		out = append(out, toReservationResp(res))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.GetForUser(ctx, id, userID)
	if err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toReservationResp(res))
}

// Delete handles DELETE /v1/reservations/:id.  Reservations have no
// update path; cancellation is removal.
func (h *ReservationHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.DeleteForUser(ctx, id, userID); err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reservation failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

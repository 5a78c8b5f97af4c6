package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// CatalogHandler serves the public, read-only hotel and room catalog.
// These routes require no authentication and sit behind the Redis
// response cache.
type CatalogHandler struct {
	Hotels       *repository.HotelRepo
	Rooms        *repository.RoomRepo
	Reservations *repository.ReservationRepo
}

// NewCatalogHandler constructs a CatalogHandler; all repositories
// must be non-nil.
func NewCatalogHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo, reservations *repository.ReservationRepo) *CatalogHandler {
	if hotels == nil || rooms == nil || reservations == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Hotels: hotels, Rooms: rooms, Reservations: reservations}
}

type roomResp struct {
	ID            uint64  `json:"id"`
	HotelID       uint64  `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

type hotelResp struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	ImageURL    string     `json:"image,omitempty"`
	Rating      float64    `json:"rating"`
	Rooms       []roomResp `json:"rooms"`
}

func toRoomResp(rm model.Room) roomResp {
	return roomResp{
		ID:            rm.ID,
		HotelID:       rm.HotelID,
		RoomNumber:    rm.RoomNumber,
		RoomType:      rm.RoomType,
		PricePerNight: rm.PricePerNight,
		Capacity:      rm.Capacity,
	}
}

func toRoomResps(rooms []model.Room) []roomResp {
	out := make([]roomResp, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, toRoomResp(rm))
	}
	return out
}

// ListHotels handles GET /v1/hotels.  Each hotel embeds its rooms,
// matching what the detail endpoint returns.
func (h *CatalogHandler) ListHotels(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hotels, err := h.Hotels.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]hotelResp, 0, len(hotels))
	for _, ht := range hotels {
		rooms, err := h.Rooms.ListByHotel(ctx, ht.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		out = append(out, hotelResp{
			ID: ht.ID, Name: ht.Name, Description: ht.Description,
			Address: ht.Address, ImageURL: ht.ImageURL, Rating: ht.Rating,
			Rooms: toRoomResps(rooms),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetHotel handles GET /v1/hotels/:id.
func (h *CatalogHandler) GetHotel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ht, err := h.Hotels.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Rooms.ListByHotel(ctx, ht.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, hotelResp{
		ID: ht.ID, Name: ht.Name, Description: ht.Description,
		Address: ht.Address, ImageURL: ht.ImageURL, Rating: ht.Rating,
		Rooms: toRoomResps(rooms),
	})
}

// ListHotelRooms handles GET /v1/hotels/:id/rooms.
func (h *CatalogHandler) ListHotelRooms(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Hotels.GetByID(ctx, id); err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Rooms.ListByHotel(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toRoomResps(rooms))
}

// ListRooms handles GET /v1/rooms, the flat list across all hotels.
func (h *CatalogHandler) ListRooms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toRoomResps(rooms))
}

// GetRoom handles GET /v1/rooms/:id.
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toRoomResp(rm))
}

// RoomAvailability handles GET /v1/rooms/:id/availability.  It runs
// the same overlap predicate as the booking path against the
// check_in/check_out query parameters and reports whether the room is
// free.  The answer is advisory: only the booking transaction itself
// guarantees the room at insert time.
func (h *CatalogHandler) RoomAvailability(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	checkIn, err := model.ParseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := model.ParseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	if !checkIn.Before(checkOut) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-in must be before check-out"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Rooms.GetByID(ctx, id); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	taken, err := h.Reservations.HasOverlap(ctx, id,
		checkIn.Format(model.DateLayout), checkOut.Format(model.DateLayout))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":   id,
		"check_in":  checkIn.Format(model.DateLayout),
		"check_out": checkOut.Format(model.DateLayout),
		"available": !taken,
	})
}

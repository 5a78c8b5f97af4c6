package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// AdminCatalogHandler implements the write side of the hotel and room
// catalog.  All routes sit behind JWTAuth plus RequireRole(ADMIN);
// handlers assume authorization has already happened.
type AdminCatalogHandler struct {
	Hotels *repository.HotelRepo
	Rooms  *repository.RoomRepo
}

// NewAdminCatalogHandler constructs an AdminCatalogHandler; both
// repositories must be non-nil.
func NewAdminCatalogHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo) *AdminCatalogHandler {
	if hotels == nil || rooms == nil {
		panic("nil repository passed to NewAdminCatalogHandler")
	}
	return &AdminCatalogHandler{Hotels: hotels, Rooms: rooms}
}

type hotelReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	ImageURL    string  `json:"image"`
	Rating      float64 `json:"rating"`
}

type roomReq struct {
	HotelID       uint64  `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

func (r *hotelReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	if r.Name == "" {
		return "name required"
	}
	if r.Address == "" {
		return "address required"
	}
	if r.Rating < 0 || r.Rating > 10 {
		return "rating out of range"
	}
	return ""
}

func (r *roomReq) validate() string {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	r.RoomType = strings.ToUpper(strings.TrimSpace(r.RoomType))
	if r.HotelID == 0 {
		return "hotel_id required"
	}
	if r.RoomNumber == "" {
		return "room_number required"
	}
	if !model.ValidRoomType(r.RoomType) {
		return "room_type must be SINGLE, DOUBLE or SUITE"
	}
	if r.PricePerNight < 0 {
		return "price_per_night must not be negative"
	}
	if r.Capacity < 1 {
		return "capacity must be at least 1"
	}
	return ""
}

// CreateHotel handles POST /v1/hotels.
func (h *AdminCatalogHandler) CreateHotel(c echo.Context) error {
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason := req.validate(); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ht := model.Hotel{
		Name: req.Name, Description: req.Description, Address: req.Address,
		ImageURL: strings.TrimSpace(req.ImageURL), Rating: req.Rating,
	}
	if err := h.Hotels.Create(ctx, &ht); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create hotel failed"})
	}
	return c.JSON(http.StatusCreated, hotelResp{
		ID: ht.ID, Name: ht.Name, Description: ht.Description,
		Address: ht.Address, ImageURL: ht.ImageURL, Rating: ht.Rating,
		Rooms: []roomResp{},
	})
}

// UpdateHotel handles PUT /v1/hotels/:id.
func (h *AdminCatalogHandler) UpdateHotel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason := req.validate(); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ht := model.Hotel{
		ID: id, Name: req.Name, Description: req.Description, Address: req.Address,
		ImageURL: strings.TrimSpace(req.ImageURL), Rating: req.Rating,
	}
	if err := h.Hotels.Update(ctx, ht); err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update hotel failed"})
	}
	return c.JSON(http.StatusOK, hotelResp{
		ID: ht.ID, Name: ht.Name, Description: ht.Description,
		Address: ht.Address, ImageURL: ht.ImageURL, Rating: ht.Rating,
		Rooms: []roomResp{},
	})
}

// DeleteHotel handles DELETE /v1/hotels/:id.  Rooms and reservations
// under the hotel go with it (schema-level cascade).
func (h *AdminCatalogHandler) DeleteHotel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Hotels.Delete(ctx, id); err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete hotel failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateRoom handles POST /v1/rooms.
func (h *AdminCatalogHandler) CreateRoom(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason := req.validate(); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm := model.Room{
		HotelID: req.HotelID, RoomNumber: req.RoomNumber, RoomType: req.RoomType,
		PricePerNight: req.PricePerNight, Capacity: req.Capacity,
	}
	if err := h.Rooms.Create(ctx, &rm); err != nil {
		switch err {
		case repository.ErrHotelNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists in this hotel"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	return c.JSON(http.StatusCreated, toRoomResp(rm))
}

// UpdateRoom handles PUT /v1/rooms/:id.
func (h *AdminCatalogHandler) UpdateRoom(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason := req.validate(); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm := model.Room{
		ID: id, HotelID: req.HotelID, RoomNumber: req.RoomNumber, RoomType: req.RoomType,
		PricePerNight: req.PricePerNight, Capacity: req.Capacity,
	}
	if err := h.Rooms.Update(ctx, rm); err != nil {
		switch err {
		case repository.ErrRoomNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case repository.ErrHotelNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists in this hotel"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	return c.JSON(http.StatusOK, toRoomResp(rm))
}

// DeleteRoom handles DELETE /v1/rooms/:id.
func (h *AdminCatalogHandler) DeleteRoom(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

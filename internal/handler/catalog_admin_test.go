package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomReqValidate(t *testing.T) {
	valid := func() roomReq {
		return roomReq{HotelID: 1, RoomNumber: "101", RoomType: "DOUBLE", PricePerNight: 90, Capacity: 2}
	}

	t.Run("accepts and normalizes", func(t *testing.T) {
		req := valid()
		req.RoomType = " suite "
		req.RoomNumber = " 101 "
		assert.Empty(t, req.validate())
		assert.Equal(t, "SUITE", req.RoomType)
		assert.Equal(t, "101", req.RoomNumber)
	})

	tests := []struct {
		name    string
		mutate  func(*roomReq)
		wantErr string
	}{
		{"missing hotel", func(r *roomReq) { r.HotelID = 0 }, "hotel_id"},
		{"missing room number", func(r *roomReq) { r.RoomNumber = "  " }, "room_number"},
		{"unknown room type", func(r *roomReq) { r.RoomType = "PENTHOUSE" }, "room_type"},
		{"negative price", func(r *roomReq) { r.PricePerNight = -1 }, "price_per_night"},
		{"zero capacity", func(r *roomReq) { r.Capacity = 0 }, "capacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Contains(t, req.validate(), tt.wantErr)
		})
	}
}

func TestHotelReqValidate(t *testing.T) {
	valid := func() hotelReq {
		return hotelReq{Name: "Seaside", Address: "1 Shore Rd", Rating: 4.5}
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		req := valid()
		assert.Empty(t, req.validate())
	})

	tests := []struct {
		name    string
		mutate  func(*hotelReq)
		wantErr string
	}{
		{"missing name", func(r *hotelReq) { r.Name = " " }, "name"},
		{"missing address", func(r *hotelReq) { r.Address = "" }, "address"},
		{"negative rating", func(r *hotelReq) { r.Rating = -0.1 }, "rating"},
		{"rating too high", func(r *hotelReq) { r.Rating = 10.5 }, "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Contains(t, req.validate(), tt.wantErr)
		})
	}
}

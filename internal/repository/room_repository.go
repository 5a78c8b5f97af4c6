package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides CRUD operations for the `rooms` table.
type RoomRepo struct{ db *sql.DB }

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = "id,hotel_id,room_number,room_type,price_per_night,capacity"

func scanRoomRows(rows *sql.Rows) ([]model.Room, error) {
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.RoomType, &rm.PricePerNight, &rm.Capacity); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// List returns all rooms ordered by hotel and room number.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM rooms ORDER BY hotel_id, room_number")
	if err != nil {
		return nil, err
	}
	return scanRoomRows(rows)
}

// ListByHotel returns the rooms of one hotel ordered by room number.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE hotel_id=? ORDER BY room_number", hotelID)
	if err != nil {
		return nil, err
	}
	return scanRoomRows(rows)
}

// GetByID fetches a room by id, returning ErrRoomNotFound when no row
// matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	var rm model.Room
	err := r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id=? LIMIT 1", id).
		Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.RoomType, &rm.PricePerNight, &rm.Capacity)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return model.Room{}, err
	}
	return rm, nil
}

// Create inserts a room and populates its generated ID.  A duplicate
// (hotel_id, room_number) pair violates the unique key and is mapped
// to ErrConflict.  An unknown hotel_id violates the foreign key and
// is mapped to ErrHotelNotFound.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (hotel_id, room_number, room_type, price_per_night, capacity) VALUES (?,?,?,?,?)",
		rm.HotelID, rm.RoomNumber, rm.RoomType, rm.PricePerNight, rm.Capacity)
	if err != nil {
		return mapRoomWriteErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns of a room.  Returns
// ErrRoomNotFound when the id does not exist.
func (r *RoomRepo) Update(ctx context.Context, rm model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET hotel_id=?, room_number=?, room_type=?, price_per_night=?, capacity=? WHERE id=?",
		rm.HotelID, rm.RoomNumber, rm.RoomType, rm.PricePerNight, rm.Capacity, rm.ID)
	if err != nil {
		return mapRoomWriteErr(err)
	}
	return mustAffectRow(res, ErrRoomNotFound)
}

// Delete removes a room.  Its reservations are removed by the
// ON DELETE CASCADE foreign key.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffectRow(res, ErrRoomNotFound)
}

// mapRoomWriteErr translates MySQL constraint violations on room
// writes into sentinel errors: 1062 duplicate key -> ErrConflict,
// 1452 foreign key (unknown hotel) -> ErrHotelNotFound.
func mapRoomWriteErr(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "1062") {
		return ErrConflict
	}
	if strings.Contains(msg, "1452") {
		return ErrHotelNotFound
	}
	return err
}

package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// HotelRepo provides CRUD operations for the `hotels` table.  The
// rooms of a hotel live in RoomRepo; handlers compose the two when a
// response embeds rooms.
type HotelRepo struct{ db *sql.DB }

// NewHotelRepo returns a HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

const hotelColumns = "id,name,description,address,image_url,rating"

// List returns all hotels ordered by id.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+hotelColumns+" FROM hotels ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		var img sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Address, &img, &h.Rating); err != nil {
			return nil, err
		}
		h.ImageURL = img.String
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// GetByID fetches a hotel by id, returning ErrHotelNotFound when no
// row matches.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (model.Hotel, error) {
	var h model.Hotel
	var img sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels WHERE id=? LIMIT 1", id).
		Scan(&h.ID, &h.Name, &h.Description, &h.Address, &img, &h.Rating)
	if err == sql.ErrNoRows {
		return model.Hotel{}, ErrHotelNotFound
	}
	if err != nil {
		return model.Hotel{}, err
	}
	h.ImageURL = img.String
	return h, nil
}

// Create inserts a hotel and populates its generated ID.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO hotels (name, description, address, image_url, rating) VALUES (?,?,?,?,?)",
		h.Name, h.Description, h.Address, nullIfEmpty(h.ImageURL), h.Rating)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns of a hotel.  Returns
// ErrHotelNotFound when the id does not exist.
func (r *HotelRepo) Update(ctx context.Context, h model.Hotel) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE hotels SET name=?, description=?, address=?, image_url=?, rating=? WHERE id=?",
		h.Name, h.Description, h.Address, nullIfEmpty(h.ImageURL), h.Rating, h.ID)
	if err != nil {
		return err
	}
	return mustAffectRow(res, ErrHotelNotFound)
}

// Delete removes a hotel.  Rooms and their reservations are removed
// by the ON DELETE CASCADE foreign keys.
func (r *HotelRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM hotels WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffectRow(res, ErrHotelNotFound)
}

// nullIfEmpty maps "" to NULL for optional text columns.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// mustAffectRow converts a zero-rows-affected result into notFound.
// The DSN sets clientFoundRows so UPDATEs count matched rows, not
// changed rows; a no-op update of an existing row is still a match.
func mustAffectRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

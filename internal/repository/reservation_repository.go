package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo provides data access to the `reservations` table.
// Check-in/check-out are DATE columns holding half-open intervals
// [check_in, check_out); the overlap predicate used throughout is
//
//	existing.check_in < candidate.check_out AND
//	existing.check_out > candidate.check_in
//
// so back-to-back stays sharing a boundary date never conflict.
type ReservationRepo struct{ db *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateIfAvailable atomically checks the room for conflicting
// reservations and inserts the new one.  Both steps run inside a
// single transaction: the conflict query locks the matching index
// range with FOR UPDATE, so a concurrent overlapping insert on the
// same room blocks until this transaction commits and then sees the
// new row.  Two racing requests for the same dates therefore cannot
// both succeed.
//
// Returns ErrConflict when an overlapping reservation exists; nothing
// is inserted in that case.  On success the generated ID is written
// back into res.
func (r *ReservationRepo) CreateIfAvailable(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var existing uint64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM reservations
		 WHERE room_id = ? AND check_in < ? AND check_out > ?
		 LIMIT 1 FOR UPDATE`,
		res.RoomID, res.CheckOut.Format(model.DateLayout), res.CheckIn.Format(model.DateLayout),
	).Scan(&existing)
	switch {
	case err == nil:
		return ErrConflict
	case err != sql.ErrNoRows:
		return err
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO reservations (user_id, room_id, check_in, check_out, created_at) VALUES (?,?,?,?,?)",
		res.UserID, res.RoomID,
		res.CheckIn.Format(model.DateLayout), res.CheckOut.Format(model.DateLayout),
		res.CreatedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	res.ID = uint64(id)
	return nil
}

// HasOverlap reports whether any reservation on the room intersects
// the half-open interval [checkIn, checkOut).  Read-only variant of
// the conflict query, usable outside a transaction.
func (r *ReservationRepo) HasOverlap(ctx context.Context, roomID uint64, checkIn, checkOut string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reservations WHERE room_id = ? AND check_in < ? AND check_out > ?)",
		roomID, checkOut, checkIn).Scan(&exists)
	return exists, err
}

const reservationColumns = "id,user_id,room_id,check_in,check_out,created_at"

// ListByUser returns all reservations owned by a user, newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE user_id=? ORDER BY check_in DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.RoomID, &res.CheckIn, &res.CheckOut, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetForUser fetches one reservation scoped to its owner.  A row
// owned by someone else is reported as ErrReservationNotFound rather
// than forbidden so the API does not leak other users' booking IDs.
func (r *ReservationRepo) GetForUser(ctx context.Context, id, userID uint64) (model.Reservation, error) {
	var res model.Reservation
	err := r.db.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id=? AND user_id=? LIMIT 1",
		id, userID).Scan(&res.ID, &res.UserID, &res.RoomID, &res.CheckIn, &res.CheckOut, &res.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// DeleteForUser removes a reservation scoped to its owner.
func (r *ReservationRepo) DeleteForUser(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM reservations WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	return mustAffectRow(res, ErrReservationNotFound)
}

// Package repository defines error types that are reused across
// multiple repositories.  These sentinel values allow higher layers
// such as the admission service and handlers to distinguish between
// failure scenarios without parsing driver errors.  For example,
// ErrConflict indicates that an insert lost to existing conflicting
// rows, while the *NotFound values map to HTTP 404 responses.
package repository

import "errors"

// ErrUsernameExists is returned when registering with a username that
// is already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when registering with an email address
// that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrHotelNotFound is returned when a hotel lookup matches no row.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrReservationNotFound is returned when a reservation lookup
// matches no row visible to the caller.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrConflict is returned when an insert or delete cannot proceed
// because of conflicting state, such as inserting a reservation whose
// dates collide with an existing one.  Handlers translate this into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

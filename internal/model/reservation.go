package model

import "time"

// DateLayout is the wire format for check-in/check-out dates.  Stays
// are booked with calendar-date precision only; no time of day.
const DateLayout = "2006-01-02"

// Reservation records a user's stay in a room over a half-open date
// interval [CheckIn, CheckOut): the check-out day itself is free, so a
// stay that checks out on day N never conflicts with one that checks
// in on day N.  Reservations are immutable once created; the only
// lifecycle transition is deletion.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who owns the reservation.
//  RoomID    – room being reserved.
//  CheckIn   – arrival date (inclusive).
//  CheckOut  – departure date (exclusive).
//  CreatedAt – creation timestamp, set once at insert.
type Reservation struct {
    ID        uint64    // reservations.id
    UserID    uint64    // reservations.user_id
    RoomID    uint64    // reservations.room_id
    CheckIn   time.Time // reservations.check_in (DATE)
    CheckOut  time.Time // reservations.check_out (DATE)
    CreatedAt time.Time // reservations.created_at
}

// CandidateBooking is an unpersisted booking request awaiting
// validation.  It carries no user: ownership is always taken from the
// authenticated caller, never from the request payload.
type CandidateBooking struct {
    RoomID   uint64
    CheckIn  time.Time
    CheckOut time.Time
}

// ValidInterval reports whether the candidate's dates form a
// non-empty stay, i.e. CheckIn is strictly before CheckOut.  Same-day
// and inverted intervals are both invalid.
func (c CandidateBooking) ValidInterval() bool {
    return c.CheckIn.Before(c.CheckOut)
}

// Overlaps reports whether the half-open intervals [aIn, aOut) and
// [bIn, bOut) intersect.  Touching at a boundary (one stay's check-out
// equal to the other's check-in) is not an overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
    return aIn.Before(bOut) && bIn.Before(aOut)
}

// ParseDate parses a calendar date in DateLayout and returns it
// normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
    return time.ParseInLocation(DateLayout, s, time.UTC)
}

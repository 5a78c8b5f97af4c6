// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// ReservationQueueName is the durable queue carrying confirmed
// reservation events.
const ReservationQueueName = "reservation.confirmed"

// ReservationConfirmedEvent is published when a booking passes the
// admission check and is persisted.  It carries enough denormalized
// data for downstream consumers to log or notify without querying the
// primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	UserID        uint64 `json:"user_id"`
	RoomID        uint64 `json:"room_id"`
	HotelID       uint64 `json:"hotel_id"`
	HotelName     string `json:"hotel_name"`
	RoomNumber    string `json:"room_number"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	ConfirmedAt   string `json:"confirmed_at"`
}

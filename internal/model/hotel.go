package model

// Hotel mirrors a row of the `hotels` table.  Ratings are stored with
// one decimal place (DECIMAL(3,1)); the image URL may be empty.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the hotel.
//  Description – free-form description text.
//  Address     – postal address.
//  ImageURL    – optional URL of a cover image.
//  Rating      – average rating, 0.0 when unrated.
type Hotel struct {
    ID          uint64  // hotels.id
    Name        string  // hotels.name
    Description string  // hotels.description
    Address     string  // hotels.address
    ImageURL    string  // hotels.image_url (may be empty)
    Rating      float64 // hotels.rating
}

// Room type names accepted in rooms.room_type.
const (
    RoomTypeSingle = "SINGLE"
    RoomTypeDouble = "DOUBLE"
    RoomTypeSuite  = "SUITE"
)

// ValidRoomType reports whether t is one of the known room types.
func ValidRoomType(t string) bool {
    switch t {
    case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
        return true
    }
    return false
}

// Room mirrors a row of the `rooms` table.  Deleting a hotel cascades
// to its rooms, and deleting a room cascades to its reservations
// (ON DELETE CASCADE foreign keys).
//
// Fields:
//  ID            – primary key identifier.
//  HotelID       – owning hotel.
//  RoomNumber    – room label unique within the hotel.
//  RoomType      – SINGLE, DOUBLE or SUITE.
//  PricePerNight – nightly price.
//  Capacity      – maximum number of guests, at least 1.
type Room struct {
    ID            uint64  // rooms.id
    HotelID       uint64  // rooms.hotel_id
    RoomNumber    string  // rooms.room_number
    RoomType      string  // rooms.room_type
    PricePerNight float64 // rooms.price_per_night
    Capacity      int     // rooms.capacity
}

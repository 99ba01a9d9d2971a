package entity

import (
	"github.com/google/uuid"
)

// Room is a bookable unit. TimesBooked is a monotonic popularity counter,
// bumped once per successful lock release and never decremented.
type Room struct {
	BaseSimple
	HotelID     uuid.UUID `db:"hotel_id"`
	Number      int       `db:"number"`
	Available   bool      `db:"available"`
	TimesBooked int       `db:"times_booked"`
}

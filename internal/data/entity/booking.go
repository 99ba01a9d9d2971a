package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is one reservation attempt and its outcome. DateStart and
// DateEnd form an inclusive range. CONFIRMED and CANCELLED are terminal.
type Booking struct {
	BaseSimple
	UserID    uuid.UUID     `db:"user_id"`
	RoomID    uuid.UUID     `db:"room_id"`
	DateStart time.Time     `db:"date_start"`
	DateEnd   time.Time     `db:"date_end"`
	Status    BookingStatus `db:"status"`
}

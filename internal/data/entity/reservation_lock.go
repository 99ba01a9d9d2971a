package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationLock is a short-lived claim on a room for an inclusive date
// range, keyed by the caller-supplied idempotency token. RequestID is
// unique at the store level so a retried confirm is rejected rather than
// double-applied.
type ReservationLock struct {
	BaseSimple
	RequestID string    `db:"request_id"`
	RoomID    uuid.UUID `db:"room_id"`
	DateStart time.Time `db:"date_start"`
	DateEnd   time.Time `db:"date_end"`
}

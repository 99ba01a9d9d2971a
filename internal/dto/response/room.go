package response

import (
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
)

type RoomResponse struct {
	ID          string `json:"id"`
	HotelID     string `json:"hotel_id"`
	Number      int    `json:"number"`
	Available   bool   `json:"available"`
	TimesBooked int    `json:"times_booked"`
}

// ConfirmResponse is always delivered with HTTP 200; Success carries the
// business outcome so the caller's transport layer only has to
// distinguish "could not reach the service" from "reached and answered".
type ConfirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID.String(),
		HotelID:     r.HotelID.String(),
		Number:      r.Number,
		Available:   r.Available,
		TimesBooked: r.TimesBooked,
	}
}

package response

import (
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"
)

type CreateBookingResponse struct {
	BookingID string    `json:"booking_id"`
	RoomID    string    `json:"room_id"`
	DateStart string    `json:"date_start"`
	DateEnd   string    `json:"date_end"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	RoomID    string               `json:"room_id"`
	DateStart string               `json:"date_start"`
	DateEnd   string               `json:"date_end"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		RoomID:    b.RoomID.String(),
		DateStart: utils.FormatDate(b.DateStart),
		DateEnd:   utils.FormatDate(b.DateEnd),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

package response

import (
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
)

type HotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func HotelToResponse(h *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:      h.ID.String(),
		Name:    h.Name,
		Address: h.Address,
	}
}

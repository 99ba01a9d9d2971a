package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/request"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/usecase"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// CreateHotel handles POST /api/hotel
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", hotel)
}

// GetHotelByID handles GET /api/hotel/{id}
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	hotel, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		writeServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// GetAllHotels handles GET /api/hotel/all
func (h *HotelHandler) GetAllHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

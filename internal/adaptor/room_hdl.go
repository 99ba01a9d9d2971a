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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /api/room
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PATCH /api/room/update
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// GetAvailableRooms handles GET /api/room/available/{hotelId}
func (h *RoomHandler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelId")

	rooms, err := h.service.GetAvailableHotelRooms(r.Context(), hotelID)
	if err != nil {
		writeServiceError(w, h.log, err, "get available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRecommendedRooms handles GET /api/room/recommend/{hotelId}
func (h *RoomHandler) GetRecommendedRooms(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelId")

	rooms, err := h.service.GetRecommendedHotelRooms(r.Context(), hotelID)
	if err != nil {
		writeServiceError(w, h.log, err, "get recommended rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ConfirmRoom handles POST /api/room/{id}/confirm.
//
// The response is always HTTP 200 with a bare {success, message} body:
// the booking service treats any non-200 as a transport failure, so
// business rejections must ride inside the payload.
func (h *RoomHandler) ConfirmRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req request.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Confirm body decode failed", zap.Error(err), zap.String("room_id", roomID))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	result := h.service.ConfirmRoomAvailability(r.Context(), roomID, &req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// ReleaseRoom handles POST /api/room/{id}/release
func (h *RoomHandler) ReleaseRoom(w http.ResponseWriter, r *http.Request) {
	var req request.ReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ReleaseRoom(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "release room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

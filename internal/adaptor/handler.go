package adaptor

import (
	"errors"
	"net/http"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/usecase"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/apperrors"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingHandlers groups the HTTP handlers of the booking service.
type BookingHandlers struct {
	Auth    *AuthHandler
	Booking *BookingHandler
}

func NewBookingHandlers(services *usecase.BookingServices, log *zap.Logger) *BookingHandlers {
	return &BookingHandlers{
		Auth:    NewAuthHandler(services.Auth, log),
		Booking: NewBookingHandler(services.Booking, log),
	}
}

// ManagementHandlers groups the HTTP handlers of the management service.
type ManagementHandlers struct {
	Hotel *HotelHandler
	Room  *RoomHandler
}

func NewManagementHandlers(services *usecase.ManagementServices, log *zap.Logger) *ManagementHandlers {
	return &ManagementHandlers{
		Hotel: NewHotelHandler(services.Hotel, log),
		Room:  NewRoomHandler(services.Room, log),
	}
}

// writeServiceError maps a usecase error to an HTTP response by its
// sentinel class. The sentinel suffix is stripped from the message so
// clients see "Room not found", not "Room not found: not found".
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := apperrors.Message(err)

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, msg, nil)

	case errors.Is(err, apperrors.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, msg)

	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case errors.Is(err, apperrors.ErrExternal):
		log.Error(operation+" upstream failure", zap.Error(err))
		utils.ResponseBadGateway(w, msg)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

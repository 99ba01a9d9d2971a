package usecase

import (
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingServices groups the usecases of the booking service.
type BookingServices struct {
	Auth    AuthService
	Booking BookingService
}

func NewBookingServices(repo *repository.BookingRepos, management ManagementAPI, config *utils.Config, logger *zap.Logger) *BookingServices {
	return &BookingServices{
		Auth:    NewAuthService(repo, config, logger),
		Booking: NewBookingService(repo, management, logger),
	}
}

// ManagementServices groups the usecases of the management service.
type ManagementServices struct {
	Hotel HotelService
	Room  RoomService
}

func NewManagementServices(repo *repository.ManagementRepos, logger *zap.Logger) *ManagementServices {
	return &ManagementServices{
		Hotel: NewHotelService(repo, logger),
		Room:  NewRoomService(repo, logger),
	}
}

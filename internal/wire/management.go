package wire

import (
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/adaptor"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/usecase"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ManagementApp is the wired management service, ready to serve.
type ManagementApp struct {
	Router *chi.Mux
}

func WireManagement(
	repo *repository.ManagementRepos,
	log *zap.Logger,
) *ManagementApp {
	services := usecase.NewManagementServices(repo, log)
	handlers := adaptor.NewManagementHandlers(services, log)

	r := chi.NewRouter()
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())

	r.Get("/health", healthCheck)

	// ==================== HOTEL ROUTES ====================
	r.Get("/api/hotel/all", handlers.Hotel.GetAllHotels)
	r.Get("/api/hotel/{id}", handlers.Hotel.GetHotelByID)
	r.Post("/api/hotel", handlers.Hotel.CreateHotel)

	// ==================== ROOM ROUTES ====================
	r.Post("/api/room", handlers.Room.CreateRoom)
	r.Patch("/api/room/update", handlers.Room.UpdateRoom)
	r.Get("/api/room/available/{hotelId}", handlers.Room.GetAvailableRooms)
	r.Get("/api/room/recommend/{hotelId}", handlers.Room.GetRecommendedRooms)

	// Reservation lock RPC used by the booking service.
	r.Post("/api/room/{id}/confirm", handlers.Room.ConfirmRoom)
	r.Post("/api/room/{id}/release", handlers.Room.ReleaseRoom)

	return &ManagementApp{Router: r}
}

package wire

import (
	"net/http"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/adaptor"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/usecase"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/middleware"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookingApp is the wired booking service, ready to serve.
type BookingApp struct {
	Router *chi.Mux
}

func WireBooking(
	repo *repository.BookingRepos,
	management usecase.ManagementAPI,
	config *utils.Config,
	log *zap.Logger,
) *BookingApp {
	services := usecase.NewBookingServices(repo, management, config, log)
	handlers := adaptor.NewBookingHandlers(services, log)

	r := chi.NewRouter()
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())

	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", handlers.Auth.Register)
	r.Post("/api/auth/login", handlers.Auth.Login)

	r.Get("/health", healthCheck)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/auth/logout", handlers.Auth.Logout)

		// POST /api/booking - run the booking saga
		r.Post("/api/booking", handlers.Booking.CreateBooking)

		// GET /api/booking - caller's own bookings
		r.Get("/api/booking", handlers.Booking.GetUserBookings)

		r.Get("/api/booking/{id}", handlers.Booking.GetBookingByID)
		r.Delete("/api/booking/{id}", handlers.Booking.CancelBooking)
	})

	return &BookingApp{Router: r}
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	utils.ResponseSuccess(w, "ok", nil)
}

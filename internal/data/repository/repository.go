package repository

import (
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/database"

	"go.uber.org/zap"
)

// BookingRepos groups the repositories of the booking service.
type BookingRepos struct {
	User    UserRepository
	Session SessionRepository
	Booking BookingRepository
}

func NewBookingRepos(db database.PgxIface, log *zap.Logger) *BookingRepos {
	return &BookingRepos{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

// ManagementRepos groups the repositories of the management service.
type ManagementRepos struct {
	Hotel HotelRepository
	Room  RoomRepository
	Lock  LockRepository
}

func NewManagementRepos(db database.PgxIface, log *zap.Logger) *ManagementRepos {
	return &ManagementRepos{
		Hotel: NewHotelRepository(db, log),
		Room:  NewRoomRepository(db, log),
		Lock:  NewLockRepository(db, log),
	}
}

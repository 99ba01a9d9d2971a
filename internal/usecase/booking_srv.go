package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/client"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/request"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/response"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/apperrors"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ManagementAPI is the slice of the management service the coordinator
// needs. A returned error means the service could not be reached (or
// answered garbage); business rejections come back inside ConfirmResult.
type ManagementAPI interface {
	ConfirmRoomAvailability(ctx context.Context, roomID uuid.UUID, requestID string, dateStart, dateEnd time.Time) (*client.ConfirmResult, error)
	ReleaseRoom(ctx context.Context, roomID uuid.UUID, requestID string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
}

type bookingService struct {
	repo       *repository.BookingRepos
	management ManagementAPI
	log        *zap.Logger
}

func NewBookingService(repo *repository.BookingRepos, management ManagementAPI, log *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		management: management,
		log:        log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the booking saga: local overlap check, provisional
// PENDING booking, remote hold, finalize or compensate. Steps execute
// strictly in order with no internal retries.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid room ID format %s", req.RoomID))
	}

	dateStart, err := utils.ParseDate(req.DateStart)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid date_start %s", req.DateStart))
	}
	dateEnd, err := utils.ParseDate(req.DateEnd)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid date_end %s", req.DateEnd))
	}
	if dateStart.After(dateEnd) {
		return nil, apperrors.Validation("date_start must not be after date_end")
	}

	// Local overlap check against PENDING/CONFIRMED bookings. This is
	// check-then-act; the lock store's constraints are what actually
	// serialize concurrent writers (see the Confirm step).
	overlapping, err := s.repo.Booking.FindOverlapping(ctx, roomID, dateStart, dateEnd)
	if err != nil {
		s.log.Error("Failed to check overlapping bookings", zap.Error(err))
		return nil, fmt.Errorf("check overlapping bookings: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, apperrors.Conflict("Number id busy on the specified dates")
	}

	// Provisional booking plus a fresh idempotency token for the hold.
	requestID := uuid.New().String()
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userUUID,
		RoomID:    roomID,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Status:    entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	result, err := s.management.ConfirmRoomAvailability(ctx, roomID, requestID, dateStart, dateEnd)
	if err != nil {
		s.log.Error("Confirm call failed, compensating",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("request_id", requestID),
		)
		s.compensate(ctx, booking, requestID)
		return nil, apperrors.External("room availability service unreachable", err)
	}

	if !result.Success {
		s.log.Warn("Confirm rejected, compensating",
			zap.String("booking_id", booking.ID.String()),
			zap.String("request_id", requestID),
			zap.String("message", result.Message),
		)
		s.compensate(ctx, booking, requestID)
		return nil, apperrors.Conflict(result.Message)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm booking, compensating",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		s.compensate(ctx, booking, requestID)
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	// The hold was only needed until the CONFIRMED write became durable.
	// Dropping it also bumps the room popularity counter on the
	// management side. A failure here leaves an orphaned lock but never
	// fails the already-confirmed booking.
	if err := s.management.ReleaseRoom(ctx, roomID, requestID); err != nil {
		s.log.Warn("Failed to release lock after confirmation",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("request_id", requestID),
		)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("room_id", req.RoomID),
		zap.String("date_start", req.DateStart),
		zap.String("date_end", req.DateEnd),
	)

	return &response.CreateBookingResponse{
		BookingID: booking.ID.String(),
		RoomID:    booking.RoomID.String(),
		DateStart: utils.FormatDate(booking.DateStart),
		DateEnd:   utils.FormatDate(booking.DateEnd),
		CreatedAt: booking.CreatedAt,
	}, nil
}

// compensate undoes a failed saga: best-effort lock release (the lock may
// legitimately not exist if Confirm never succeeded), then the CANCELLED
// write. Release failures are logged and ignored; an unreleased lock is
// an orphan to be cleared externally.
func (s *bookingService) compensate(ctx context.Context, booking *entity.Booking, requestID string) {
	if err := s.management.ReleaseRoom(ctx, booking.RoomID, requestID); err != nil {
		s.log.Warn("Compensating release failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("request_id", requestID),
		)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking during compensation",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	// No remote call: any hold was already released when the booking was
	// created (success path) or compensated (failure path).
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)

	return nil
}

func (s *bookingService) findOwnedBooking(ctx context.Context, userID, bookingID string) (*entity.Booking, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid booking ID format %s", bookingID))
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("Booking not found")
	}

	if booking.UserID != userUUID {
		return nil, apperrors.Forbidden("You have no rights to access this booking")
	}

	return booking, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/request"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/response"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/apperrors"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	GetAvailableHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error)
	GetRecommendedHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error)

	// ConfirmRoomAvailability never fails at the transport level: every
	// outcome, including store errors, is encoded in the response body.
	ConfirmRoomAvailability(ctx context.Context, roomID string, req *request.ConfirmRequest) *response.ConfirmResponse
	ReleaseRoom(ctx context.Context, req *request.ReleaseRequest) error
}

type roomService struct {
	repo *repository.ManagementRepos
	log  *zap.Logger
}

func NewRoomService(repo *repository.ManagementRepos, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid hotel ID format %s", req.HotelID))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to find hotel", zap.Error(err), zap.String("hotel_id", req.HotelID))
		return nil, fmt.Errorf("find hotel %s: %w", req.HotelID, err)
	}
	if hotel == nil {
		return nil, apperrors.NotFound("Hotel not found")
	}

	room := &entity.Room{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		HotelID:   hotelID,
		Number:    req.Number,
		Available: true,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("hotel_id", req.HotelID),
		zap.Int("number", req.Number),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid room ID format %s", req.ID))
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", req.ID))
		return nil, fmt.Errorf("find room %s: %w", req.ID, err)
	}
	if room == nil {
		return nil, apperrors.NotFound("Room not found")
	}

	room.Number = req.Number
	room.Available = req.Available
	room.TimesBooked = req.TimesBooked

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room %s: %w", req.ID, err)
	}

	s.log.Info("Room updated", zap.String("room_id", req.ID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetAvailableHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid hotel ID format %s", hotelID))
	}

	rooms, err := s.repo.Room.FindAvailableByHotelID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get available rooms", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get available rooms: %w", err)
	}

	return roomsToResponses(rooms), nil
}

func (s *roomService) GetRecommendedHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid hotel ID format %s", hotelID))
	}

	// Least-booked first: a popularity-balancing heuristic, not a
	// recommendation engine.
	rooms, err := s.repo.Room.FindByHotelIDOrderedByPopularity(ctx, id)
	if err != nil {
		s.log.Error("Failed to get recommended rooms", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get recommended rooms: %w", err)
	}

	return roomsToResponses(rooms), nil
}

func (s *roomService) ConfirmRoomAvailability(ctx context.Context, roomID string, req *request.ConfirmRequest) *response.ConfirmResponse {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm validation failed", zap.Any("errors", errs))
		return reject("validation failed: " + utils.FormatValidationErrors(errs))
	}

	// Duplicate/retried request: the token already holds a lock.
	existing, err := s.repo.Lock.FindByRequestID(ctx, req.RequestID)
	if err != nil {
		return reject(err.Error())
	}
	if existing != nil {
		return reject("Lock for this request already created")
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return reject("Room not found")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return reject(err.Error())
	}
	if room == nil {
		return reject("Room not found")
	}

	dateStart, err := utils.ParseDate(req.DateStart)
	if err != nil {
		return reject(fmt.Sprintf("invalid date_start %s", req.DateStart))
	}
	dateEnd, err := utils.ParseDate(req.DateEnd)
	if err != nil {
		return reject(fmt.Sprintf("invalid date_end %s", req.DateEnd))
	}

	locks, err := s.repo.Lock.FindOverlapping(ctx, room.ID, dateStart, dateEnd)
	if err != nil {
		return reject(err.Error())
	}
	if len(locks) > 0 {
		return reject("Dates are temporary locked by another booking")
	}

	lock := &entity.ReservationLock{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		RequestID: req.RequestID,
		RoomID:    room.ID,
		DateStart: dateStart,
		DateEnd:   dateEnd,
	}

	// The unique request_id index and the room/date-range exclusion
	// constraint back this insert, so the loser of a concurrent confirm
	// race is rejected here instead of double-locking the room.
	if err := s.repo.Lock.Create(ctx, lock); err != nil {
		return reject(err.Error())
	}

	s.log.Info("Reservation lock created",
		zap.String("request_id", req.RequestID),
		zap.String("room_id", roomID),
		zap.String("date_start", req.DateStart),
		zap.String("date_end", req.DateEnd),
	)

	return &response.ConfirmResponse{
		Success: true,
		Message: "Room booking locked for dates",
	}
}

func (s *roomService) ReleaseRoom(ctx context.Context, req *request.ReleaseRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Release validation failed", zap.Any("errors", errs))
		return apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	lock, err := s.repo.Lock.FindByRequestID(ctx, req.RequestID)
	if err != nil {
		s.log.Error("Failed to find lock for release", zap.Error(err), zap.String("request_id", req.RequestID))
		return fmt.Errorf("find lock %s: %w", req.RequestID, err)
	}
	if lock == nil {
		return apperrors.NotFound("Request not found")
	}

	if err := s.repo.Room.IncrementTimesBooked(ctx, lock.RoomID); err != nil {
		return fmt.Errorf("increment times booked: %w", err)
	}

	if err := s.repo.Lock.DeleteByID(ctx, lock.ID); err != nil {
		return fmt.Errorf("delete lock: %w", err)
	}

	s.log.Info("Reservation lock released",
		zap.String("request_id", req.RequestID),
		zap.String("room_id", lock.RoomID.String()),
	)

	return nil
}

func reject(message string) *response.ConfirmResponse {
	return &response.ConfirmResponse{Success: false, Message: message}
}

func roomsToResponses(rooms []*entity.Room) []response.RoomResponse {
	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}
	return responses
}

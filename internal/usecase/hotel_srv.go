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

type HotelService interface {
	Create(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	GetByID(ctx context.Context, hotelID string) (*response.HotelResponse, error)
	GetAll(ctx context.Context) ([]response.HotelResponse, error)
}

type hotelService struct {
	repo *repository.ManagementRepos
	log  *zap.Logger
}

func NewHotelService(repo *repository.ManagementRepos, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) Create(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	hotel := &entity.Hotel{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Address: req.Address,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created", zap.String("hotel_id", hotel.ID.String()), zap.String("name", req.Name))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetByID(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid hotel ID format %s", hotelID))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("find hotel %s: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, apperrors.NotFound("Hotel not found")
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetAll(ctx context.Context) ([]response.HotelResponse, error) {
	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list hotels", zap.Error(err))
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	responses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		responses[i] = response.HotelToResponse(hotel)
	}

	return responses, nil
}

package usecase

import (
	"context"
	"testing"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/request"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHotelServiceForTest(hotels *mockHotelRepo) HotelService {
	repos := &repository.ManagementRepos{Hotel: hotels}
	return NewHotelService(repos, zap.NewNop())
}

func TestCreateHotel(t *testing.T) {
	var created *entity.Hotel
	hotels := &mockHotelRepo{
		createFn: func(ctx context.Context, hotel *entity.Hotel) error {
			created = hotel
			return nil
		},
	}
	svc := newHotelServiceForTest(hotels)

	resp, err := svc.Create(context.Background(), &request.CreateHotelRequest{
		Name:    "Grand Plaza",
		Address: "1 Main St",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "Grand Plaza", created.Name)
	assert.Equal(t, created.ID.String(), resp.ID)
}

func TestCreateHotelRejectsEmptyName(t *testing.T) {
	svc := newHotelServiceForTest(&mockHotelRepo{})

	_, err := svc.Create(context.Background(), &request.CreateHotelRequest{Address: "1 Main St"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetHotelByIDNotFound(t *testing.T) {
	svc := newHotelServiceForTest(&mockHotelRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Hotel not found", apperrors.Message(err))
}

func TestGetAllHotels(t *testing.T) {
	hotels := &mockHotelRepo{
		findAllFn: func(ctx context.Context) ([]*entity.Hotel, error) {
			return []*entity.Hotel{
				{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "A"},
				{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "B"},
			}, nil
		},
	}
	svc := newHotelServiceForTest(hotels)

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/repository"
	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/dto/request"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockHotelRepo struct {
	createFn   func(ctx context.Context, hotel *entity.Hotel) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	findAllFn  func(ctx context.Context) ([]*entity.Hotel, error)
}

func (m *mockHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	if m.createFn != nil {
		return m.createFn(ctx, hotel)
	}
	return nil
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockHotelRepo) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

type mockRoomRepo struct {
	createFn           func(ctx context.Context, room *entity.Room) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	updateFn           func(ctx context.Context, room *entity.Room) error
	findAvailableFn    func(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)
	findByPopularityFn func(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)

	incremented []uuid.UUID
}

func (m *mockRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	if m.createFn != nil {
		return m.createFn(ctx, room)
	}
	return nil
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, room)
	}
	return nil
}

func (m *mockRoomRepo) FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	if m.findAvailableFn != nil {
		return m.findAvailableFn(ctx, hotelID)
	}
	return nil, nil
}

func (m *mockRoomRepo) FindByHotelIDOrderedByPopularity(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	if m.findByPopularityFn != nil {
		return m.findByPopularityFn(ctx, hotelID)
	}
	return nil, nil
}

func (m *mockRoomRepo) IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error {
	m.incremented = append(m.incremented, roomID)
	return nil
}

type mockLockRepo struct {
	createFn          func(ctx context.Context, lock *entity.ReservationLock) error
	findByRequestIDFn func(ctx context.Context, requestID string) (*entity.ReservationLock, error)
	findOverlappingFn func(ctx context.Context, roomID uuid.UUID, dateStart, dateEnd time.Time) ([]*entity.ReservationLock, error)

	created []*entity.ReservationLock
	deleted []uuid.UUID
}

func (m *mockLockRepo) Create(ctx context.Context, lock *entity.ReservationLock) error {
	if m.createFn != nil {
		return m.createFn(ctx, lock)
	}
	m.created = append(m.created, lock)
	return nil
}

func (m *mockLockRepo) FindByRequestID(ctx context.Context, requestID string) (*entity.ReservationLock, error) {
	if m.findByRequestIDFn != nil {
		return m.findByRequestIDFn(ctx, requestID)
	}
	return nil, nil
}

func (m *mockLockRepo) FindOverlapping(ctx context.Context, roomID uuid.UUID, dateStart, dateEnd time.Time) ([]*entity.ReservationLock, error) {
	if m.findOverlappingFn != nil {
		return m.findOverlappingFn(ctx, roomID, dateStart, dateEnd)
	}
	return nil, nil
}

func (m *mockLockRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func newRoomServiceForTest(hotels *mockHotelRepo, rooms *mockRoomRepo, locks *mockLockRepo) RoomService {
	repos := &repository.ManagementRepos{Hotel: hotels, Room: rooms, Lock: locks}
	return NewRoomService(repos, zap.NewNop())
}

func existingRoom() *entity.Room {
	return &entity.Room{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		HotelID:    uuid.New(),
		Number:     101,
		Available:  true,
	}
}

func confirmRequest() *request.ConfirmRequest {
	return &request.ConfirmRequest{
		RequestID: uuid.New().String(),
		DateStart: "2026-09-01",
		DateEnd:   "2026-09-05",
	}
}

func TestConfirmCreatesLock(t *testing.T) {
	room := existingRoom()
	rooms := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			require.Equal(t, room.ID, id)
			return room, nil
		},
	}
	locks := &mockLockRepo{}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, locks)

	req := confirmRequest()
	result := svc.ConfirmRoomAvailability(context.Background(), room.ID.String(), req)

	assert.True(t, result.Success)
	assert.Equal(t, "Room booking locked for dates", result.Message)

	require.Len(t, locks.created, 1)
	assert.Equal(t, req.RequestID, locks.created[0].RequestID)
	assert.Equal(t, room.ID, locks.created[0].RoomID)
}

func TestConfirmDuplicateRequestRejected(t *testing.T) {
	room := existingRoom()
	rooms := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return room, nil
		},
	}
	req := confirmRequest()
	locks := &mockLockRepo{
		findByRequestIDFn: func(ctx context.Context, requestID string) (*entity.ReservationLock, error) {
			if requestID == req.RequestID {
				return &entity.ReservationLock{RequestID: requestID}, nil
			}
			return nil, nil
		},
	}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, locks)

	result := svc.ConfirmRoomAvailability(context.Background(), room.ID.String(), req)

	assert.False(t, result.Success)
	assert.Equal(t, "Lock for this request already created", result.Message)
	assert.Empty(t, locks.created)
}

func TestConfirmUnknownRoomRejected(t *testing.T) {
	svc := newRoomServiceForTest(&mockHotelRepo{}, &mockRoomRepo{}, &mockLockRepo{})

	result := svc.ConfirmRoomAvailability(context.Background(), uuid.New().String(), confirmRequest())
	assert.False(t, result.Success)
	assert.Equal(t, "Room not found", result.Message)

	result = svc.ConfirmRoomAvailability(context.Background(), "not-a-uuid", confirmRequest())
	assert.False(t, result.Success)
	assert.Equal(t, "Room not found", result.Message)
}

func TestConfirmOverlappingLockRejected(t *testing.T) {
	room := existingRoom()
	rooms := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return room, nil
		},
	}
	locks := &mockLockRepo{
		findOverlappingFn: func(ctx context.Context, roomID uuid.UUID, dateStart, dateEnd time.Time) ([]*entity.ReservationLock, error) {
			return []*entity.ReservationLock{{RoomID: roomID}}, nil
		},
	}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, locks)

	result := svc.ConfirmRoomAvailability(context.Background(), room.ID.String(), confirmRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "Dates are temporary locked by another booking", result.Message)
	assert.Empty(t, locks.created)
}

func TestConfirmStoreRejectionReportedAsFailure(t *testing.T) {
	room := existingRoom()
	rooms := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return room, nil
		},
	}
	locks := &mockLockRepo{
		createFn: func(ctx context.Context, lock *entity.ReservationLock) error {
			return errors.New("conflicting key value violates exclusion constraint \"reservation_locks_no_overlap\"")
		},
	}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, locks)

	result := svc.ConfirmRoomAvailability(context.Background(), room.ID.String(), confirmRequest())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "exclusion constraint")
}

func TestConfirmMissingRequestIDRejected(t *testing.T) {
	svc := newRoomServiceForTest(&mockHotelRepo{}, &mockRoomRepo{}, &mockLockRepo{})

	result := svc.ConfirmRoomAvailability(context.Background(), uuid.New().String(), &request.ConfirmRequest{
		DateStart: "2026-09-01",
		DateEnd:   "2026-09-05",
	})

	assert.False(t, result.Success)
}

func TestReleaseDeletesLockAndBumpsPopularity(t *testing.T) {
	room := existingRoom()
	lock := &entity.ReservationLock{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		RequestID:  uuid.New().String(),
		RoomID:     room.ID,
	}

	rooms := &mockRoomRepo{}
	locks := &mockLockRepo{
		findByRequestIDFn: func(ctx context.Context, requestID string) (*entity.ReservationLock, error) {
			if requestID == lock.RequestID {
				return lock, nil
			}
			return nil, nil
		},
	}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, locks)

	err := svc.ReleaseRoom(context.Background(), &request.ReleaseRequest{RequestID: lock.RequestID})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{room.ID}, rooms.incremented)
	assert.Equal(t, []uuid.UUID{lock.ID}, locks.deleted)
}

func TestReleaseUnknownRequest(t *testing.T) {
	rooms := &mockRoomRepo{}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, &mockLockRepo{})

	err := svc.ReleaseRoom(context.Background(), &request.ReleaseRequest{RequestID: uuid.New().String()})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Request not found", apperrors.Message(err))
	assert.Empty(t, rooms.incremented)
}

func TestCreateRoomRequiresExistingHotel(t *testing.T) {
	svc := newRoomServiceForTest(&mockHotelRepo{}, &mockRoomRepo{}, &mockLockRepo{})

	_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		HotelID: uuid.New().String(),
		Number:  101,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Hotel not found", apperrors.Message(err))
}

func TestCreateRoomDefaultsToAvailable(t *testing.T) {
	hotelID := uuid.New()
	hotels := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
			return &entity.Hotel{BaseSimple: entity.BaseSimple{ID: hotelID}, Name: "Test"}, nil
		},
	}
	var created *entity.Room
	rooms := &mockRoomRepo{
		createFn: func(ctx context.Context, room *entity.Room) error {
			created = room
			return nil
		},
	}
	svc := newRoomServiceForTest(hotels, rooms, &mockLockRepo{})

	resp, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		HotelID: hotelID.String(),
		Number:  101,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.True(t, created.Available)
	assert.Zero(t, created.TimesBooked)
	assert.True(t, resp.Available)
}

func TestUpdateRoomNotFound(t *testing.T) {
	svc := newRoomServiceForTest(&mockHotelRepo{}, &mockRoomRepo{}, &mockLockRepo{})

	_, err := svc.UpdateRoom(context.Background(), &request.UpdateRoomRequest{
		ID:     uuid.New().String(),
		Number: 202,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Room not found", apperrors.Message(err))
}

func TestRecommendedRoomsKeepRepositoryOrder(t *testing.T) {
	hotelID := uuid.New()
	least := &entity.Room{BaseSimple: entity.BaseSimple{ID: uuid.New()}, HotelID: hotelID, Number: 1, TimesBooked: 0}
	mid := &entity.Room{BaseSimple: entity.BaseSimple{ID: uuid.New()}, HotelID: hotelID, Number: 2, TimesBooked: 3}
	most := &entity.Room{BaseSimple: entity.BaseSimple{ID: uuid.New()}, HotelID: hotelID, Number: 3, TimesBooked: 9}

	rooms := &mockRoomRepo{
		findByPopularityFn: func(ctx context.Context, id uuid.UUID) ([]*entity.Room, error) {
			require.Equal(t, hotelID, id)
			return []*entity.Room{least, mid, most}, nil
		},
	}
	svc := newRoomServiceForTest(&mockHotelRepo{}, rooms, &mockLockRepo{})

	resp, err := svc.GetRecommendedHotelRooms(context.Background(), hotelID.String())
	require.NoError(t, err)
	require.Len(t, resp, 3)
	assert.Equal(t, least.ID.String(), resp[0].ID)
	assert.Equal(t, most.ID.String(), resp[2].ID)
}

func TestAvailableRoomsEmptyHotel(t *testing.T) {
	svc := newRoomServiceForTest(&mockHotelRepo{}, &mockRoomRepo{}, &mockLockRepo{})

	resp, err := svc.GetAvailableHotelRooms(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, resp)
}

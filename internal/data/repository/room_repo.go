package repository

import (
	"context"
	"fmt"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error

	FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)

	// FindByHotelIDOrderedByPopularity returns all hotel rooms, least
	// booked first.
	FindByHotelIDOrderedByPopularity(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)

	// IncrementTimesBooked bumps the popularity counter by exactly 1.
	IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, number, available, times_booked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.Number,
		room.Available,
		room.TimesBooked,
		room.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.Int("number", room.Number),
		)
		return fmt.Errorf("create room %d: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, hotel_id, number, available, times_booked, created_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.HotelID,
		&room.Number,
		&room.Available,
		&room.TimesBooked,
		&room.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID", zap.Error(err), zap.String("room_id", id.String()))
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET number = $2, available = $3, times_booked = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, room.ID, room.Number, room.Available, room.TimesBooked)
	if err != nil {
		r.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", room.ID.String()))
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT id, hotel_id, number, available, times_booked, created_at
		FROM rooms
		WHERE hotel_id = $1 AND available = TRUE
		ORDER BY number
	`

	return r.findMany(ctx, query, hotelID)
}

func (r *roomRepository) FindByHotelIDOrderedByPopularity(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT id, hotel_id, number, available, times_booked, created_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY times_booked ASC, number
	`

	return r.findMany(ctx, query, hotelID)
}

func (r *roomRepository) IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error {
	query := `UPDATE rooms SET times_booked = times_booked + 1 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to increment times booked",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return fmt.Errorf("increment times booked for room %s: %w", roomID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", roomID.String())
	}

	return nil
}

func (r *roomRepository) findMany(ctx context.Context, query string, hotelID uuid.UUID) ([]*entity.Room, error) {
	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.HotelID,
			&room.Number,
			&room.Available,
			&room.TimesBooked,
			&room.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/internal/data/entity"
	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LockRepository interface {
	// Create inserts the lock. The store enforces request_id uniqueness
	// and rejects locks overlapping an existing lock for the same room
	// (exclusion constraint), so the losing writer of a race gets an
	// error here rather than a silent double-lock.
	Create(ctx context.Context, lock *entity.ReservationLock) error
	FindByRequestID(ctx context.Context, requestID string) (*entity.ReservationLock, error)
	FindOverlapping(ctx context.Context, roomID uuid.UUID, dateStart, dateEnd time.Time) ([]*entity.ReservationLock, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type lockRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLockRepository(db database.PgxIface, log *zap.Logger) LockRepository {
	return &lockRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation_lock")),
	}
}

func (r *lockRepository) Create(ctx context.Context, lock *entity.ReservationLock) error {
	query := `
		INSERT INTO reservation_locks (id, request_id, room_id, date_start, date_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		lock.ID,
		lock.RequestID,
		lock.RoomID,
		lock.DateStart,
		lock.DateEnd,
		lock.CreatedAt,
	)

	if err != nil {
		r.log.Warn("Failed to create reservation lock",
			zap.Error(err),
			zap.String("request_id", lock.RequestID),
			zap.String("room_id", lock.RoomID.String()),
		)
		return fmt.Errorf("create reservation lock %s: %w", lock.RequestID, err)
	}

	return nil
}

func (r *lockRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.ReservationLock, error) {
	query := `
		SELECT id, request_id, room_id, date_start, date_end, created_at
		FROM reservation_locks
		WHERE request_id = $1
	`

	var lock entity.ReservationLock
	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&lock.ID,
		&lock.RequestID,
		&lock.RoomID,
		&lock.DateStart,
		&lock.DateEnd,
		&lock.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lock by request ID",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		return nil, fmt.Errorf("find lock by request ID %s: %w", requestID, err)
	}

	return &lock, nil
}

func (r *lockRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, dateStart, dateEnd time.Time) ([]*entity.ReservationLock, error) {
	query := `
		SELECT id, request_id, room_id, date_start, date_end, created_at
		FROM reservation_locks
		WHERE room_id = $1
		  AND date_start <= $3
		  AND date_end >= $2
	`

	rows, err := r.db.Query(ctx, query, roomID, dateStart, dateEnd)
	if err != nil {
		r.log.Error("Failed to find overlapping locks",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find overlapping locks for room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var locks []*entity.ReservationLock
	for rows.Next() {
		var lock entity.ReservationLock
		err := rows.Scan(
			&lock.ID,
			&lock.RequestID,
			&lock.RoomID,
			&lock.DateStart,
			&lock.DateEnd,
			&lock.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lock row: %w", err)
		}
		locks = append(locks, &lock)
	}

	return locks, nil
}

func (r *lockRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservation_locks WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete lock", zap.Error(err), zap.String("lock_id", id.String()))
		return fmt.Errorf("delete lock %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lock %s not found", id.String())
	}

	return nil
}

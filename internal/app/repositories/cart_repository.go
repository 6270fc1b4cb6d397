package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/db"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
	"github.com/dkaya/melodica/internal/pkg/dberrors"
	"github.com/dkaya/melodica/internal/pkg/logger"
)

// Seat counters only ever move through these conditional updates. The WHERE
// guards make overselling unrepresentable at the statement level, matching
// the table's capacity CHECK constraint.
const (
	reserveSeatSQL = `
		UPDATE classes
		SET available_seats = available_seats - 1
		WHERE id = $1 AND available_seats > 0 AND status = $2
		RETURNING available_seats
	`

	releaseSeatSQL = `
		UPDATE classes
		SET available_seats = available_seats + 1
		WHERE id = $1 AND available_seats + enrolled_count < total_seats
	`
)

// CartRepository handles database operations for cart entries. It owns the
// seat hold: the available-seat counter and the cart row always move inside
// the same transaction, and the counter itself is only touched through
// conditional updates so concurrent requests cannot oversell a class.
type CartRepository struct {
	db *db.PostgresDB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(database *db.PostgresDB) *CartRepository {
	return &CartRepository{
		db: database,
	}
}

// AddEntry reserves a seat and inserts the cart entry in one transaction.
// The decrement is a single conditional update; when it matches no row the
// class is either missing, not approved, or sold out, and the follow-up
// read only serves to tell those apart.
func (r *CartRepository) AddEntry(ctx context.Context, entry *models.CartEntry) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var remaining int
		err := tx.QueryRow(ctx, reserveSeatSQL, entry.ClassID, models.ClassStatusApproved).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.diagnoseReserveFailure(ctx, tx, entry.ClassID)
			}
			return fmt.Errorf("error reserving seat: %w", err)
		}

		insert := `
			INSERT INTO carts (student_email, class_id, price)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, insert, entry.StudentEmail, entry.ClassID, entry.Price).
			Scan(&entry.ID, &entry.CreatedAt)
		if err != nil {
			// Rolling back puts the reserved seat straight back.
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyInCart
			}
			return fmt.Errorf("error inserting cart entry: %w", err)
		}

		return nil
	})
}

// diagnoseReserveFailure explains why the conditional decrement matched
// nothing. Read-only; the surrounding transaction is rolled back anyway.
func (r *CartRepository) diagnoseReserveFailure(ctx context.Context, tx pgx.Tx, classID int64) error {
	var status models.ClassStatus
	var available int
	err := tx.QueryRow(ctx, `SELECT status, available_seats FROM classes WHERE id = $1`, classID).
		Scan(&status, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("error inspecting class: %w", err)
	}

	if status != models.ClassStatusApproved {
		return apperrors.ErrClassNotOpen
	}
	return apperrors.ErrSeatsExhausted
}

// RemoveEntry deletes a cart entry and restores the held seat in one
// transaction. A missing entry returns apperrors.ErrCartEntryNotFound so
// the caller can treat retries as a no-op.
func (r *CartRepository) RemoveEntry(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var classID int64
		err := tx.QueryRow(ctx, `DELETE FROM carts WHERE id = $1 RETURNING class_id`, id).Scan(&classID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCartEntryNotFound
			}
			return fmt.Errorf("error deleting cart entry: %w", err)
		}

		tag, err := tx.Exec(ctx, releaseSeatSQL, classID)
		if err != nil {
			return fmt.Errorf("error releasing seat: %w", err)
		}
		if tag.RowsAffected() == 0 {
			// Class gone or counters already at capacity; the delete still
			// stands, there is just no seat to put back.
			logger.Warn().Int64("cartID", id).Int64("classID", classID).Msg("Removed cart entry but no seat was released")
		}

		return nil
	})
}

// ListByStudent retrieves a student's cart entries with class metadata
func (r *CartRepository) ListByStudent(ctx context.Context, email string) ([]*models.CartEntry, error) {
	query := `
		SELECT c.id, c.student_email, c.class_id, c.price, c.created_at, cl.name, cl.image_url
		FROM carts c
		LEFT JOIN classes cl ON c.class_id = cl.id
		WHERE c.student_email = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.CartEntry
	for rows.Next() {
		var entry models.CartEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.StudentEmail,
			&entry.ClassID,
			&entry.Price,
			&entry.CreatedAt,
			&entry.ClassName,
			&entry.ImageURL,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteByID removes a cart entry without touching the seat counter. Used
// by checkout, where the held seat becomes an enrollment instead of going
// back on sale.
func (r *CartRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cart entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCartEntryNotFound
	}
	return nil
}

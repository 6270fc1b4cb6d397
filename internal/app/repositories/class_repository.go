package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
	"github.com/dkaya/melodica/internal/pkg/logger"
)

// ClassRepository handles database operations for class offerings
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ClassFilter narrows List results
type ClassFilter struct {
	Status          models.ClassStatus
	InstructorEmail string
}

const classColumns = "id, name, image_url, instructor_name, instructor_email, price, total_seats, available_seats, enrolled_count, status, feedback, created_at"

// confirmEnrollmentSQL converts a held seat into an enrollment. The guard
// keeps the combined counters under capacity even under concurrent checkouts.
const confirmEnrollmentSQL = `
	UPDATE classes
	SET enrolled_count = enrolled_count + 1
	WHERE id = $1 AND available_seats + enrolled_count < total_seats
`

// Create inserts a new class offering. Every seat starts available and
// nobody is enrolled; approval state starts PENDING.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	class.AvailableSeats = class.TotalSeats
	class.EnrolledCount = 0
	class.Status = models.ClassStatusPending

	query := `
		INSERT INTO classes (name, image_url, instructor_name, instructor_email, price, total_seats, available_seats, status)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		class.Name,
		class.ImageURL,
		class.InstructorName,
		class.InstructorEmail,
		class.Price,
		class.TotalSeats,
		class.Status,
	).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class offering by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	class, err := scanClassRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return class, nil
}

// List retrieves class offerings matching the filter, newest first
func (r *ClassRepository) List(ctx context.Context, filter ClassFilter) ([]*models.Class, error) {
	builder := r.sb.Select(strings.Split(classColumns, ", ")...).
		From("classes").
		OrderBy("created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.InstructorEmail != "" {
		builder = builder.Where(squirrel.Eq{"instructor_email": filter.InstructorEmail})
	}

	querySql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list classes SQL")
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class, err := scanClassRow(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// UpdateStatus records an admin approval decision
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating class status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// UpdateFeedback records admin feedback on a class
func (r *ClassRepository) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	tag, err := r.db.Exec(ctx, `UPDATE classes SET feedback = $1 WHERE id = $2`, feedback, id)
	if err != nil {
		return fmt.Errorf("error updating class feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// ConfirmEnrollment converts a held seat into an enrollment. The seat was
// already taken out of available_seats when it entered a cart, so this only
// moves enrolled_count, guarded so the counters can never exceed the
// class capacity. Zero rows means the class vanished or the guard tripped.
func (r *ClassRepository) ConfirmEnrollment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, confirmEnrollmentSQL, id)
	if err != nil {
		return fmt.Errorf("error confirming enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

func scanClassRow(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.ImageURL,
		&class.InstructorName,
		&class.InstructorEmail,
		&class.Price,
		&class.TotalSeats,
		&class.AvailableSeats,
		&class.EnrolledCount,
		&class.Status,
		&class.Feedback,
		&class.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

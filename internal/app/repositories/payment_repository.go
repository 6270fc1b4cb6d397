package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
	"github.com/dkaya/melodica/internal/pkg/dberrors"
)

// PaymentRepository handles database operations for payment records
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Insert records a completed payment. The carts unique constraint makes
// this the checkout idempotency guard: a second insert for the same cart
// entry returns apperrors.ErrDuplicatePayment and nothing is written.
func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (student_email, class_id, cart_id, amount, transaction_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, paid_at
	`

	err := r.db.QueryRow(ctx, query,
		payment.StudentEmail,
		payment.ClassID,
		payment.CartID,
		payment.Amount,
		payment.TransactionRef,
	).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "payments_cart_id_key") {
			return apperrors.ErrDuplicatePayment
		}
		return fmt.Errorf("error inserting payment: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's payment history, newest first
func (r *PaymentRepository) ListByStudent(ctx context.Context, email string) ([]*models.Payment, error) {
	query := `
		SELECT p.id, p.student_email, p.class_id, p.cart_id, p.amount, p.transaction_ref, p.paid_at, cl.name
		FROM payments p
		LEFT JOIN classes cl ON p.class_id = cl.id
		WHERE p.student_email = $1
		ORDER BY p.paid_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.StudentEmail,
			&payment.ClassID,
			&payment.CartID,
			&payment.Amount,
			&payment.TransactionRef,
			&payment.PaidAt,
			&payment.ClassName,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

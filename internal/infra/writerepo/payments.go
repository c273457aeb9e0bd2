package writerepo

import (
	"context"
	"errors"

	"charterlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository applies the booking/payment state transitions driven by
// provider callbacks. Updates are conditional on prior state so repeated
// application converges without locking.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) IncrementBookingAmountPaid(ctx context.Context, bookingID uuid.UUID, amountCents int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings
		 SET amount_paid_cents = amount_paid_cents + $2,
		     payment_status = CASE
		         WHEN amount_paid_cents + $2 >= total_cents THEN 'paid'
		         ELSE 'partially_paid'
		     END,
		     updated_at = NOW()
		 WHERE id = $1`,
		bookingID, amountCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment amount paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) UpdateBookingPaymentStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`,
		bookingID, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment status", err)
	}
	return nil
}

func (r *PaymentRepository) MarkTransactionStatus(ctx context.Context, providerRef, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE transactions SET status = $2, updated_at = NOW() WHERE provider_ref = $1`,
		providerRef, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark transaction status", err)
	}
	return nil
}

func (r *PaymentRepository) BookingForTransaction(ctx context.Context, providerRef string) (*uuid.UUID, error) {
	var bookingID pgtype.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT booking_id FROM transactions WHERE provider_ref = $1`,
		providerRef,
	).Scan(&bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve booking for transaction", err)
	}
	if !bookingID.Valid {
		return nil, nil
	}
	id := uuid.UUID(bookingID.Bytes)
	return &id, nil
}

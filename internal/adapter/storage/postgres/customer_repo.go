package postgres

import (
	"context"
	"errors"
	"fmt"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CustomerRepo implements ports.CustomerRepository.
type CustomerRepo struct {
	pool Pool
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(pool Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

var _ ports.CustomerRepository = (*CustomerRepo)(nil)

// Upsert inserts a customer's spend/contact summary, or updates the row
// with the same id, within the same transaction as the payment
// completion that triggered it (§4.E customer upsert). Matching by
// merchant + environment + contact identity is done beforehand via
// GetByContact.
func (r *CustomerRepo) Upsert(ctx context.Context, tx pgx.Tx, c *domain.Customer) error {
	query := `INSERT INTO customers
		(id, merchant_id, environment, email, phone, name, total_spent, payment_count, first_payment_at, last_payment_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			name = EXCLUDED.name,
			total_spent = EXCLUDED.total_spent,
			payment_count = EXCLUDED.payment_count,
			last_payment_at = EXCLUDED.last_payment_at`

	_, err := tx.Exec(ctx, query,
		c.ID, c.MerchantID, c.Environment, c.Email, c.Phone, c.Name,
		c.TotalSpent, c.PaymentCount, c.FirstPaymentAt, c.LastPaymentAt,
	)
	if err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}
	return nil
}

// GetByContact looks up an existing customer by email or phone, scoped to
// a merchant and environment.
func (r *CustomerRepo) GetByContact(ctx context.Context, merchantID uuid.UUID, env domain.Environment, email, phone *string) (*domain.Customer, error) {
	query := `SELECT id, merchant_id, environment, email, phone, name, total_spent, payment_count, first_payment_at, last_payment_at
		FROM customers
		WHERE merchant_id = $1 AND environment = $2 AND ((email IS NOT NULL AND email = $3) OR (phone IS NOT NULL AND phone = $4))
		LIMIT 1`

	c := &domain.Customer{}
	err := r.pool.QueryRow(ctx, query, merchantID, env, email, phone).Scan(
		&c.ID, &c.MerchantID, &c.Environment, &c.Email, &c.Phone, &c.Name,
		&c.TotalSpent, &c.PaymentCount, &c.FirstPaymentAt, &c.LastPaymentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by contact: %w", err)
	}
	return c, nil
}

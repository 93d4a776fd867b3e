package paymentrepo

import (
	"context"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (id, order_id, amount_cents, method, purpose, external_ref, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			payment.ID, payment.OrderID, payment.AmountCents, payment.Method,
			payment.Purpose, payment.ExternalRef, payment.Status, payment.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByExternalRef(ctx context.Context, externalRef string) (*domain.Payment, error) {
	query := `
        SELECT id, order_id, amount_cents, method, purpose, external_ref, status, created_at
        FROM payments
        WHERE external_ref = $1
    `
	var payment domain.Payment
	err := r.db.QueryRow(ctx, query, externalRef).Scan(
		&payment.ID, &payment.OrderID, &payment.AmountCents, &payment.Method,
		&payment.Purpose, &payment.ExternalRef, &payment.Status, &payment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment by external ref", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) FindByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
        SELECT id, order_id, amount_cents, method, purpose, external_ref, status, created_at
        FROM payments
        WHERE id = $1
    `
	var payment domain.Payment
	err := r.db.QueryRow(ctx, query, paymentID).Scan(
		&payment.ID, &payment.OrderID, &payment.AmountCents, &payment.Method,
		&payment.Purpose, &payment.ExternalRef, &payment.Status, &payment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) ([]domain.Payment, error) {
	query := `
        SELECT id, order_id, amount_cents, method, purpose, external_ref, status, created_at
        FROM payments
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID, &payment.OrderID, &payment.AmountCents, &payment.Method,
			&payment.Purpose, &payment.ExternalRef, &payment.Status, &payment.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// SumSucceeded returns the total of successful payments for an order,
// optionally narrowed to one purpose.
func (r *Repository) SumSucceeded(ctx context.Context, orderID int, purpose domain.PaymentPurpose) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_cents), 0)
        FROM payments
        WHERE order_id = $1 AND status = 'SUCCEEDED' AND ($2 = '' OR purpose = $2)
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, orderID, string(purpose)).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

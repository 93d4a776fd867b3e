package feerepo

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

func (r *Repository) Save(ctx context.Context, fee *domain.ExtraFee) error {
	query := `
        INSERT INTO extra_fees (order_id, fee_type_id, description, amount_cents, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			fee.OrderID, fee.FeeTypeID, fee.Description, fee.AmountCents, fee.CreatedAt,
		).Scan(&fee.ID)
	})
	if err != nil {
		zap.L().Error("can't save extra fee", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) ([]domain.ExtraFee, error) {
	query := `
        SELECT id, order_id, fee_type_id, description, amount_cents, created_at
        FROM extra_fees
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get extra fees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fees []domain.ExtraFee
	for rows.Next() {
		var fee domain.ExtraFee
		err := rows.Scan(&fee.ID, &fee.OrderID, &fee.FeeTypeID, &fee.Description, &fee.AmountCents, &fee.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan extra fee row", zap.Error(err))
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

func (r *Repository) SumByOrderID(ctx context.Context, orderID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_cents), 0)
        FROM extra_fees
        WHERE order_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&sum); err != nil {
		zap.L().Error("can't sum extra fees", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) FindFeeTypeByID(ctx context.Context, feeTypeID int) (*domain.FeeType, error) {
	query := `
        SELECT id, name, default_amount_cents
        FROM fee_types
        WHERE id = $1
    `
	var feeType domain.FeeType
	err := r.db.QueryRow(ctx, query, feeTypeID).Scan(&feeType.ID, &feeType.Name, &feeType.DefaultAmountCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find fee type", zap.Error(err))
		return nil, err
	}
	return &feeType, nil
}

func (r *Repository) FindFeeTypeByName(ctx context.Context, name string) (*domain.FeeType, error) {
	query := `
        SELECT id, name, default_amount_cents
        FROM fee_types
        WHERE name = $1
    `
	var feeType domain.FeeType
	err := r.db.QueryRow(ctx, query, name).Scan(&feeType.ID, &feeType.Name, &feeType.DefaultAmountCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find fee type", zap.Error(err))
		return nil, err
	}
	return &feeType, nil
}

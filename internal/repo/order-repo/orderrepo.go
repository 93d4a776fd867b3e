package orderrepo

import (
	"context"
	"fmt"
	"time"

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

const orderColumns = `id, renter_id, vehicle_id, pickup_station_id, return_station_id,
		start_time, end_time, actual_start, actual_end, status,
		total_amount_cents, deposit_cents, pickup_photo_ref, return_photo_ref,
		cancel_reason, created_at`

func scanOrder(row pgx.Row, order *domain.RentalOrder) error {
	return row.Scan(
		&order.ID, &order.RenterID, &order.VehicleID, &order.PickupStationID, &order.ReturnStationID,
		&order.StartTime, &order.EndTime, &order.ActualStart, &order.ActualEnd, &order.Status,
		&order.TotalAmountCents, &order.DepositCents, &order.PickupPhotoRef, &order.ReturnPhotoRef,
		&order.CancelReason, &order.CreatedAt,
	)
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.RentalOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM rental_orders
        WHERE id = $1
    `
	var order domain.RentalOrder
	err := scanOrder(r.db.QueryRow(ctx, query, orderID), &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByRenterID(ctx context.Context, renterID int) ([]domain.RentalOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM rental_orders
        WHERE renter_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, renterID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.RentalOrder
	for rows.Next() {
		var order domain.RentalOrder
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.RentalOrder) error {
	query := `
        INSERT INTO rental_orders (renter_id, vehicle_id, pickup_station_id, return_station_id,
            start_time, end_time, status, total_amount_cents, deposit_cents, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			order.RenterID, order.VehicleID, order.PickupStationID, order.ReturnStationID,
			order.StartTime, order.EndTime, order.Status, order.TotalAmountCents,
			order.DepositCents, order.CreatedAt,
		).Scan(&order.ID)
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

// Update writes the order only if its stored status still equals
// expected. Zero rows affected means another writer changed the status
// first; that surfaces as ErrInvalidTransition so every transition is
// a compare-and-set, like the vehicle reservation.
func (r *Repository) Update(ctx context.Context, order *domain.RentalOrder, expected domain.OrderStatus) error {
	query := `
        UPDATE rental_orders
        SET status = $1, actual_start = $2, actual_end = $3, total_amount_cents = $4,
            pickup_photo_ref = $5, return_photo_ref = $6, cancel_reason = $7
        WHERE id = $8 AND status = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			order.Status, order.ActualStart, order.ActualEnd, order.TotalAmountCents,
			order.PickupPhotoRef, order.ReturnPhotoRef, order.CancelReason, order.ID, expected,
		)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: order %d is no longer %s", domain.ErrInvalidTransition, order.ID, expected)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindExpiredPending returns PENDING orders created before the cutoff,
// oldest first, for the expiry sweeper.
func (r *Repository) FindExpiredPending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.RentalOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM rental_orders
        WHERE status = 'PENDING' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get expired pending orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.RentalOrder
	for rows.Next() {
		var order domain.RentalOrder
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

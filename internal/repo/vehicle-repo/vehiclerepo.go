package vehiclerepo

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

func (r *Repository) FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error) {
	query := `
        SELECT id, station_id, model, license_plate, condition, battery_capacity, mileage, is_available
        FROM vehicles
        WHERE id = $1
    `
	var vehicle domain.Vehicle
	err := r.db.QueryRow(ctx, query, vehicleID).Scan(
		&vehicle.ID, &vehicle.StationID, &vehicle.Model, &vehicle.LicensePlate,
		&vehicle.Condition, &vehicle.BatteryCapacity, &vehicle.Mileage, &vehicle.IsAvailable,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vehicle", zap.Error(err))
		return nil, err
	}
	return &vehicle, nil
}

func (r *Repository) FindByStation(ctx context.Context, stationID int, onlyAvailable bool) ([]domain.Vehicle, error) {
	query := `
        SELECT id, station_id, model, license_plate, condition, battery_capacity, mileage, is_available
        FROM vehicles
        WHERE station_id = $1 AND (NOT $2 OR is_available)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, stationID, onlyAvailable)
	if err != nil {
		zap.L().Error("can't get vehicles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		err := rows.Scan(
			&vehicle.ID, &vehicle.StationID, &vehicle.Model, &vehicle.LicensePlate,
			&vehicle.Condition, &vehicle.BatteryCapacity, &vehicle.Mileage, &vehicle.IsAvailable,
		)
		if err != nil {
			zap.L().Error("can't scan vehicle row", zap.Error(err))
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

// Reserve flips the availability flag only when it is still up. The
// conditional update is the single-writer gate racing create calls
// are resolved by: whoever loses gets zero affected rows.
func (r *Repository) Reserve(ctx context.Context, vehicleID int) (bool, error) {
	query := `
        UPDATE vehicles
        SET is_available = FALSE
        WHERE id = $1 AND is_available = TRUE
    `
	tag, err := r.db.Exec(ctx, query, vehicleID)
	if err != nil {
		zap.L().Error("can't reserve vehicle", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Release is idempotent: releasing an already-available vehicle is a
// no-op.
func (r *Repository) Release(ctx context.Context, vehicleID int) error {
	query := `
        UPDATE vehicles
        SET is_available = TRUE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, vehicleID); err != nil {
		zap.L().Error("can't release vehicle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
        INSERT INTO vehicles (station_id, model, license_plate, condition, battery_capacity, mileage, is_available)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			vehicle.StationID, vehicle.Model, vehicle.LicensePlate, vehicle.Condition,
			vehicle.BatteryCapacity, vehicle.Mileage, vehicle.IsAvailable,
		).Scan(&vehicle.ID)
	})
	if err != nil {
		zap.L().Error("can't save vehicle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
        UPDATE vehicles
        SET station_id = $1, condition = $2, mileage = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, vehicle.StationID, vehicle.Condition, vehicle.Mileage, vehicle.ID)
		if err != nil {
			zap.L().Error("failed to update vehicle", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

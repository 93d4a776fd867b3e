package stationrepo

import (
	"context"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) List(ctx context.Context) ([]domain.Station, error) {
	query := `
		SELECT id, name, address
		FROM stations
		ORDER BY id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list stations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var station domain.Station
		if err := rows.Scan(&station.ID, &station.Name, &station.Address); err != nil {
			zap.L().Error("can't scan station row", zap.Error(err))
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, nil
}

func (repo *Repository) FindByID(ctx context.Context, stationID int) (*domain.Station, error) {
	query := `
		SELECT id, name, address
		FROM stations
		WHERE id = $1
	`
	var station domain.Station
	err := repo.db.QueryRow(ctx, query, stationID).Scan(&station.ID, &station.Name, &station.Address)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find station", zap.Error(err))
		return nil, err
	}
	return &station, nil
}

package renterrepo

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

func (repo *Repository) Create(ctx context.Context, renter *domain.Renter) (*domain.Renter, error) {
	query := `
		INSERT INTO renters (user_id, address, registered_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, renter.UserID, renter.Address, renter.RegisteredAt).Scan(&renter.ID)
	if err != nil {
		zap.L().Error("can't save renter", zap.Error(err))
		return nil, err
	}
	return renter, nil
}

func (repo *Repository) FindByID(ctx context.Context, renterID int) (*domain.Renter, error) {
	query := `
		SELECT id, user_id, is_verified, address, registered_at
		FROM renters
		WHERE id = $1
	`
	var renter domain.Renter
	err := repo.db.QueryRow(ctx, query, renterID).
		Scan(&renter.ID, &renter.UserID, &renter.IsVerified, &renter.Address, &renter.RegisteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find renter", zap.Error(err))
		return nil, err
	}
	return &renter, nil
}

func (repo *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Renter, error) {
	query := `
		SELECT id, user_id, is_verified, address, registered_at
		FROM renters
		WHERE user_id = $1
	`
	var renter domain.Renter
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&renter.ID, &renter.UserID, &renter.IsVerified, &renter.Address, &renter.RegisteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find renter by user", zap.Error(err))
		return nil, err
	}
	return &renter, nil
}

func (repo *Repository) SetVerified(ctx context.Context, renterID int, verified bool) error {
	query := `
		UPDATE renters
		SET is_verified = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, verified, renterID)
	if err != nil {
		zap.L().Error("can't update renter verification", zap.Error(err))
		return err
	}
	return nil
}

package documentrepo

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

const documentColumns = `id, renter_id, kind, number, front_image_ref, back_image_ref,
		status, reviewer_id, reviewed_at, reject_reason, submitted_at`

func scanDocument(row pgx.Row, doc *domain.Document) error {
	return row.Scan(
		&doc.ID, &doc.RenterID, &doc.Kind, &doc.Number, &doc.FrontImageRef, &doc.BackImageRef,
		&doc.Status, &doc.ReviewerID, &doc.ReviewedAt, &doc.RejectReason, &doc.SubmittedAt,
	)
}

// Upsert stores a submission; re-submitting the same kind replaces the
// previous record and resets its review state to PENDING.
func (r *Repository) Upsert(ctx context.Context, doc *domain.Document) error {
	query := `
        INSERT INTO documents (id, renter_id, kind, number, front_image_ref, back_image_ref, status, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (renter_id, kind) DO UPDATE
        SET number = EXCLUDED.number,
            front_image_ref = EXCLUDED.front_image_ref,
            back_image_ref = EXCLUDED.back_image_ref,
            status = EXCLUDED.status,
            reviewer_id = 0,
            reviewed_at = NULL,
            reject_reason = '',
            submitted_at = EXCLUDED.submitted_at
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			doc.ID, doc.RenterID, doc.Kind, doc.Number,
			doc.FrontImageRef, doc.BackImageRef, doc.Status, doc.SubmittedAt,
		).Scan(&doc.ID)
	})
	if err != nil {
		zap.L().Error("can't save document", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `
        SELECT ` + documentColumns + `
        FROM documents
        WHERE id = $1
    `
	var doc domain.Document
	err := scanDocument(r.db.QueryRow(ctx, query, documentID), &doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find document", zap.Error(err))
		return nil, err
	}
	return &doc, nil
}

func (r *Repository) FindByRenterID(ctx context.Context, renterID int) ([]domain.Document, error) {
	query := `
        SELECT ` + documentColumns + `
        FROM documents
        WHERE renter_id = $1
        ORDER BY kind
    `
	rows, err := r.db.Query(ctx, query, renterID)
	if err != nil {
		zap.L().Error("can't get documents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := scanDocument(rows, &doc); err != nil {
			zap.L().Error("can't scan document row", zap.Error(err))
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Document, error) {
	query := `
        SELECT ` + documentColumns + `
        FROM documents
        WHERE status = 'PENDING'
        ORDER BY submitted_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending documents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := scanDocument(rows, &doc); err != nil {
			zap.L().Error("can't scan document row", zap.Error(err))
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *Repository) UpdateReview(ctx context.Context, doc *domain.Document) error {
	query := `
        UPDATE documents
        SET status = $1, reviewer_id = $2, reviewed_at = $3, reject_reason = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, doc.Status, doc.ReviewerID, doc.ReviewedAt, doc.RejectReason, doc.ID)
		if err != nil {
			zap.L().Error("failed to update document review", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// CountApproved returns how many of the required document kinds are
// APPROVED for the renter.
func (r *Repository) CountApproved(ctx context.Context, renterID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM documents
        WHERE renter_id = $1 AND status = 'APPROVED'
          AND kind IN ('ID_CARD', 'DRIVER_LICENSE')
    `
	var count int
	if err := r.db.QueryRow(ctx, query, renterID).Scan(&count); err != nil {
		zap.L().Error("can't count approved documents", zap.Error(err))
		return 0, err
	}
	return count, nil
}

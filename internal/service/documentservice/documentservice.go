package documentservice

import (
	"context"
	"fmt"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/pg"
	"github.com/evgo-rent/backend/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentRepo interface {
	Upsert(ctx context.Context, doc *domain.Document) error
	FindByID(ctx context.Context, documentID string) (*domain.Document, error)
	FindByRenterID(ctx context.Context, renterID int) ([]domain.Document, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.Document, error)
	UpdateReview(ctx context.Context, doc *domain.Document) error
	CountApproved(ctx context.Context, renterID int) (int, error)
}

type RenterRepo interface {
	FindByID(ctx context.Context, renterID int) (*domain.Renter, error)
	SetVerified(ctx context.Context, renterID int, verified bool) error
}

// Both document kinds must be APPROVED before a renter may book.
const requiredDocumentKinds = 2

type Service struct {
	documentRepo DocumentRepo
	renterRepo   RenterRepo
	txManager    pg.TXManager
	now          func() time.Time
}

func New(documentRepo DocumentRepo, renterRepo RenterRepo, txManager pg.TXManager) *Service {
	return &Service{
		documentRepo: documentRepo,
		renterRepo:   renterRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

// Submit stores a PENDING document for the renter, replacing any
// earlier submission of the same kind.
func (s *Service) Submit(ctx context.Context, renterID int, kind domain.DocumentKind, frontImageRef, backImageRef, number string) (*domain.Document, error) {
	if kind != domain.DocumentKindIDCard && kind != domain.DocumentKindDriverLicense {
		return nil, fmt.Errorf("%w: unknown document kind %q", domain.ErrValidation, kind)
	}
	if frontImageRef == "" || backImageRef == "" {
		return nil, fmt.Errorf("%w: both image references are required", domain.ErrValidation)
	}
	if !validate.IsDocumentNumber(number) {
		return nil, fmt.Errorf("%w: document number must be 12 digits", domain.ErrValidation)
	}

	renter, err := s.renterRepo.FindByID(ctx, renterID)
	if err != nil {
		return nil, err
	}
	if renter == nil {
		return nil, fmt.Errorf("%w: renter %d", domain.ErrNotFound, renterID)
	}

	doc := &domain.Document{
		ID:            uuid.NewString(),
		RenterID:      renterID,
		Kind:          kind,
		Number:        number,
		FrontImageRef: frontImageRef,
		BackImageRef:  backImageRef,
		Status:        domain.DocumentStatusPending,
		SubmittedAt:   s.now(),
	}

	// A re-submission revokes an earlier approval, so the renter flag
	// must drop together with the overwrite.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.documentRepo.Upsert(ctx, doc); err != nil {
			return err
		}
		if renter.IsVerified {
			return s.renterRepo.SetVerified(ctx, renterID, false)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't submit document", zap.Error(err))
		return nil, err
	}

	zap.L().Info("document submitted", zap.Int("renterID", renterID), zap.String("kind", string(kind)))
	return doc, nil
}

// Review decides a PENDING document. Approving the second required
// kind flips the renter's verification flag in the same transaction.
func (s *Service) Review(ctx context.Context, documentID string, reviewer domain.Actor, approve bool, reason string) (*domain.Document, error) {
	if !reviewer.IsStaff() {
		return nil, domain.ErrNotAuthorized
	}
	if !approve && reason == "" {
		return nil, fmt.Errorf("%w: rejection requires a reason", domain.ErrValidation)
	}

	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, documentID)
	}
	if doc.Status != domain.DocumentStatusPending {
		return nil, fmt.Errorf("%w: document is %s", domain.ErrInvalidState, doc.Status)
	}

	reviewedAt := s.now()
	doc.ReviewerID = reviewer.UserID
	doc.ReviewedAt = &reviewedAt
	if approve {
		doc.Status = domain.DocumentStatusApproved
	} else {
		doc.Status = domain.DocumentStatusRejected
		doc.RejectReason = reason
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.documentRepo.UpdateReview(ctx, doc); err != nil {
			return err
		}
		if !approve {
			return nil
		}
		approved, err := s.documentRepo.CountApproved(ctx, doc.RenterID)
		if err != nil {
			return err
		}
		if approved >= requiredDocumentKinds {
			return s.renterRepo.SetVerified(ctx, doc.RenterID, true)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't review document", zap.Error(err))
		return nil, err
	}

	zap.L().Info("document reviewed",
		zap.String("documentID", documentID),
		zap.String("status", string(doc.Status)),
		zap.Int("reviewerID", reviewer.UserID),
	)
	return doc, nil
}

// IsRenterFullyVerified reports whether both required document kinds
// are APPROVED.
func (s *Service) IsRenterFullyVerified(ctx context.Context, renterID int) (bool, error) {
	approved, err := s.documentRepo.CountApproved(ctx, renterID)
	if err != nil {
		return false, err
	}
	return approved >= requiredDocumentKinds, nil
}

func (s *Service) GetDocuments(ctx context.Context, renterID int) ([]domain.Document, error) {
	docs, err := s.documentRepo.FindByRenterID(ctx, renterID)
	if err != nil {
		zap.L().Error("failed to get documents", zap.Error(err))
		return nil, err
	}
	return docs, nil
}

func (s *Service) GetPending(ctx context.Context, limit uint32) ([]domain.Document, error) {
	docs, err := s.documentRepo.FindPending(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get pending documents", zap.Error(err))
		return nil, err
	}
	return docs, nil
}

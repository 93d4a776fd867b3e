package feeservice

import (
	"context"
	"fmt"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"go.uber.org/zap"
)

type FeeRepo interface {
	Save(ctx context.Context, fee *domain.ExtraFee) error
	FindByOrderID(ctx context.Context, orderID int) ([]domain.ExtraFee, error)
	SumByOrderID(ctx context.Context, orderID int) (int64, error)
	FindFeeTypeByID(ctx context.Context, feeTypeID int) (*domain.FeeType, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.RentalOrder, error)
}

type PaymentRepo interface {
	SumSucceeded(ctx context.Context, orderID int, purpose domain.PaymentPurpose) (int64, error)
}

type Service struct {
	feeRepo     FeeRepo
	orderRepo   OrderRepo
	paymentRepo PaymentRepo
	now         func() time.Time
}

func New(feeRepo FeeRepo, orderRepo OrderRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		feeRepo:     feeRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// AddCharge appends an extra fee at the fee type's configured amount.
// Fees may only be added by staff while the order is IN_USE.
func (s *Service) AddCharge(ctx context.Context, actor domain.Actor, orderID, feeTypeID int, description string) (*domain.ExtraFee, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrNotAuthorized
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if order.Status != domain.OrderStatusInUse {
		return nil, fmt.Errorf("%w: order is %s", domain.ErrInvalidState, order.Status)
	}

	feeType, err := s.feeRepo.FindFeeTypeByID(ctx, feeTypeID)
	if err != nil {
		return nil, err
	}
	if feeType == nil {
		return nil, fmt.Errorf("%w: fee type %d", domain.ErrNotFound, feeTypeID)
	}

	fee := &domain.ExtraFee{
		OrderID:     orderID,
		FeeTypeID:   feeTypeID,
		Description: description,
		AmountCents: feeType.DefaultAmountCents,
		CreatedAt:   s.now(),
	}
	if err := s.feeRepo.Save(ctx, fee); err != nil {
		zap.L().Error("can't add charge", zap.Error(err))
		return nil, err
	}

	zap.L().Info("extra fee added",
		zap.Int("orderID", orderID),
		zap.String("feeType", feeType.Name),
		zap.Int64("amountCents", fee.AmountCents),
	)
	return fee, nil
}

func (s *Service) GetFees(ctx context.Context, orderID int) ([]domain.ExtraFee, error) {
	fees, err := s.feeRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to fetch fees", zap.Error(err))
		return nil, err
	}
	return fees, nil
}

// TotalOutstanding is the fee total not yet covered by settlement
// payments; never negative.
func (s *Service) TotalOutstanding(ctx context.Context, orderID int) (int64, error) {
	fees, err := s.feeRepo.SumByOrderID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	settled, err := s.paymentRepo.SumSucceeded(ctx, orderID, domain.PaymentPurposeSettlement)
	if err != nil {
		return 0, err
	}
	outstanding := fees - settled
	if outstanding < 0 {
		outstanding = 0
	}
	return outstanding, nil
}

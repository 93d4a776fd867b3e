package paymentservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/evgo-rent/backend/internal/config"
	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/pkg/signature"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) error
	FindByExternalRef(ctx context.Context, externalRef string) (*domain.Payment, error)
	FindByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int) ([]domain.Payment, error)
	SumSucceeded(ctx context.Context, orderID int, purpose domain.PaymentPurpose) (int64, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.RentalOrder, error)
}

// DepositConfirmer is the state machine input a recorded deposit
// payment feeds into.
type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, orderID int, paymentID string) error
}

type Service struct {
	paymentRepo PaymentRepo
	orderRepo   OrderRepo
	confirmer   DepositConfirmer
	secrets     map[signature.Provider]string
	now         func() time.Time
}

func New(cfg *config.Config, paymentRepo PaymentRepo, orderRepo OrderRepo, confirmer DepositConfirmer) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		confirmer:   confirmer,
		secrets: map[signature.Provider]string{
			signature.ProviderVNPay: cfg.VNPaySecret,
			signature.ProviderMoMo:  cfg.MoMoSecret,
		},
		now: time.Now,
	}
}

// Record appends a payment for the order. Replaying the same
// externalRef returns the already-recorded payment instead of a new
// row; the partial unique index on external_ref backs this up.
func (s *Service) Record(ctx context.Context, orderID int, amountCents int64, method domain.PaymentMethod, purpose domain.PaymentPurpose, externalRef string, status domain.PaymentStatus) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}

	if externalRef != "" {
		existing, err := s.paymentRepo.FindByExternalRef(ctx, externalRef)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			zap.L().Info("payment notification replayed", zap.String("externalRef", externalRef))
			return existing, nil
		}
	}

	payment := &domain.Payment{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		AmountCents: amountCents,
		Method:      method,
		Purpose:     purpose,
		ExternalRef: externalRef,
		Status:      status,
		CreatedAt:   s.now(),
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.String("paymentID", payment.ID),
		zap.Int("orderID", orderID),
		zap.Int64("amountCents", amountCents),
	)
	return payment, nil
}

// HandleNotification processes a provider IPN. A failed signature
// check rejects the payload without touching any state.
func (s *Service) HandleNotification(ctx context.Context, provider signature.Provider, params map[string]string) (*domain.Payment, error) {
	if err := signature.Verify(provider, params, s.secrets[provider]); err != nil {
		zap.L().Warn("payment notification rejected",
			zap.String("provider", string(provider)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrSignature, err)
	}

	note, err := parseNotification(provider, params)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, note.orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, note.orderID)
	}

	purpose := domain.PaymentPurposeSettlement
	if order.Status == domain.OrderStatusPending {
		purpose = domain.PaymentPurposeDeposit
	}
	status := domain.PaymentStatusFailed
	if note.success {
		status = domain.PaymentStatusSucceeded
	}

	payment, err := s.Record(ctx, note.orderID, note.amountCents, domain.PaymentMethodEWallet, purpose, note.externalRef, status)
	if err != nil {
		return nil, err
	}

	if note.success && purpose == domain.PaymentPurposeDeposit {
		if err := s.confirmer.ConfirmDeposit(ctx, note.orderID, payment.ID); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// CheckoutParams builds the signed redirect parameters sent to the
// provider's checkout page for an order's deposit.
func (s *Service) CheckoutParams(ctx context.Context, provider signature.Provider, orderID int) (map[string]string, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if order.Status != domain.OrderStatusPending {
		return nil, fmt.Errorf("%w: order is %s", domain.ErrInvalidState, order.Status)
	}

	var params map[string]string
	switch provider {
	case signature.ProviderVNPay:
		params = map[string]string{
			"vnp_TxnRef":    strconv.Itoa(order.ID),
			"vnp_Amount":    strconv.FormatInt(order.DepositCents*100, 10),
			"vnp_OrderInfo": fmt.Sprintf("EV rental deposit for order %d", order.ID),
		}
	case signature.ProviderMoMo:
		params = map[string]string{
			"orderId":   strconv.Itoa(order.ID),
			"amount":    strconv.FormatInt(order.DepositCents, 10),
			"orderInfo": fmt.Sprintf("EV rental deposit for order %d", order.ID),
		}
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrValidation, provider)
	}

	sig, err := signature.Sign(provider, params, s.secrets[provider])
	if err != nil {
		return nil, err
	}
	switch provider {
	case signature.ProviderVNPay:
		params["vnp_SecureHash"] = sig
	case signature.ProviderMoMo:
		params["signature"] = sig
	}
	return params, nil
}

func (s *Service) GetPayments(ctx context.Context, orderID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

type notification struct {
	orderID     int
	amountCents int64
	externalRef string
	success     bool
}

func parseNotification(provider signature.Provider, params map[string]string) (*notification, error) {
	switch provider {
	case signature.ProviderVNPay:
		orderID, err := strconv.Atoi(params["vnp_TxnRef"])
		if err != nil {
			return nil, fmt.Errorf("%w: bad vnp_TxnRef", domain.ErrValidation)
		}
		// VNPay reports amounts multiplied by 100; anything else would
		// silently lose the remainder on conversion.
		amount, err := strconv.ParseInt(params["vnp_Amount"], 10, 64)
		if err != nil || amount <= 0 || amount%100 != 0 {
			return nil, fmt.Errorf("%w: bad vnp_Amount", domain.ErrValidation)
		}
		return &notification{
			orderID:     orderID,
			amountCents: amount / 100,
			externalRef: params["vnp_TransactionNo"],
			success:     params["vnp_ResponseCode"] == "00",
		}, nil
	case signature.ProviderMoMo:
		orderID, err := strconv.Atoi(params["orderId"])
		if err != nil {
			return nil, fmt.Errorf("%w: bad orderId", domain.ErrValidation)
		}
		amount, err := strconv.ParseInt(params["amount"], 10, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("%w: bad amount", domain.ErrValidation)
		}
		return &notification{
			orderID:     orderID,
			amountCents: amount,
			externalRef: params["transId"],
			success:     params["resultCode"] == "0",
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrValidation, provider)
	}
}

package rentalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/evgo-rent/backend/internal/config"
	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/pg"
	"go.uber.org/zap"
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.RentalOrder) error
	FindByID(ctx context.Context, orderID int) (*domain.RentalOrder, error)
	FindByRenterID(ctx context.Context, renterID int) ([]domain.RentalOrder, error)
	Update(ctx context.Context, order *domain.RentalOrder, expected domain.OrderStatus) error
}

type VehicleRepo interface {
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	Reserve(ctx context.Context, vehicleID int) (bool, error)
	Release(ctx context.Context, vehicleID int) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
}

type RenterRepo interface {
	FindByID(ctx context.Context, renterID int) (*domain.Renter, error)
}

type PaymentRepo interface {
	FindByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type FeeRepo interface {
	Save(ctx context.Context, fee *domain.ExtraFee) error
	SumByOrderID(ctx context.Context, orderID int) (int64, error)
	FindFeeTypeByName(ctx context.Context, name string) (*domain.FeeType, error)
}

const lateReturnFeeType = "LATE_RETURN"

// The billing unit is a whole day; partial days round up.
const billingUnit = 24 * time.Hour

type Service struct {
	orderRepo   OrderRepo
	vehicleRepo VehicleRepo
	renterRepo  RenterRepo
	paymentRepo PaymentRepo
	feeRepo     FeeRepo
	txManager   pg.TXManager

	dailyRate   int64
	deposit     int64
	lateFeeRate int64
	now         func() time.Time
}

func New(cfg *config.Config, orderRepo OrderRepo, vehicleRepo VehicleRepo, renterRepo RenterRepo, paymentRepo PaymentRepo, feeRepo FeeRepo, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:   orderRepo,
		vehicleRepo: vehicleRepo,
		renterRepo:  renterRepo,
		paymentRepo: paymentRepo,
		feeRepo:     feeRepo,
		txManager:   txManager,
		dailyRate:   cfg.DailyRate,
		deposit:     cfg.Deposit,
		lateFeeRate: cfg.LateFeeRate,
		now:         time.Now,
	}
}

// Create opens a PENDING order and reserves the vehicle in the same
// transaction. A losing reservation race surfaces as
// domain.ErrVehicleUnavailable with nothing persisted.
func (s *Service) Create(ctx context.Context, actor domain.Actor, vehicleID, pickupStationID, returnStationID int, start, end time.Time) (*domain.RentalOrder, error) {
	if actor.Role != domain.RoleRenter || actor.RenterID == 0 {
		return nil, domain.ErrNotAuthorized
	}

	renter, err := s.renterRepo.FindByID(ctx, actor.RenterID)
	if err != nil {
		return nil, err
	}
	if renter == nil {
		return nil, fmt.Errorf("%w: renter %d", domain.ErrNotFound, actor.RenterID)
	}
	if !renter.IsVerified {
		return nil, domain.ErrNotVerified
	}

	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrValidation)
	}
	if start.Before(s.now()) {
		return nil, fmt.Errorf("%w: start must not be in the past", domain.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, vehicleID)
	}

	order := &domain.RentalOrder{
		RenterID:        actor.RenterID,
		VehicleID:       vehicleID,
		PickupStationID: pickupStationID,
		ReturnStationID: returnStationID,
		StartTime:       start,
		EndTime:         end,
		Status:          domain.OrderStatusPending,
		DepositCents:    s.deposit,
		CreatedAt:       s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reserved, err := s.vehicleRepo.Reserve(ctx, vehicleID)
		if err != nil {
			return err
		}
		if !reserved {
			return fmt.Errorf("%w: vehicle %d", domain.ErrVehicleUnavailable, vehicleID)
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		zap.L().Info("can't create order", zap.Int("vehicleID", vehicleID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created", zap.Int("orderID", order.ID), zap.Int("vehicleID", vehicleID))
	return order, nil
}

// ConfirmDeposit moves a PENDING order to BOOKED once a successful
// payment covering the deposit is on record.
func (s *Service) ConfirmDeposit(ctx context.Context, orderID int, paymentID string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusBooked) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusBooked)
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return fmt.Errorf("%w: payment %s", domain.ErrNotFound, paymentID)
	}
	if payment.OrderID != orderID || payment.Status != domain.PaymentStatusSucceeded {
		return fmt.Errorf("%w: payment does not settle this order", domain.ErrValidation)
	}
	if payment.AmountCents < order.DepositCents {
		return fmt.Errorf("%w: deposit requires %d, paid %d", domain.ErrValidation, order.DepositCents, payment.AmountCents)
	}

	prev := order.Status
	order.Status = domain.OrderStatusBooked
	if err := s.orderRepo.Update(ctx, order, prev); err != nil {
		return err
	}

	zap.L().Info("deposit confirmed", zap.Int("orderID", orderID), zap.String("paymentID", paymentID))
	return nil
}

// Cancel terminates a PENDING or BOOKED order and releases its
// vehicle. Renters may cancel their own orders; staff may cancel any.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, orderID int, reason string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if !actor.IsStaff() && actor.RenterID != order.RenterID {
		return domain.ErrNotAuthorized
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusCancelled)
	}

	prev := order.Status
	order.Status = domain.OrderStatusCancelled
	order.CancelReason = reason
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Update(ctx, order, prev); err != nil {
			return err
		}
		return s.vehicleRepo.Release(ctx, order.VehicleID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("order cancelled", zap.Int("orderID", orderID), zap.String("reason", reason))
	return nil
}

// ExpirePending cancels a PENDING order whose deposit never arrived.
// The status guard on the update makes a concurrently landing deposit
// win the race: once the order moves to BOOKED the cancel affects zero
// rows and the booking survives.
func (s *Service) ExpirePending(ctx context.Context, orderID int, reason string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if order.Status != domain.OrderStatusPending {
		return fmt.Errorf("%w: order is %s", domain.ErrInvalidState, order.Status)
	}

	order.Status = domain.OrderStatusCancelled
	order.CancelReason = reason
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Update(ctx, order, domain.OrderStatusPending); err != nil {
			return err
		}
		return s.vehicleRepo.Release(ctx, order.VehicleID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("pending order expired", zap.Int("orderID", orderID))
	return nil
}

// Handover records the vehicle leaving the station with the renter.
// Only staff assigned to the pickup station may confirm it.
func (s *Service) Handover(ctx context.Context, actor domain.Actor, orderID int, conditionPhotoRef string, actualStart time.Time) error {
	if !actor.IsStaff() {
		return domain.ErrNotAuthorized
	}
	if conditionPhotoRef == "" {
		return fmt.Errorf("%w: condition photo is required", domain.ErrValidation)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if actor.Role == domain.RoleStaff && actor.StationID != order.PickupStationID {
		return domain.ErrNotAuthorized
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusInUse) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusInUse)
	}

	prev := order.Status
	order.Status = domain.OrderStatusInUse
	order.ActualStart = &actualStart
	order.PickupPhotoRef = conditionPhotoRef
	if err := s.orderRepo.Update(ctx, order, prev); err != nil {
		return err
	}

	zap.L().Info("vehicle handed over", zap.Int("orderID", orderID))
	return nil
}

// Return completes the order: releases the vehicle, appends a late fee
// for overdue returns, and finalizes the total. TotalAmountCents is
// immutable afterwards.
func (s *Service) Return(ctx context.Context, actor domain.Actor, orderID int, conditionPhotoRef string, actualEnd time.Time, finalMileage int) error {
	if !actor.IsStaff() {
		return domain.ErrNotAuthorized
	}
	if conditionPhotoRef == "" {
		return fmt.Errorf("%w: condition photo is required", domain.ErrValidation)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusCompleted) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderStatusCompleted)
	}

	prev := order.Status
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if actualEnd.After(order.EndTime) {
			if err := s.appendLateFee(ctx, order, actualEnd); err != nil {
				return err
			}
		}

		fees, err := s.feeRepo.SumByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}

		order.Status = domain.OrderStatusCompleted
		order.ActualEnd = &actualEnd
		order.ReturnPhotoRef = conditionPhotoRef
		order.TotalAmountCents = s.dailyRate*billableUnits(order.StartTime, order.EndTime) + fees
		if err := s.orderRepo.Update(ctx, order, prev); err != nil {
			return err
		}

		vehicle, err := s.vehicleRepo.FindByID(ctx, order.VehicleID)
		if err != nil {
			return err
		}
		if vehicle != nil {
			vehicle.Mileage = finalMileage
			if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
				return err
			}
		}
		return s.vehicleRepo.Release(ctx, order.VehicleID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("order completed", zap.Int("orderID", orderID), zap.Int64("totalCents", order.TotalAmountCents))
	return nil
}

func (s *Service) appendLateFee(ctx context.Context, order *domain.RentalOrder, actualEnd time.Time) error {
	feeType, err := s.feeRepo.FindFeeTypeByName(ctx, lateReturnFeeType)
	if err != nil {
		return err
	}
	if feeType == nil {
		return fmt.Errorf("%w: fee type %s", domain.ErrNotFound, lateReturnFeeType)
	}

	overdueUnits := billableUnits(order.EndTime, actualEnd)
	fee := &domain.ExtraFee{
		OrderID:     order.ID,
		FeeTypeID:   feeType.ID,
		Description: fmt.Sprintf("overdue return by %d day(s)", overdueUnits),
		AmountCents: s.lateFeeRate * overdueUnits,
		CreatedAt:   s.now(),
	}
	return s.feeRepo.Save(ctx, fee)
}

func (s *Service) GetOrders(ctx context.Context, renterID int) ([]domain.RentalOrder, error) {
	orders, err := s.orderRepo.FindByRenterID(ctx, renterID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, actor domain.Actor, orderID int) (*domain.RentalOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if !actor.IsStaff() && actor.RenterID != order.RenterID {
		return nil, domain.ErrNotAuthorized
	}
	return order, nil
}

func billableUnits(from, to time.Time) int64 {
	d := to.Sub(from)
	if d <= 0 {
		return 1
	}
	units := int64(d / billingUnit)
	if d%billingUnit != 0 {
		units++
	}
	return units
}

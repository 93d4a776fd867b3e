package rentalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evgo-rent/backend/internal/config"
	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type mocks struct {
	orderRepo   *MockOrderRepo
	vehicleRepo *MockVehicleRepo
	renterRepo  *MockRenterRepo
	paymentRepo *MockPaymentRepo
	feeRepo     *MockFeeRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		orderRepo:   NewMockOrderRepo(ctrl),
		vehicleRepo: NewMockVehicleRepo(ctrl),
		renterRepo:  NewMockRenterRepo(ctrl),
		paymentRepo: NewMockPaymentRepo(ctrl),
		feeRepo:     NewMockFeeRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	cfg := &config.Config{DailyRate: 250000, Deposit: 500000, LateFeeRate: 100000}
	service := New(cfg, m.orderRepo, m.vehicleRepo, m.renterRepo, m.paymentRepo, m.feeRepo, txManager)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, m
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	renterActor := domain.Actor{UserID: 1, RenterID: 10, Role: domain.RoleRenter}
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	tests := []struct {
		name          string
		actor         domain.Actor
		start, end    time.Time
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Staff cannot create orders",
			actor:         domain.Actor{UserID: 2, Role: domain.RoleStaff},
			start:         start,
			end:           end,
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:  "Unverified renter is rejected",
			actor: renterActor,
			start: start,
			end:   end,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: false}, nil)
			},
			expectedError: domain.ErrNotVerified,
		},
		{
			name:  "Start after end",
			actor: renterActor,
			start: end,
			end:   start,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: true}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Start in the past",
			actor: renterActor,
			start: testNow.Add(-time.Hour),
			end:   end,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: true}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Unknown vehicle",
			actor: renterActor,
			start: start,
			end:   end,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: true}, nil)
				m.vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:  "Vehicle already reserved",
			actor: renterActor,
			start: start,
			end:   end,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: true}, nil)
				m.vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5, IsAvailable: true}, nil)
				m.vehicleRepo.EXPECT().Reserve(gomock.Any(), 5).Return(false, nil)
			},
			expectedError: domain.ErrVehicleUnavailable,
		},
		{
			name:  "Order created and vehicle reserved",
			actor: renterActor,
			start: start,
			end:   end,
			prepareMock: func() {
				m.renterRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Renter{ID: 10, IsVerified: true}, nil)
				m.vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5, IsAvailable: true}, nil)
				m.vehicleRepo.EXPECT().Reserve(gomock.Any(), 5).Return(true, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder) error {
						order.ID = 7
						return nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.Create(context.Background(), tt.actor, 5, 1, 2, tt.start, tt.end)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, order.ID)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				assert.Equal(t, int64(500000), order.DepositCents)
			}
		})
	}
}

func TestConfirmDeposit(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Deposit confirmed",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusPending, DepositCents: 500000}, nil)
				m.paymentRepo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(&domain.Payment{ID: "pay-1", OrderID: 7, AmountCents: 500000, Status: domain.PaymentStatusSucceeded}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusPending).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, domain.OrderStatusBooked, order.Status)
						return nil
					},
				)
			},
		},
		{
			name: "Order already booked",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusBooked}, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name: "Payment belongs to another order",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusPending, DepositCents: 500000}, nil)
				m.paymentRepo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(&domain.Payment{ID: "pay-1", OrderID: 8, AmountCents: 500000, Status: domain.PaymentStatusSucceeded}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Payment below the deposit",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusPending, DepositCents: 500000}, nil)
				m.paymentRepo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(&domain.Payment{ID: "pay-1", OrderID: 7, AmountCents: 100000, Status: domain.PaymentStatusSucceeded}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Unknown payment",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusPending, DepositCents: 500000}, nil)
				m.paymentRepo.EXPECT().FindByID(gomock.Any(), "pay-1").Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ConfirmDeposit(context.Background(), 7, "pay-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, m := NewMock(t)

	owner := domain.Actor{RenterID: 10, Role: domain.RoleRenter}
	stranger := domain.Actor{RenterID: 11, Role: domain.RoleRenter}
	staff := domain.Actor{UserID: 3, StationID: 1, Role: domain.RoleStaff}

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Owner cancels a pending order",
			actor: owner,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, VehicleID: 5, Status: domain.OrderStatusPending}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusPending).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, domain.OrderStatusCancelled, order.Status)
						assert.Equal(t, "changed plans", order.CancelReason)
						return nil
					},
				)
				m.vehicleRepo.EXPECT().Release(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name:  "Staff cancels someone else's order",
			actor: staff,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, VehicleID: 5, Status: domain.OrderStatusBooked}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusBooked).Return(nil)
				m.vehicleRepo.EXPECT().Release(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name:  "Another renter may not cancel",
			actor: stranger,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, Status: domain.OrderStatusPending}, nil)
			},
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:  "Order in use cannot be cancelled",
			actor: owner,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, Status: domain.OrderStatusInUse}, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Cancel(context.Background(), tt.actor, 7, "changed plans")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpirePending(t *testing.T) {
	service, m := NewMock(t)

	const reason = "deposit not received in time"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending order expires and frees the vehicle",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, VehicleID: 5, Status: domain.OrderStatusPending}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusPending).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, domain.OrderStatusCancelled, order.Status)
						assert.Equal(t, reason, order.CancelReason)
						return nil
					},
				)
				m.vehicleRepo.EXPECT().Release(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name: "Deposit already landed before the expiry run",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, VehicleID: 5, Status: domain.OrderStatusBooked}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "Deposit lands between the read and the write",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, RenterID: 10, VehicleID: 5, Status: domain.OrderStatusPending}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusPending).Return(domain.ErrInvalidTransition)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name: "Unknown order",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ExpirePending(context.Background(), 7, reason)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandover(t *testing.T) {
	service, m := NewMock(t)

	staff := domain.Actor{UserID: 3, StationID: 1, Role: domain.RoleStaff}
	admin := domain.Actor{UserID: 4, Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		actor         domain.Actor
		photoRef      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Renter may not confirm handover",
			actor:         domain.Actor{RenterID: 10, Role: domain.RoleRenter},
			photoRef:      "s3://photos/1.jpg",
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:          "Photo is mandatory",
			actor:         staff,
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Staff from another station",
			actor:    staff,
			photoRef: "s3://photos/1.jpg",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, PickupStationID: 2, Status: domain.OrderStatusBooked}, nil)
			},
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:     "Order not booked yet",
			actor:    staff,
			photoRef: "s3://photos/1.jpg",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, PickupStationID: 1, Status: domain.OrderStatusPending}, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:     "Staff at the pickup station hands over",
			actor:    staff,
			photoRef: "s3://photos/1.jpg",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, PickupStationID: 1, Status: domain.OrderStatusBooked}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusBooked).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, domain.OrderStatusInUse, order.Status)
						assert.NotNil(t, order.ActualStart)
						assert.Equal(t, "s3://photos/1.jpg", order.PickupPhotoRef)
						return nil
					},
				)
			},
		},
		{
			name:     "Admin bypasses the station check",
			actor:    admin,
			photoRef: "s3://photos/1.jpg",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, PickupStationID: 2, Status: domain.OrderStatusBooked}, nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusBooked).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Handover(context.Background(), tt.actor, 7, tt.photoRef, testNow)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReturn(t *testing.T) {
	service, m := NewMock(t)

	staff := domain.Actor{UserID: 3, StationID: 1, Role: domain.RoleStaff}
	start := testNow
	end := testNow.Add(48 * time.Hour)

	inUseOrder := func() *domain.RentalOrder {
		return &domain.RentalOrder{
			ID:        7,
			VehicleID: 5,
			StartTime: start,
			EndTime:   end,
			Status:    domain.OrderStatusInUse,
		}
	}

	tests := []struct {
		name          string
		actualEnd     time.Time
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "On-time return",
			actualEnd: end,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(inUseOrder(), nil)
				m.feeRepo.EXPECT().SumByOrderID(gomock.Any(), 7).Return(int64(0), nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusInUse).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, domain.OrderStatusCompleted, order.Status)
						// Two billable days at the daily rate.
						assert.Equal(t, int64(500000), order.TotalAmountCents)
						return nil
					},
				)
				m.vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5, Mileage: 100}, nil)
				m.vehicleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) error {
						assert.Equal(t, 250, vehicle.Mileage)
						return nil
					},
				)
				m.vehicleRepo.EXPECT().Release(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name:      "Two days overdue adds a late fee",
			actualEnd: end.Add(25 * time.Hour),
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(inUseOrder(), nil)
				m.feeRepo.EXPECT().FindFeeTypeByName(gomock.Any(), "LATE_RETURN").Return(&domain.FeeType{ID: 1, Name: "LATE_RETURN", DefaultAmountCents: 100000}, nil)
				m.feeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fee *domain.ExtraFee) error {
						assert.Equal(t, int64(200000), fee.AmountCents)
						return nil
					},
				)
				m.feeRepo.EXPECT().SumByOrderID(gomock.Any(), 7).Return(int64(200000), nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.OrderStatusInUse).DoAndReturn(
					func(_ context.Context, order *domain.RentalOrder, _ domain.OrderStatus) error {
						assert.Equal(t, int64(700000), order.TotalAmountCents)
						return nil
					},
				)
				m.vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5}, nil)
				m.vehicleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.vehicleRepo.EXPECT().Release(gomock.Any(), 5).Return(nil)
			},
		},
		{
			name:      "Order not in use",
			actualEnd: end,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.RentalOrder{ID: 7, Status: domain.OrderStatusBooked}, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:      "Repo failure rolls the transaction back",
			actualEnd: end,
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 7).Return(inUseOrder(), nil)
				m.feeRepo.EXPECT().SumByOrderID(gomock.Any(), 7).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Return(context.Background(), staff, 7, "s3://photos/2.jpg", tt.actualEnd, 250)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBillableUnits(t *testing.T) {
	from := testNow

	tests := []struct {
		name     string
		to       time.Time
		expected int64
	}{
		{"Zero duration still bills one day", from, 1},
		{"Partial day rounds up", from.Add(5 * time.Hour), 1},
		{"Exact day", from.Add(24 * time.Hour), 1},
		{"A day and an hour", from.Add(25 * time.Hour), 2},
		{"Three full days", from.Add(72 * time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, billableUnits(from, tt.to))
		})
	}
}

package rentals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RentalHandler, *MockService, *MockFeeService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	feeService := NewMockFeeService(ctrl)
	handler := New(service, feeService)
	defer ctrl.Finish()
	return handler, service, feeService
}

var renterActor = domain.Actor{UserID: 1, RenterID: 10, Role: domain.RoleRenter}

func newRequest(method, target string, body []byte, actor domain.Actor, orderID string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(r.Context(), auth.ActorKey, actor)
	if orderID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", orderID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestCreateHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	validBody, _ := json.Marshal(dto.CreateRentalRequestDTO{
		VehicleID:       5,
		PickupStationID: 2,
		ReturnStationID: 2,
		StartTime:       start.Format(time.RFC3339),
		EndTime:         end.Format(time.RFC3339),
	})

	tests := []struct {
		name          string
		body          []byte
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful order creation",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), renterActor, 5, 2, 2, start, end).
					Return(&domain.RentalOrder{
						ID:               7,
						RenterID:         10,
						VehicleID:        5,
						PickupStationID:  2,
						ReturnStationID:  2,
						StartTime:        start,
						EndTime:          end,
						Status:           domain.OrderStatusPending,
						TotalAmountCents: 250000,
						DepositCents:     500000,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          []byte("{not json"),
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid start time",
			body:          []byte(`{"vehicle_id":5,"pickup_station_id":2,"return_station_id":2,"start_time":"tomorrow","end_time":"2025-06-03T09:00:00Z"}`),
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid start_time",
		},
		{
			name: "Renter not verified",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), renterActor, 5, 2, 2, start, end).
					Return(nil, fmt.Errorf("create order: %w", domain.ErrNotVerified))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Vehicle already reserved",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), renterActor, 5, 2, 2, start, end).
					Return(nil, fmt.Errorf("create order: %w", domain.ErrVehicleUnavailable))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), renterActor, 5, 2, 2, start, end).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/rentals", tt.body, renterActor, "")
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.RentalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.ID)
				assert.Equal(t, "PENDING", body.Status)
				assert.Equal(t, int64(500000), body.DepositCents)
			}
		})
	}
}

func TestGetOwnHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful order retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), 10).
					Return([]domain.RentalOrder{
						{ID: 7, VehicleID: 5, StartTime: start, EndTime: start.Add(24 * time.Hour), Status: domain.OrderStatusBooked},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No orders found",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), 10).
					Return(nil, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No data available",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), 10).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/rentals", nil, renterActor, "")
			w := httptest.NewRecorder()

			handler.GetOwn(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.RentalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, "BOOKED", body[0].Status)
			}
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful cancellation",
			orderID: "7",
			body:    `{"reason":"changed plans"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), renterActor, 7, "changed plans").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid order id",
			orderID:       "abc",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:    "Not the order's renter",
			orderID: "7",
			body:    `{"reason":"nope"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), renterActor, 7, "nope").
					Return(fmt.Errorf("cancel order: %w", domain.ErrNotAuthorized))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Order already handed over",
			orderID: "7",
			body:    `{"reason":"too late"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), renterActor, 7, "too late").
					Return(fmt.Errorf("cancel order: %w", domain.ErrInvalidTransition))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/rentals/"+tt.orderID+"/cancel", []byte(tt.body), renterActor, tt.orderID)
			w := httptest.NewRecorder()

			handler.Cancel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestHandoverHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	staffActor := domain.Actor{UserID: 2, StationID: 2, Role: domain.RoleStaff}
	actualStart := time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful handover",
			orderID: "7",
			body:    `{"condition_photo_ref":"s3://pickup/7","actual_start":"2025-06-02T09:15:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Handover(gomock.Any(), staffActor, 7, "s3://pickup/7", actualStart).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid actual start",
			orderID:       "7",
			body:          `{"condition_photo_ref":"s3://pickup/7","actual_start":"yesterday"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid actual_start",
		},
		{
			name:    "Staff not at pickup station",
			orderID: "7",
			body:    `{"condition_photo_ref":"s3://pickup/7","actual_start":"2025-06-02T09:15:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Handover(gomock.Any(), staffActor, 7, "s3://pickup/7", actualStart).
					Return(fmt.Errorf("handover: %w", domain.ErrNotAuthorized))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Order not booked",
			orderID: "7",
			body:    `{"condition_photo_ref":"s3://pickup/7","actual_start":"2025-06-02T09:15:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Handover(gomock.Any(), staffActor, 7, "s3://pickup/7", actualStart).
					Return(fmt.Errorf("handover: %w", domain.ErrInvalidTransition))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/staff/rentals/"+tt.orderID+"/handover", []byte(tt.body), staffActor, tt.orderID)
			w := httptest.NewRecorder()

			handler.Handover(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestReturnHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	staffActor := domain.Actor{UserID: 2, StationID: 2, Role: domain.RoleStaff}
	actualEnd := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful return",
			orderID: "7",
			body:    `{"condition_photo_ref":"s3://return/7","actual_end":"2025-06-03T09:00:00Z","final_mileage":12250}`,
			prepareMock: func() {
				service.EXPECT().
					Return(gomock.Any(), staffActor, 7, "s3://return/7", actualEnd, 12250).
					Return(nil)
				service.EXPECT().
					GetOrder(gomock.Any(), staffActor, 7).
					Return(&domain.RentalOrder{
						ID:               7,
						Status:           domain.OrderStatusCompleted,
						StartTime:        actualEnd.Add(-24 * time.Hour),
						EndTime:          actualEnd,
						TotalAmountCents: 250000,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Order not in use",
			orderID: "7",
			body:    `{"condition_photo_ref":"s3://return/7","actual_end":"2025-06-03T09:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Return(gomock.Any(), staffActor, 7, "s3://return/7", actualEnd, 0).
					Return(fmt.Errorf("return: %w", domain.ErrInvalidTransition))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/staff/rentals/"+tt.orderID+"/return", []byte(tt.body), staffActor, tt.orderID)
			w := httptest.NewRecorder()

			handler.Return(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.RentalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "COMPLETED", body.Status)
				assert.Equal(t, int64(250000), body.TotalAmountCents)
			}
		})
	}
}

func TestGetFeesHandler(t *testing.T) {
	handler, service, feeService := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Fees with outstanding balance",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					GetOrder(gomock.Any(), renterActor, 7).
					Return(&domain.RentalOrder{ID: 7, RenterID: 10}, nil)
				feeService.EXPECT().
					GetFees(gomock.Any(), 7).
					Return([]domain.ExtraFee{
						{ID: 1, OrderID: 7, FeeTypeID: 3, Description: "scratched door", AmountCents: 500000},
					}, nil)
				feeService.EXPECT().
					TotalOutstanding(gomock.Any(), 7).
					Return(int64(200000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Unknown order",
			orderID: "99",
			prepareMock: func() {
				service.EXPECT().
					GetOrder(gomock.Any(), renterActor, 99).
					Return(nil, fmt.Errorf("get order: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Someone else's order",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					GetOrder(gomock.Any(), renterActor, 7).
					Return(nil, fmt.Errorf("get order: %w", domain.ErrNotAuthorized))
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/rentals/"+tt.orderID+"/fees", nil, renterActor, tt.orderID)
			w := httptest.NewRecorder()

			handler.GetFees(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.FeesResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Fees, 1)
				assert.Equal(t, int64(200000), body.OutstandingCents)
			}
		})
	}
}

func TestAddChargeHandler(t *testing.T) {
	handler, _, feeService := NewMock(t)

	staffActor := domain.Actor{UserID: 2, StationID: 2, Role: domain.RoleStaff}

	tests := []struct {
		name          string
		orderID       string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Charge added",
			orderID: "7",
			body:    `{"fee_type_id":3,"description":"scratched door"}`,
			prepareMock: func() {
				feeService.EXPECT().
					AddCharge(gomock.Any(), staffActor, 7, 3, "scratched door").
					Return(&domain.ExtraFee{ID: 1, OrderID: 7, FeeTypeID: 3, Description: "scratched door", AmountCents: 500000}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "Unknown fee type",
			orderID: "7",
			body:    `{"fee_type_id":42}`,
			prepareMock: func() {
				feeService.EXPECT().
					AddCharge(gomock.Any(), staffActor, 7, 42, "").
					Return(nil, fmt.Errorf("add charge: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Order already completed",
			orderID: "7",
			body:    `{"fee_type_id":3}`,
			prepareMock: func() {
				feeService.EXPECT().
					AddCharge(gomock.Any(), staffActor, 7, 3, "").
					Return(nil, fmt.Errorf("add charge: %w", domain.ErrInvalidState))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/staff/rentals/"+tt.orderID+"/fees", []byte(tt.body), staffActor, tt.orderID)
			w := httptest.NewRecorder()

			handler.AddCharge(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.FeeResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(500000), body.AmountCents)
			}
		})
	}
}

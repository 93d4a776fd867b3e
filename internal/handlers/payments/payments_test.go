package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/signature"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	zap.ReplaceGlobals(zap.NewNop())
	return handler, service
}

var createdAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestNotifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		provider     string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Deposit recorded",
			provider: "vnpay",
			query:    "?vnp_TxnRef=7&vnp_Amount=50000000&vnp_ResponseCode=00&vnp_TransactionNo=140001&vnp_SecureHash=abc",
			prepareMock: func() {
				service.EXPECT().
					HandleNotification(gomock.Any(), signature.ProviderVNPay, map[string]string{
						"vnp_TxnRef":        "7",
						"vnp_Amount":        "50000000",
						"vnp_ResponseCode":  "00",
						"vnp_TransactionNo": "140001",
						"vnp_SecureHash":    "abc",
					}).
					Return(&domain.Payment{
						ID:          "p1",
						OrderID:     7,
						AmountCents: 500000,
						Method:      domain.PaymentMethodEWallet,
						Purpose:     domain.PaymentPurposeDeposit,
						ExternalRef: "140001",
						Status:      domain.PaymentStatusSucceeded,
						CreatedAt:   createdAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Tampered signature",
			provider: "vnpay",
			query:    "?vnp_TxnRef=7&vnp_SecureHash=bogus",
			prepareMock: func() {
				service.EXPECT().
					HandleNotification(gomock.Any(), signature.ProviderVNPay, gomock.Any()).
					Return(nil, fmt.Errorf("verify ipn: %w", domain.ErrSignature))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Unknown order",
			provider: "momo",
			query:    "?orderId=99&signature=abc",
			prepareMock: func() {
				service.EXPECT().
					HandleNotification(gomock.Any(), signature.ProviderMoMo, gomock.Any()).
					Return(nil, fmt.Errorf("order 99: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParams(
				httptest.NewRequest(http.MethodGet, "/api/payments/ipn/"+tt.provider+tt.query, nil),
				map[string]string{"provider": tt.provider},
			)
			w := httptest.NewRecorder()

			handler.Notify(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PaymentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.OrderID)
				assert.Equal(t, int64(500000), body.AmountCents)
				assert.Equal(t, "SUCCEEDED", body.Status)
			}
		})
	}
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		provider      string
		orderID       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Signed redirect parameters",
			provider: "vnpay",
			orderID:  "7",
			prepareMock: func() {
				service.EXPECT().
					CheckoutParams(gomock.Any(), signature.ProviderVNPay, 7).
					Return(map[string]string{
						"vnp_TxnRef":     "7",
						"vnp_Amount":     "50000000",
						"vnp_SecureHash": "deadbeef",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid order id",
			provider:      "vnpay",
			orderID:       "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:     "Order not awaiting deposit",
			provider: "momo",
			orderID:  "7",
			prepareMock: func() {
				service.EXPECT().
					CheckoutParams(gomock.Any(), signature.ProviderMoMo, 7).
					Return(nil, fmt.Errorf("checkout: %w", domain.ErrInvalidState))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParams(
				httptest.NewRequest(http.MethodGet, "/api/payments/checkout/"+tt.provider+"/"+tt.orderID, nil),
				map[string]string{"provider": tt.provider, "id": tt.orderID},
			)
			w := httptest.NewRecorder()

			handler.Checkout(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.CheckoutResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "deadbeef", body.Params["vnp_SecureHash"])
			}
		})
	}
}

func TestGetByOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		orderID       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Payments found",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					GetPayments(gomock.Any(), 7).
					Return([]domain.Payment{
						{ID: "p1", OrderID: 7, AmountCents: 500000, Method: domain.PaymentMethodEWallet, Purpose: domain.PaymentPurposeDeposit, Status: domain.PaymentStatusSucceeded, CreatedAt: createdAt},
						{ID: "p2", OrderID: 7, AmountCents: 150000, Method: domain.PaymentMethodCash, Purpose: domain.PaymentPurposeSettlement, Status: domain.PaymentStatusSucceeded, CreatedAt: createdAt},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "No payments",
			orderID: "8",
			prepareMock: func() {
				service.EXPECT().
					GetPayments(gomock.Any(), 8).
					Return(nil, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No data available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParams(
				httptest.NewRequest(http.MethodGet, "/api/staff/rentals/"+tt.orderID+"/payments", nil),
				map[string]string{"id": tt.orderID},
			)
			w := httptest.NewRecorder()

			handler.GetByOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.PaymentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 2)
			}
		})
	}
}

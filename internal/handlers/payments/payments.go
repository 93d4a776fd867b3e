package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/signature"
	"github.com/evgo-rent/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	HandleNotification(ctx context.Context, provider signature.Provider, params map[string]string) (*domain.Payment, error)
	CheckoutParams(ctx context.Context, provider signature.Provider, orderID int) (map[string]string, error)
	GetPayments(ctx context.Context, orderID int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSignature):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Notify godoc
//
//	@Summary		Payment provider IPN endpoint
//	@Description	Verifies the provider signature and records the payment; replays are idempotent
//	@Tags			Payments
//	@Produce		json
//	@Param			provider	path		string	true	"Payment provider (vnpay or momo)"
//	@Success		200			{object}	dto.PaymentResponseDTO
//	@Failure		400			{object}	utils.Response	"Signature verification failed"
//	@Failure		404			{object}	utils.Response	"Unknown order"
//	@Router			/api/payments/ipn/{provider} [get]
func (h *PaymentHandler) Notify(w http.ResponseWriter, r *http.Request) {
	provider := signature.Provider(chi.URLParam(r, "provider"))

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	payment, err := h.paymentService.HandleNotification(r.Context(), provider, params)
	if err != nil {
		zap.L().Warn("payment notification failed", zap.String("provider", string(provider)), zap.Error(err))
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payment))
}

// Checkout godoc
//
//	@Summary	Signed redirect parameters for an order's deposit
//	@Tags		Payments
//	@Produce	json
//	@Param		provider	path	string	true	"Payment provider (vnpay or momo)"
//	@Param		id			path	int		true	"Order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CheckoutResponseDTO
//	@Failure	404	{object}	utils.Response	"Unknown order"
//	@Failure	409	{object}	utils.Response	"Order not awaiting deposit"
//	@Router		/api/payments/checkout/{provider}/{id} [get]
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	provider := signature.Provider(chi.URLParam(r, "provider"))
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	params, err := h.paymentService.CheckoutParams(r.Context(), provider, orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{Params: params})
}

// GetByOrder godoc
//
//	@Summary	Payments recorded for an order
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path	int	true	"Order id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.PaymentResponseDTO
//	@Failure	204	{object}	utils.Response	"No data available"
//	@Router		/api/staff/rentals/{id}/payments [get]
func (h *PaymentHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	payments, err := h.paymentService.GetPayments(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		response = append(response, toDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(payment *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		AmountCents: payment.AmountCents,
		Method:      string(payment.Method),
		Purpose:     string(payment.Purpose),
		ExternalRef: payment.ExternalRef,
		Status:      string(payment.Status),
		CreatedAt:   payment.CreatedAt.Format(time.RFC3339),
	}
}

package rentals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/auth"
	"github.com/evgo-rent/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, vehicleID, pickupStationID, returnStationID int, start, end time.Time) (*domain.RentalOrder, error)
	Cancel(ctx context.Context, actor domain.Actor, orderID int, reason string) error
	Handover(ctx context.Context, actor domain.Actor, orderID int, conditionPhotoRef string, actualStart time.Time) error
	Return(ctx context.Context, actor domain.Actor, orderID int, conditionPhotoRef string, actualEnd time.Time, finalMileage int) error
	GetOrders(ctx context.Context, renterID int) ([]domain.RentalOrder, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID int) (*domain.RentalOrder, error)
}

type FeeService interface {
	AddCharge(ctx context.Context, actor domain.Actor, orderID, feeTypeID int, description string) (*domain.ExtraFee, error)
	GetFees(ctx context.Context, orderID int) ([]domain.ExtraFee, error)
	TotalOutstanding(ctx context.Context, orderID int) (int64, error)
}

type RentalHandler struct {
	rentalService Service
	feeService    FeeService
}

func New(rentalService Service, feeService FeeService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		feeService:    feeService,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotVerified), errors.Is(err, domain.ErrNotAuthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func orderIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// Create godoc
//
//	@Summary		Create a rental order
//	@Description	Books an available vehicle for a verified renter; reserves the vehicle
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRentalRequestDTO	true	"Rental request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RentalResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		403	{object}	utils.Response	"Renter not verified"
//	@Failure		409	{object}	utils.Response	"Vehicle just got booked"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals [post]
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())

	var req dto.CreateRentalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start_time")
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end_time")
		return
	}

	order, err := h.rentalService.Create(r.Context(), actor, req.VehicleID, req.PickupStationID, req.ReturnStationID, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(order))
}

// GetOwn godoc
//
//	@Summary	List the renter's orders
//	@Tags		Rentals
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.RentalResponseDTO
//	@Failure	204	{object}	utils.Response	"No data available"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/rentals [get]
func (h *RentalHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())

	orders, err := h.rentalService.GetOrders(r.Context(), actor.RenterID)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.RentalResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Cancel godoc
//
//	@Summary		Cancel an order
//	@Description	Renter cancels an own PENDING or BOOKED order; staff may cancel any
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Order id"
//	@Param			request	body	dto.CancelRentalRequestDTO	true	"Cancellation reason"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the order's renter"
//	@Failure		409	{object}	utils.Response	"Order already handed over"
//	@Router			/api/rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.CancelRentalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.rentalService.Cancel(r.Context(), actor, orderID, req.Reason); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order cancelled"})
}

// Handover godoc
//
//	@Summary		Confirm vehicle handover
//	@Description	Staff at the pickup station hands the vehicle to the renter
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int					true	"Order id"
//	@Param			request	body	dto.HandoverRequestDTO	true	"Handover details"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Staff not at pickup station"
//	@Failure		409	{object}	utils.Response	"Order not BOOKED"
//	@Router			/api/staff/rentals/{id}/handover [post]
func (h *RentalHandler) Handover(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.HandoverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actualStart := time.Now()
	if req.ActualStart != "" {
		if actualStart, err = time.Parse(time.RFC3339, req.ActualStart); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid actual_start")
			return
		}
	}

	if err := h.rentalService.Handover(r.Context(), actor, orderID, req.ConditionPhotoRef, actualStart); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vehicle handed over"})
}

// Return godoc
//
//	@Summary		Confirm vehicle return
//	@Description	Completes the order, releases the vehicle and finalizes the total
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int					true	"Order id"
//	@Param			request	body	dto.ReturnRequestDTO	true	"Return details"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RentalResponseDTO
//	@Failure		409	{object}	utils.Response	"Order not IN_USE"
//	@Router			/api/staff/rentals/{id}/return [post]
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.ReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actualEnd := time.Now()
	if req.ActualEnd != "" {
		if actualEnd, err = time.Parse(time.RFC3339, req.ActualEnd); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid actual_end")
			return
		}
	}

	if err := h.rentalService.Return(r.Context(), actor, orderID, req.ConditionPhotoRef, actualEnd, req.FinalMileage); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.rentalService.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// GetFees godoc
//
//	@Summary	Extra fees and outstanding balance for an order
//	@Tags		Rentals
//	@Produce	json
//	@Param		id	path	int	true	"Order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.FeesResponseDTO
//	@Failure	404	{object}	utils.Response	"Unknown order"
//	@Router		/api/rentals/{id}/fees [get]
func (h *RentalHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	// Ownership check rides on GetOrder.
	if _, err := h.rentalService.GetOrder(r.Context(), actor, orderID); err != nil {
		respondError(w, err)
		return
	}

	fees, err := h.feeService.GetFees(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	outstanding, err := h.feeService.TotalOutstanding(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}

	response := dto.FeesResponseDTO{OutstandingCents: outstanding, Fees: make([]dto.FeeResponseDTO, 0, len(fees))}
	for _, fee := range fees {
		response.Fees = append(response.Fees, dto.FeeResponseDTO{
			ID:          fee.ID,
			FeeTypeID:   fee.FeeTypeID,
			Description: fee.Description,
			AmountCents: fee.AmountCents,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddCharge godoc
//
//	@Summary		Append an extra fee to an order in use
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Order id"
//	@Param			request	body	dto.AddChargeRequestDTO	true	"Charge details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.FeeResponseDTO
//	@Failure		404	{object}	utils.Response	"Unknown order or fee type"
//	@Failure		409	{object}	utils.Response	"Order not IN_USE"
//	@Router			/api/staff/rentals/{id}/fees [post]
func (h *RentalHandler) AddCharge(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.AddChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fee, err := h.feeService.AddCharge(r.Context(), actor, orderID, req.FeeTypeID, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FeeResponseDTO{
		ID:          fee.ID,
		FeeTypeID:   fee.FeeTypeID,
		Description: fee.Description,
		AmountCents: fee.AmountCents,
	})
}

func toDTO(order *domain.RentalOrder) dto.RentalResponseDTO {
	response := dto.RentalResponseDTO{
		ID:               order.ID,
		VehicleID:        order.VehicleID,
		PickupStationID:  order.PickupStationID,
		ReturnStationID:  order.ReturnStationID,
		StartTime:        order.StartTime.Format(time.RFC3339),
		EndTime:          order.EndTime.Format(time.RFC3339),
		Status:           string(order.Status),
		TotalAmountCents: order.TotalAmountCents,
		DepositCents:     order.DepositCents,
	}
	if order.ActualStart != nil {
		response.ActualStart = order.ActualStart.Format(time.RFC3339)
	}
	if order.ActualEnd != nil {
		response.ActualEnd = order.ActualEnd.Format(time.RFC3339)
	}
	return response
}

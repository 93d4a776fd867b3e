package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/auth"
	"github.com/evgo-rent/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetStations(ctx context.Context) ([]domain.Station, error)
	GetStationVehicles(ctx context.Context, stationID int, onlyAvailable bool) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, actor domain.Actor, vehicleID int, condition domain.VehicleCondition, mileage, stationID int) (*domain.Vehicle, error)
}

type VehicleHandler struct {
	vehicleService Service
}

func New(vehicleService Service) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetStations godoc
//
//	@Summary	List rental stations
//	@Tags		Vehicles
//	@Produce	json
//	@Success	200	{array}		dto.StationResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/stations [get]
func (h *VehicleHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.vehicleService.GetStations(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response := make([]dto.StationResponseDTO, 0, len(stations))
	for _, station := range stations {
		response = append(response, dto.StationResponseDTO{
			ID:      station.ID,
			Name:    station.Name,
			Address: station.Address,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStationVehicles godoc
//
//	@Summary		List vehicles at a station
//	@Description	Pass available=true to hide vehicles that are reserved or in use
//	@Tags			Vehicles
//	@Produce		json
//	@Param			id			path	int		true	"Station id"
//	@Param			available	query	bool	false	"Only available vehicles"
//	@Success		200	{array}		dto.VehicleResponseDTO
//	@Failure		404	{object}	utils.Response	"Unknown station"
//	@Router			/api/stations/{id}/vehicles [get]
func (h *VehicleHandler) GetStationVehicles(w http.ResponseWriter, r *http.Request) {
	stationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	onlyAvailable, _ := strconv.ParseBool(r.URL.Query().Get("available"))

	vehicles, err := h.vehicleService.GetStationVehicles(r.Context(), stationID, onlyAvailable)
	if err != nil {
		respondError(w, err)
		return
	}

	response := make([]dto.VehicleResponseDTO, 0, len(vehicles))
	for i := range vehicles {
		response = append(response, toDTO(&vehicles[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetVehicle godoc
//
//	@Summary	Vehicle details
//	@Tags		Vehicles
//	@Produce	json
//	@Param		id	path	int	true	"Vehicle id"
//	@Success	200	{object}	dto.VehicleResponseDTO
//	@Failure	404	{object}	utils.Response	"Unknown vehicle"
//	@Router		/api/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(r.Context(), vehicleID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(vehicle))
}

// Create godoc
//
//	@Summary	Register a vehicle in the fleet
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateVehicleRequestDTO	true	"Vehicle details"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.VehicleResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Unknown station"
//	@Router		/api/admin/vehicles [post]
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())

	var req dto.CreateVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(r.Context(), actor, &domain.Vehicle{
		StationID:       req.StationID,
		Model:           req.Model,
		LicensePlate:    req.LicensePlate,
		BatteryCapacity: req.BatteryCapacity,
		Mileage:         req.Mileage,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(vehicle))
}

// Update godoc
//
//	@Summary	Update a vehicle's condition, mileage or station
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int							true	"Vehicle id"
//	@Param		request	body	dto.UpdateVehicleRequestDTO	true	"Fields to update"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.VehicleResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Unknown vehicle"
//	@Router		/api/admin/vehicles/{id} [patch]
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var req dto.UpdateVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(r.Context(), actor, vehicleID, domain.VehicleCondition(req.Condition), req.Mileage, req.StationID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(vehicle))
}

func toDTO(vehicle *domain.Vehicle) dto.VehicleResponseDTO {
	return dto.VehicleResponseDTO{
		ID:              vehicle.ID,
		StationID:       vehicle.StationID,
		Model:           vehicle.Model,
		LicensePlate:    vehicle.LicensePlate,
		Condition:       string(vehicle.Condition),
		BatteryCapacity: vehicle.BatteryCapacity,
		Mileage:         vehicle.Mileage,
		IsAvailable:     vehicle.IsAvailable,
	}
}

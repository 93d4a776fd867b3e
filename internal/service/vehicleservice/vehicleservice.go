package vehicleservice

import (
	"context"
	"fmt"

	"github.com/evgo-rent/backend/internal/domain"
	"go.uber.org/zap"
)

type VehicleRepo interface {
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	FindByStation(ctx context.Context, stationID int, onlyAvailable bool) ([]domain.Vehicle, error)
	Reserve(ctx context.Context, vehicleID int) (bool, error)
	Release(ctx context.Context, vehicleID int) error
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
}

type StationRepo interface {
	List(ctx context.Context) ([]domain.Station, error)
	FindByID(ctx context.Context, stationID int) (*domain.Station, error)
}

type Service struct {
	vehicleRepo VehicleRepo
	stationRepo StationRepo
}

func New(vehicleRepo VehicleRepo, stationRepo StationRepo) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		stationRepo: stationRepo,
	}
}

// Reserve marks the vehicle unavailable; the first caller wins and
// later callers receive domain.ErrVehicleUnavailable.
func (s *Service) Reserve(ctx context.Context, vehicleID int) error {
	reserved, err := s.vehicleRepo.Reserve(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !reserved {
		return fmt.Errorf("%w: vehicle %d", domain.ErrVehicleUnavailable, vehicleID)
	}
	return nil
}

func (s *Service) Release(ctx context.Context, vehicleID int) error {
	return s.vehicleRepo.Release(ctx, vehicleID)
}

func (s *Service) IsAvailable(ctx context.Context, vehicleID int) (bool, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	if vehicle == nil {
		return false, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, vehicleID)
	}
	return vehicle.IsAvailable, nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleID int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, vehicleID)
	}
	return vehicle, nil
}

func (s *Service) GetStationVehicles(ctx context.Context, stationID int, onlyAvailable bool) ([]domain.Vehicle, error) {
	station, err := s.stationRepo.FindByID(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: station %d", domain.ErrNotFound, stationID)
	}
	return s.vehicleRepo.FindByStation(ctx, stationID, onlyAvailable)
}

func (s *Service) GetStations(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get stations", zap.Error(err))
		return nil, err
	}
	return stations, nil
}

func (s *Service) CreateVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAuthorized
	}
	if vehicle.Model == "" || vehicle.LicensePlate == "" {
		return nil, fmt.Errorf("%w: model and license plate are required", domain.ErrValidation)
	}

	station, err := s.stationRepo.FindByID(ctx, vehicle.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: station %d", domain.ErrNotFound, vehicle.StationID)
	}

	if vehicle.Condition == "" {
		vehicle.Condition = domain.VehicleConditionGood
	}
	vehicle.IsAvailable = true
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		zap.L().Error("can't create vehicle", zap.Error(err))
		return nil, err
	}

	zap.L().Info("vehicle created", zap.Int("vehicleID", vehicle.ID), zap.String("plate", vehicle.LicensePlate))
	return vehicle, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, actor domain.Actor, vehicleID int, condition domain.VehicleCondition, mileage, stationID int) (*domain.Vehicle, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAuthorized
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, vehicleID)
	}

	if condition != "" {
		switch condition {
		case domain.VehicleConditionGood, domain.VehicleConditionDamaged, domain.VehicleConditionInRepair:
			vehicle.Condition = condition
		default:
			return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, condition)
		}
	}
	if mileage > 0 {
		vehicle.Mileage = mileage
	}
	if stationID > 0 {
		station, err := s.stationRepo.FindByID(ctx, stationID)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, fmt.Errorf("%w: station %d", domain.ErrNotFound, stationID)
		}
		vehicle.StationID = stationID
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		zap.L().Error("can't update vehicle", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

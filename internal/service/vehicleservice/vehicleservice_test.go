package vehicleservice

import (
	"context"
	"testing"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockVehicleRepo, *MockStationRepo) {
	ctrl := gomock.NewController(t)
	vehicleRepo := NewMockVehicleRepo(ctrl)
	stationRepo := NewMockStationRepo(ctrl)
	service := New(vehicleRepo, stationRepo)
	defer ctrl.Finish()
	return service, vehicleRepo, stationRepo
}

func TestReserve(t *testing.T) {
	service, vehicleRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "First caller wins",
			prepareMock: func() {
				vehicleRepo.EXPECT().Reserve(gomock.Any(), 5).Return(true, nil)
			},
		},
		{
			name: "Second caller loses",
			prepareMock: func() {
				vehicleRepo.EXPECT().Reserve(gomock.Any(), 5).Return(false, nil)
			},
			expectedError: domain.ErrVehicleUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Reserve(context.Background(), 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetStationVehicles(t *testing.T) {
	service, vehicleRepo, stationRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name: "Unknown station",
			prepareMock: func() {
				stationRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Available vehicles at a station",
			prepareMock: func() {
				stationRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Station{ID: 1}, nil)
				vehicleRepo.EXPECT().FindByStation(gomock.Any(), 1, true).Return([]domain.Vehicle{
					{ID: 5, StationID: 1, IsAvailable: true},
					{ID: 6, StationID: 1, IsAvailable: true},
				}, nil)
			},
			expectedLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			vehicles, err := service.GetStationVehicles(context.Background(), 1, true)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, vehicles, tt.expectedLen)
			}
		})
	}
}

func TestCreateVehicle(t *testing.T) {
	service, vehicleRepo, stationRepo := NewMock(t)

	admin := domain.Actor{UserID: 4, Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		actor         domain.Actor
		vehicle       *domain.Vehicle
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Staff may not create vehicles",
			actor:         domain.Actor{UserID: 3, Role: domain.RoleStaff},
			vehicle:       &domain.Vehicle{StationID: 1, Model: "VF e34", LicensePlate: "51K-123.45"},
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:          "Missing license plate",
			actor:         admin,
			vehicle:       &domain.Vehicle{StationID: 1, Model: "VF e34"},
			expectedError: domain.ErrValidation,
		},
		{
			name:    "Unknown station",
			actor:   admin,
			vehicle: &domain.Vehicle{StationID: 9, Model: "VF e34", LicensePlate: "51K-123.45"},
			prepareMock: func() {
				stationRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:    "New vehicle starts available in good condition",
			actor:   admin,
			vehicle: &domain.Vehicle{StationID: 1, Model: "VF e34", LicensePlate: "51K-123.45"},
			prepareMock: func() {
				stationRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Station{ID: 1}, nil)
				vehicleRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) error {
						vehicle.ID = 5
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

			vehicle, err := service.CreateVehicle(context.Background(), tt.actor, tt.vehicle)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, vehicle.ID)
				assert.True(t, vehicle.IsAvailable)
				assert.Equal(t, domain.VehicleConditionGood, vehicle.Condition)
			}
		})
	}
}

func TestUpdateVehicle(t *testing.T) {
	service, vehicleRepo, stationRepo := NewMock(t)

	admin := domain.Actor{UserID: 4, Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		condition     domain.VehicleCondition
		mileage       int
		stationID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Unknown condition",
			condition: "WRECKED",
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:      "Condition and mileage updated",
			condition: domain.VehicleConditionDamaged,
			mileage:   300,
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5, Condition: domain.VehicleConditionGood, Mileage: 100}, nil)
				vehicleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Relocation to another station",
			stationID: 2,
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Vehicle{ID: 5, StationID: 1}, nil)
				stationRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Station{ID: 2}, nil)
				vehicleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) error {
						assert.Equal(t, 2, vehicle.StationID)
						return nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.UpdateVehicle(context.Background(), admin, 5, tt.condition, tt.mileage, tt.stationID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

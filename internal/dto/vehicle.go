package dto

type CreateVehicleRequestDTO struct {
	StationID       int    `json:"station_id" validate:"required"`
	Model           string `json:"model" validate:"required"`
	LicensePlate    string `json:"license_plate" validate:"required"`
	BatteryCapacity int    `json:"battery_capacity"`
	Mileage         int    `json:"mileage"`
}

type UpdateVehicleRequestDTO struct {
	Condition string `json:"condition,omitempty"`
	Mileage   int    `json:"mileage,omitempty"`
	StationID int    `json:"station_id,omitempty"`
}

type VehicleResponseDTO struct {
	ID              int    `json:"id"`
	StationID       int    `json:"station_id"`
	Model           string `json:"model"`
	LicensePlate    string `json:"license_plate"`
	Condition       string `json:"condition"`
	BatteryCapacity int    `json:"battery_capacity"`
	Mileage         int    `json:"mileage"`
	IsAvailable     bool   `json:"is_available"`
}

type StationResponseDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

package dto

type CreateRentalRequestDTO struct {
	VehicleID       int    `json:"vehicle_id" validate:"required"`
	PickupStationID int    `json:"pickup_station_id" validate:"required"`
	ReturnStationID int    `json:"return_station_id" validate:"required"`
	StartTime       string `json:"start_time" validate:"required"`
	EndTime         string `json:"end_time" validate:"required"`
}

type CancelRentalRequestDTO struct {
	Reason string `json:"reason"`
}

type HandoverRequestDTO struct {
	ConditionPhotoRef string `json:"condition_photo_ref" validate:"required"`
	ActualStart       string `json:"actual_start"`
}

type ReturnRequestDTO struct {
	ConditionPhotoRef string `json:"condition_photo_ref" validate:"required"`
	ActualEnd         string `json:"actual_end"`
	FinalMileage      int    `json:"final_mileage"`
}

type AddChargeRequestDTO struct {
	FeeTypeID   int    `json:"fee_type_id" validate:"required"`
	Description string `json:"description"`
}

type RentalResponseDTO struct {
	ID               int    `json:"id"`
	VehicleID        int    `json:"vehicle_id"`
	PickupStationID  int    `json:"pickup_station_id"`
	ReturnStationID  int    `json:"return_station_id"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	ActualStart      string `json:"actual_start,omitempty"`
	ActualEnd        string `json:"actual_end,omitempty"`
	Status           string `json:"status"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	DepositCents     int64  `json:"deposit_cents"`
}

type FeeResponseDTO struct {
	ID          int    `json:"id"`
	FeeTypeID   int    `json:"fee_type_id"`
	Description string `json:"description,omitempty"`
	AmountCents int64  `json:"amount_cents"`
}

type FeesResponseDTO struct {
	Fees             []FeeResponseDTO `json:"fees"`
	OutstandingCents int64            `json:"outstanding_cents"`
}

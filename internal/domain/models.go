package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	StationID    int       `db:"station_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Renter struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	IsVerified   bool      `db:"is_verified"`
	Address      string    `db:"address"`
	RegisteredAt time.Time `db:"registered_at"`
}

type Station struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
}

type Vehicle struct {
	ID              int              `db:"id"`
	StationID       int              `db:"station_id"`
	Model           string           `db:"model"`
	LicensePlate    string           `db:"license_plate"`
	Condition       VehicleCondition `db:"condition"`
	BatteryCapacity int              `db:"battery_capacity"`
	Mileage         int              `db:"mileage"`
	IsAvailable     bool             `db:"is_available"`
}

type Document struct {
	ID            string         `db:"id"`
	RenterID      int            `db:"renter_id"`
	Kind          DocumentKind   `db:"kind"`
	Number        string         `db:"number"`
	FrontImageRef string         `db:"front_image_ref"`
	BackImageRef  string         `db:"back_image_ref"`
	Status        DocumentStatus `db:"status"`
	ReviewerID    int            `db:"reviewer_id"`
	ReviewedAt    *time.Time     `db:"reviewed_at"`
	RejectReason  string         `db:"reject_reason"`
	SubmittedAt   time.Time      `db:"submitted_at"`
}

type RentalOrder struct {
	ID               int         `db:"id"`
	RenterID         int         `db:"renter_id"`
	VehicleID        int         `db:"vehicle_id"`
	PickupStationID  int         `db:"pickup_station_id"`
	ReturnStationID  int         `db:"return_station_id"`
	StartTime        time.Time   `db:"start_time"`
	EndTime          time.Time   `db:"end_time"`
	ActualStart      *time.Time  `db:"actual_start"`
	ActualEnd        *time.Time  `db:"actual_end"`
	Status           OrderStatus `db:"status"`
	TotalAmountCents int64       `db:"total_amount_cents"`
	DepositCents     int64       `db:"deposit_cents"`
	PickupPhotoRef   string      `db:"pickup_photo_ref"`
	ReturnPhotoRef   string      `db:"return_photo_ref"`
	CancelReason     string      `db:"cancel_reason"`
	CreatedAt        time.Time   `db:"created_at"`
}

type Payment struct {
	ID          string         `db:"id"`
	OrderID     int            `db:"order_id"`
	AmountCents int64          `db:"amount_cents"`
	Method      PaymentMethod  `db:"method"`
	Purpose     PaymentPurpose `db:"purpose"`
	ExternalRef string         `db:"external_ref"`
	Status      PaymentStatus  `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

type FeeType struct {
	ID                 int    `db:"id"`
	Name               string `db:"name"`
	DefaultAmountCents int64  `db:"default_amount_cents"`
}

type ExtraFee struct {
	ID          int       `db:"id"`
	OrderID     int       `db:"order_id"`
	FeeTypeID   int       `db:"fee_type_id"`
	Description string    `db:"description"`
	AmountCents int64     `db:"amount_cents"`
	CreatedAt   time.Time `db:"created_at"`
}

// Actor is the already-authenticated caller of a core operation.
// RenterID and StationID are zero unless the role carries them.
type Actor struct {
	UserID    int
	RenterID  int
	StationID int
	Role      Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff || a.Role == RoleAdmin
}

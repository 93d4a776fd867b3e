package domain

type Role string

const (
	RoleRenter Role = "RENTER"
	RoleStaff  Role = "STAFF"
	RoleAdmin  Role = "ADMIN"
)

type OrderStatus string

const (
	// OrderStatusPending заказ создан, ожидает депозит;
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusBooked депозит оплачен, автомобиль зарезервирован;
	OrderStatusBooked OrderStatus = "BOOKED"
	// OrderStatusInUse автомобиль выдан арендатору;
	OrderStatusInUse OrderStatus = "IN_USE"
	// OrderStatusCompleted автомобиль возвращён, расчёт завершён;
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled заказ отменён до выдачи;
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusBooked, OrderStatusCancelled},
	OrderStatusBooked:    {OrderStatusInUse, OrderStatusCancelled},
	OrderStatusInUse:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransitionTo reports whether the order status machine permits
// moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// OccupiesVehicle reports whether an order in this status keeps its
// vehicle unavailable.
func (s OrderStatus) OccupiesVehicle() bool {
	return s == OrderStatusPending || s == OrderStatusBooked || s == OrderStatusInUse
}

type VehicleCondition string

const (
	VehicleConditionGood     VehicleCondition = "GOOD"
	VehicleConditionDamaged  VehicleCondition = "DAMAGED"
	VehicleConditionInRepair VehicleCondition = "IN_REPAIR"
)

type DocumentKind string

const (
	DocumentKindIDCard        DocumentKind = "ID_CARD"
	DocumentKindDriverLicense DocumentKind = "DRIVER_LICENSE"
)

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "CASH"
	PaymentMethodEWallet PaymentMethod = "E_WALLET"
)

type PaymentPurpose string

const (
	PaymentPurposeDeposit    PaymentPurpose = "DEPOSIT"
	PaymentPurposeSettlement PaymentPurpose = "SETTLEMENT"
)

type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

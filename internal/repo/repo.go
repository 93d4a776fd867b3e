package repo

import (
	"github.com/evgo-rent/backend/internal/pg"
	documentrepo "github.com/evgo-rent/backend/internal/repo/document-repo"
	feerepo "github.com/evgo-rent/backend/internal/repo/fee-repo"
	orderrepo "github.com/evgo-rent/backend/internal/repo/order-repo"
	paymentrepo "github.com/evgo-rent/backend/internal/repo/payment-repo"
	renterrepo "github.com/evgo-rent/backend/internal/repo/renter-repo"
	stationrepo "github.com/evgo-rent/backend/internal/repo/station-repo"
	userrepo "github.com/evgo-rent/backend/internal/repo/user-repo"
	vehiclerepo "github.com/evgo-rent/backend/internal/repo/vehicle-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	RenterRepo   *renterrepo.Repository
	StationRepo  *stationrepo.Repository
	VehicleRepo  *vehiclerepo.Repository
	DocumentRepo *documentrepo.Repository
	OrderRepo    *orderrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	FeeRepo      *feerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		RenterRepo:   renterrepo.New(conn),
		StationRepo:  stationrepo.New(conn),
		VehicleRepo:  vehiclerepo.New(conn, txManager),
		DocumentRepo: documentrepo.New(conn, txManager),
		OrderRepo:    orderrepo.New(conn, txManager),
		PaymentRepo:  paymentrepo.New(conn, txManager),
		FeeRepo:      feerepo.New(conn, txManager),
	}
}

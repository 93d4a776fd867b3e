package service

import (
	"context"

	"github.com/evgo-rent/backend/internal/config"
	"github.com/evgo-rent/backend/internal/handlers/auth"
	"github.com/evgo-rent/backend/internal/handlers/documents"
	"github.com/evgo-rent/backend/internal/handlers/payments"
	"github.com/evgo-rent/backend/internal/handlers/rentals"
	"github.com/evgo-rent/backend/internal/handlers/vehicles"

	pkgauth "github.com/evgo-rent/backend/pkg/auth"

	"github.com/evgo-rent/backend/internal/pg"
	"github.com/evgo-rent/backend/internal/repo"
	authservice "github.com/evgo-rent/backend/internal/service/authservice"
	documentservice "github.com/evgo-rent/backend/internal/service/documentservice"
	feeservice "github.com/evgo-rent/backend/internal/service/feeservice"
	paymentservice "github.com/evgo-rent/backend/internal/service/paymentservice"
	rentalservice "github.com/evgo-rent/backend/internal/service/rentalservice"
	vehicleservice "github.com/evgo-rent/backend/internal/service/vehicleservice"
)

// OrderExpirer is the sweeper's entry into the order state machine: a
// cancel that only applies while the order is still PENDING.
type OrderExpirer interface {
	ExpirePending(ctx context.Context, orderID int, reason string) error
}

type Services struct {
	AuthService     auth.Service
	DocumentService documents.Service
	RentalService   rentals.Service
	FeeService      rentals.FeeService
	VehicleService  vehicles.Service
	PaymentService  payments.Service
	OrderExpirer    OrderExpirer

	JWTService pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	vehicleService := vehicleservice.New(repo.VehicleRepo, repo.StationRepo)
	documentService := documentservice.New(repo.DocumentRepo, repo.RenterRepo, txManager)
	rentalService := rentalservice.New(cfg, repo.OrderRepo, repo.VehicleRepo, repo.RenterRepo, repo.PaymentRepo, repo.FeeRepo, txManager)
	paymentService := paymentservice.New(cfg, repo.PaymentRepo, repo.OrderRepo, rentalService)
	feeService := feeservice.New(repo.FeeRepo, repo.OrderRepo, repo.PaymentRepo)
	authService := authservice.New(repo.UserRepo, repo.RenterRepo, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:     authService,
		DocumentService: documentService,
		RentalService:   rentalService,
		FeeService:      feeService,
		VehicleService:  vehicleService,
		PaymentService:  paymentService,
		OrderExpirer:    rentalService,
		JWTService:      jwtService,
	}
}

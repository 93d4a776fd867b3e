package handlers

import (
	"net/http"

	_ "github.com/evgo-rent/backend/docs"
	"github.com/evgo-rent/backend/internal/domain"
	authhandlers "github.com/evgo-rent/backend/internal/handlers/auth"
	documenthandlers "github.com/evgo-rent/backend/internal/handlers/documents"
	paymenthandlers "github.com/evgo-rent/backend/internal/handlers/payments"
	rentalhandlers "github.com/evgo-rent/backend/internal/handlers/rentals"
	vehiclehandlers "github.com/evgo-rent/backend/internal/handlers/vehicles"
	"github.com/evgo-rent/backend/internal/service"
	"github.com/evgo-rent/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DocumentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Handover(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	GetFees(w http.ResponseWriter, r *http.Request)
	AddCharge(w http.ResponseWriter, r *http.Request)
}

type VehicleHandler interface {
	GetStations(w http.ResponseWriter, r *http.Request)
	GetStationVehicles(w http.ResponseWriter, r *http.Request)
	GetVehicle(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Notify(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
	GetByOrder(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	DocumentHandler DocumentHandler
	RentalHandler   RentalHandler
	VehicleHandler  VehicleHandler
	PaymentHandler  PaymentHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		DocumentHandler: documenthandlers.New(s.DocumentService),
		RentalHandler:   rentalhandlers.New(s.RentalService, s.FeeService),
		VehicleHandler:  vehiclehandlers.New(s.VehicleService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		jwtService:      s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/stations", h.VehicleHandler.GetStations)
		r.Get("/stations/{id}/vehicles", h.VehicleHandler.GetStationVehicles)
		r.Get("/vehicles/{id}", h.VehicleHandler.GetVehicle)

		// Provider callbacks authenticate with an HMAC signature, not a JWT.
		r.Get("/payments/ipn/{provider}", h.PaymentHandler.Notify)
		r.Post("/payments/ipn/{provider}", h.PaymentHandler.Notify)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.DocumentHandler.Submit)
				r.Get("/", h.DocumentHandler.GetOwn)
			})
			r.Route("/rentals", func(r chi.Router) {
				r.Post("/", h.RentalHandler.Create)
				r.Get("/", h.RentalHandler.GetOwn)
				r.Post("/{id}/cancel", h.RentalHandler.Cancel)
				r.Get("/{id}/fees", h.RentalHandler.GetFees)
			})
			r.Get("/payments/checkout/{provider}/{id}", h.PaymentHandler.Checkout)

			r.Route("/staff", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleStaff, domain.RoleAdmin))
				r.Get("/documents/pending", h.DocumentHandler.GetPending)
				r.Post("/documents/{id}/review", h.DocumentHandler.Review)
				r.Post("/rentals/{id}/handover", h.RentalHandler.Handover)
				r.Post("/rentals/{id}/return", h.RentalHandler.Return)
				r.Post("/rentals/{id}/fees", h.RentalHandler.AddCharge)
				r.Get("/rentals/{id}/payments", h.PaymentHandler.GetByOrder)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Post("/vehicles", h.VehicleHandler.Create)
				r.Patch("/vehicles/{id}", h.VehicleHandler.Update)
			})
		})
	})

	return r
}

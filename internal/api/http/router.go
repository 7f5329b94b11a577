package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"timeless-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	User    *UserHandler
	Address *AddressHandler
	Brand   *BrandHandler
	Watch   *WatchHandler
	Rental  *RentalHandler
	Payment *PaymentHandler
}

// NewRouter builds the /api route table. Three tiers: public, any
// authenticated user, and admin. Ownership checks beyond the role tier
// live in the services.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	public := api.NewRoute().Subrouter()
	public.HandleFunc("/users/register", h.User.Register).Methods(http.MethodPost)
	public.HandleFunc("/users/login", h.User.Login).Methods(http.MethodPost)
	public.HandleFunc("/watches", h.Watch.List).Methods(http.MethodGet)
	public.HandleFunc("/watches/{id:[0-9]+}", h.Watch.Get).Methods(http.MethodGet)
	public.HandleFunc("/brands", h.Brand.List).Methods(http.MethodGet)
	public.HandleFunc("/brands/{id:[0-9]+}", h.Brand.Get).Methods(http.MethodGet)

	// Routes for any authenticated user
	protected := api.NewRoute().Subrouter()
	protected.Use(Authenticate(tokens))
	protected.HandleFunc("/users/profile", h.User.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/users/profile", h.User.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/addresses", h.Address.Create).Methods(http.MethodPost)
	protected.HandleFunc("/addresses/{id:[0-9]+}", h.Address.Get).Methods(http.MethodGet)
	protected.HandleFunc("/addresses/{id:[0-9]+}", h.Address.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/user", h.Rental.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Get).Methods(http.MethodGet)
	protected.HandleFunc("/payments", h.Payment.Create).Methods(http.MethodPost)
	protected.HandleFunc("/payments/user/me", h.Payment.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id:[0-9]+}", h.Payment.Get).Methods(http.MethodGet)

	// Admin-only routes
	admin := api.NewRoute().Subrouter()
	admin.Use(Authenticate(tokens), RequireAdmin)
	admin.HandleFunc("/rentals", h.Rental.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/payments", h.Payment.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id:[0-9]+}", h.Payment.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/payments/{id:[0-9]+}", h.Payment.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/watches", h.Watch.Create).Methods(http.MethodPost)
	admin.HandleFunc("/watches/{id:[0-9]+}", h.Watch.Update).Methods(http.MethodPut)
	admin.HandleFunc("/watches/{id:[0-9]+}", h.Watch.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/brands", h.Brand.Create).Methods(http.MethodPost)
	admin.HandleFunc("/brands/{id:[0-9]+}", h.Brand.Update).Methods(http.MethodPut)
	admin.HandleFunc("/brands/{id:[0-9]+}", h.Brand.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/addresses", h.Address.List).Methods(http.MethodGet)
	admin.HandleFunc("/addresses/{id:[0-9]+}", h.Address.Delete).Methods(http.MethodDelete)

	return r
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/givefund-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter. Admin may be nil
// when reconciliation is disabled.
type Handlers struct {
	Health   *HealthHandler
	Account  *AccountHandler
	Cause    *CauseHandler
	Donation *DonationHandler
	Admin    *AdminHandler
	AuditLog *AuditLogHandler
}

// NewRouter mounts every endpoint. chain wraps all routes; session must
// resolve the caller before the access gates run.
func NewRouter(h Handlers, chain middleware.Middleware, session middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(chain, session)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/account", func(r chi.Router) {
		r.Post("/", h.Account.Register)
		r.Get("/", h.Account.List)
		r.Get("/verify/{accountID}", h.Account.Verify)
		r.Post("/login", h.Account.Login)
		r.Post("/password/forgot", h.Account.ForgotPassword)
		r.Post("/password/reset", h.Account.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAccount)
			r.Post("/logout", h.Account.Logout)
			r.Get("/session", h.Account.Session)
			r.Put("/{accountID}", h.Account.UpdateProfile)
		})
		r.With(middleware.RequireAdmin).Delete("/", h.Account.Deactivate)
		r.With(middleware.RequireMaster).Put("/role", h.Account.ChangeRole)
	})

	r.Route("/cause", func(r chi.Router) {
		r.Get("/", h.Cause.List)
		r.Get("/{causeID}", h.Cause.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.Cause.Create)
			r.Put("/", h.Cause.Update)
			r.Delete("/", h.Cause.Delete)
		})
	})

	r.Route("/donation", func(r chi.Router) {
		r.Post("/payment", h.Donation.InitiatePayment)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAccount)
			r.Get("/", h.Donation.List)
			r.Get("/{donationID}", h.Donation.Get)
			r.Post("/payment/execute", h.Donation.ExecutePayment)
		})
	})

	r.With(middleware.RequireAdmin).Get("/admin/audit-log", h.AuditLog.List)

	if h.Admin != nil {
		r.Route("/admin/reconcile", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/audit", h.Admin.Audit)
			r.Post("/drain", h.Admin.Drain)
		})
	}

	return r
}

package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wheels-hub/wheels-hub/internal/auth"
	"github.com/wheels-hub/wheels-hub/internal/expenses"
	"github.com/wheels-hub/wheels-hub/internal/inventory"
	"github.com/wheels-hub/wheels-hub/internal/procurement"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/returns"
	"github.com/wheels-hub/wheels-hub/internal/sales"
	"github.com/wheels-hub/wheels-hub/internal/shared"
	"github.com/wheels-hub/wheels-hub/internal/suppliers"
	"github.com/wheels-hub/wheels-hub/internal/twofactor"
	"github.com/wheels-hub/wheels-hub/internal/users"
	"github.com/wheels-hub/wheels-hub/jobs"
	"github.com/wheels-hub/wheels-hub/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler         *auth.Handler
	TwoFactorHandler    *twofactor.Handler
	CapabilitiesHandler *rbac.Handler
	InventoryHandler    *inventory.Handler
	ProcurementHandler  *procurement.Handler
	SuppliersHandler    *suppliers.Handler
	ExpensesHandler     *expenses.Handler
	ReturnsHandler      *returns.Handler
	SalesHandler        *sales.Handler
	UsersHandler        *users.Handler
	JobHandler          *jobs.Handler
}

// NewRouter constructs the chi.Router with hub defaults. Everything under
// /api speaks JSON; the embedded shell handles all other paths client side.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/2fa", func(r chi.Router) {
			r.Use(requireSession)
			params.TwoFactorHandler.MountRoutes(r)
		})
		r.Route("/capabilities", params.CapabilitiesHandler.MountRoutes)
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/reports", func(r chi.Router) {
			r.Route("/purchase-orders", params.ProcurementHandler.MountRoutes)
			r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
			r.Route("/expenses", params.ExpensesHandler.MountRoutes)
			r.Route("/returns", params.ReturnsHandler.MountRoutes)
			params.SalesHandler.MountRoutes(r)
		})
		r.Route("/users", params.UsersHandler.MountRoutes)
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
		// Any other GET serves the shell; client routing owns the path.
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			if req.Method != http.MethodGet {
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			http.ServeFileFS(w, req, staticFS, "index.html")
		})
	}

	return r
}

func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

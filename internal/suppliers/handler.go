package suppliers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Handler serves the supplier performance report.
type Handler struct {
	guard rbac.Middleware
}

// NewHandler constructs a Handler.
func NewHandler(guard rbac.Middleware) *Handler {
	return &Handler{guard: guard}
}

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireAny(rbac.CapSuppliersView, rbac.CapReportsView))
		r.Get("/", h.handleReport)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	records := reportkit.Run(SampleRecords(), Schema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"suppliers": records,
		"summary":   Summarize(records),
	})
}

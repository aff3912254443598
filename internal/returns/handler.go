package returns

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Handler serves the returned-items report.
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
		r.Use(h.guard.RequireAny(rbac.CapSalesView, rbac.CapReportsView))
		r.Get("/", h.handleReport)
		r.Get("/reasons", h.handleReasons)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	rows := reportkit.Run(SampleReturns(), Schema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"returns": rows,
		"summary": Summarize(rows),
	})
}

func (h *Handler) handleReasons(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"reasons": Reasons})
}

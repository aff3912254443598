package sales

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Handler serves the customer and invoice reports.
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
		r.Get("/customers", h.handleCustomers)
		r.Get("/invoices", h.handleInvoices)
	})
}

func (h *Handler) handleCustomers(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	rows := reportkit.Run(SampleCustomers(), CustomerSchema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"customers": CustomerViews(rows),
		"summary":   SummarizeCustomers(rows),
	})
}

func (h *Handler) handleInvoices(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	rows := reportkit.Run(SampleInvoices(), InvoiceSchema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"invoices": rows,
		"summary":  SummarizeInvoices(rows),
	})
}

package procurement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Handler serves the purchase-order report endpoints.
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
		r.Use(h.guard.RequireAny(rbac.CapPurchaseView, rbac.CapReportsView))
		r.Get("/", h.handleReport)
		r.Get("/pending", h.handlePending)
		r.Get("/export.csv", h.handleExport)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	orders := reportkit.Run(SampleOrders(), Schema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"orders":  orders,
		"summary": Summarize(orders),
	})
}

// handlePending narrows the report to open orders before applying criteria.
func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	var pending []PurchaseOrder
	for _, o := range SampleOrders() {
		if open(o) {
			pending = append(pending, o)
		}
	}
	criteria := reportkit.ParseCriteria(r.URL.Query())
	orders := reportkit.Run(pending, Schema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"orders":  orders,
		"summary": Summarize(orders),
	})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	orders := reportkit.Run(SampleOrders(), Schema(), criteria)
	_ = reportkit.ServeCSV(w, "purchase-orders.csv", csvColumns(), orders)
}

func csvColumns() []reportkit.Column[PurchaseOrder] {
	return []reportkit.Column[PurchaseOrder]{
		{Header: "ID", Value: func(o PurchaseOrder) string { return o.ID }},
		{Header: "Supplier", Value: func(o PurchaseOrder) string { return o.Supplier }},
		{Header: "Date", Value: func(o PurchaseOrder) string { return o.Date.Format("2006-01-02") }},
		{Header: "Items", Value: func(o PurchaseOrder) string { return reportkit.FormatCount(o.ItemCount()) }},
		{Header: "Total", Value: func(o PurchaseOrder) string { return reportkit.FormatAmount(o.Total) }},
		{Header: "Status", Value: func(o PurchaseOrder) string { return o.Status }},
		{Header: "Payment Status", Value: func(o PurchaseOrder) string { return o.PaymentStatus }},
	}
}

package expenses

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Handler serves the expense report endpoints.
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
		r.Use(h.guard.RequireAny(rbac.CapExpensesView, rbac.CapReportsView))
		r.Get("/", h.handleReport)
		r.Get("/categories", h.handleCategories)
		r.Get("/export.csv", h.handleExport)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	rows := reportkit.Run(SampleExpenses(), Schema(), criteria)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"expenses": rows,
		"summary":  Summarize(rows),
	})
}

func (h *Handler) handleCategories(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"categories": Categories})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	rows := reportkit.Run(SampleExpenses(), Schema(), criteria)
	_ = reportkit.ServeCSV(w, "expense-report.csv", csvColumns(), rows)
}

func csvColumns() []reportkit.Column[Expense] {
	return []reportkit.Column[Expense]{
		{Header: "ID", Value: func(e Expense) string { return e.ID }},
		{Header: "Date", Value: func(e Expense) string { return e.Date.Format("2006-01-02") }},
		{Header: "Vendor", Value: func(e Expense) string { return e.Vendor }},
		{Header: "Category", Value: func(e Expense) string { return e.Category }},
		{Header: "Amount", Value: func(e Expense) string { return reportkit.FormatAmount(e.Amount) }},
		{Header: "Payment Status", Value: func(e Expense) string { return e.PaymentStatus }},
		{Header: "Payment Method", Value: func(e Expense) string { return e.PaymentMethod }},
	}
}

package sales

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// CustomerSchema maps customers onto the report pipeline. The category slot
// carries the customer type so ?category=Retail narrows the book.
func CustomerSchema() reportkit.Schema[Customer] {
	return reportkit.Schema[Customer]{
		SearchFields: []func(Customer) string{
			func(c Customer) string { return c.Name },
			func(c Customer) string { return c.Contact },
			func(c Customer) string { return c.Location },
		},
		Category: func(c Customer) string { return c.Type },
		Status:   func(c Customer) string { return c.Status },
		Date:     func(c Customer) time.Time { return c.LastOrder },
		SortKeys: map[string]reportkit.KeyFunc[Customer]{
			"name":       func(c Customer) reportkit.Key { return reportkit.StrKey(c.Name) },
			"orders":     func(c Customer) reportkit.Key { return reportkit.IntKey(c.TotalOrders) },
			"spent":      func(c Customer) reportkit.Key { return reportkit.NumKey(c.TotalSpent) },
			"last_order": func(c Customer) reportkit.Key { return reportkit.TimeKey(c.LastOrder) },
		},
	}
}

// InvoiceSchema maps invoices onto the report pipeline.
func InvoiceSchema() reportkit.Schema[Invoice] {
	return reportkit.Schema[Invoice]{
		SearchFields: []func(Invoice) string{
			func(i Invoice) string { return i.ID },
			func(i Invoice) string { return i.Customer.Name },
		},
		Status: func(i Invoice) string { return i.Status },
		Date:   func(i Invoice) time.Time { return i.Date },
		SortKeys: map[string]reportkit.KeyFunc[Invoice]{
			"id":       func(i Invoice) reportkit.Key { return reportkit.StrKey(i.ID) },
			"date":     func(i Invoice) reportkit.Key { return reportkit.TimeKey(i.Date) },
			"due_date": func(i Invoice) reportkit.Key { return reportkit.TimeKey(i.DueDate) },
			"total":    func(i Invoice) reportkit.Key { return reportkit.NumKey(i.Total) },
			"customer": func(i Invoice) reportkit.Key { return reportkit.StrKey(i.Customer.Name) },
		},
	}
}

// customerView pairs the stored aggregates with the figures derived from the
// order history on file. The two disagree in the sample data; displays trust
// the stored numbers while surfacing the derived ones.
type customerView struct {
	Customer
	DerivedOrders int     `json:"derived_orders"`
	DerivedSpent  float64 `json:"derived_spent"`
}

// CustomerViews wraps customers for reporting.
func CustomerViews(rows []Customer) []customerView {
	views := make([]customerView, 0, len(rows))
	for _, c := range rows {
		views = append(views, customerView{
			Customer:      c,
			DerivedOrders: c.DerivedOrders(),
			DerivedSpent:  c.DerivedSpent(),
		})
	}
	return views
}

// CustomerSummary aggregates a customer report.
type CustomerSummary struct {
	TotalCustomers int                `json:"total_customers"`
	ActiveCount    int                `json:"active_count"`
	StoredSpent    float64            `json:"stored_spent"`
	DerivedSpent   float64            `json:"derived_spent"`
	ByType         []reportkit.Bucket `json:"by_type"`
}

// SummarizeCustomers computes the customer summary over the given rows.
func SummarizeCustomers(rows []Customer) CustomerSummary {
	return CustomerSummary{
		TotalCustomers: len(rows),
		ActiveCount:    reportkit.Count(rows, func(c Customer) bool { return c.Status == StatusActive }),
		StoredSpent:    reportkit.Sum(rows, func(c Customer) float64 { return c.TotalSpent }),
		DerivedSpent:   reportkit.Sum(rows, func(c Customer) float64 { return c.DerivedSpent() }),
		ByType: reportkit.Buckets(rows,
			func(c Customer) string { return c.Type },
			func(c Customer) float64 { return c.TotalSpent },
		),
	}
}

// InvoiceSummary aggregates an invoice report.
type InvoiceSummary struct {
	TotalInvoices  int                `json:"total_invoices"`
	TotalBilled    float64            `json:"total_billed"`
	OutstandingDue float64            `json:"outstanding_due"`
	ByStatus       []reportkit.Bucket `json:"by_status"`
	AverageInvoice float64            `json:"average_invoice"`
}

// SummarizeInvoices computes the invoice summary over the given rows.
func SummarizeInvoices(rows []Invoice) InvoiceSummary {
	total := func(i Invoice) float64 { return i.Total }
	return InvoiceSummary{
		TotalInvoices: len(rows),
		TotalBilled:   reportkit.Sum(rows, total),
		OutstandingDue: reportkit.Sum(rows, func(i Invoice) float64 {
			if i.Status == InvoicePending || i.Status == InvoiceOverdue {
				return i.Total
			}
			return 0
		}),
		ByStatus:       reportkit.Buckets(rows, func(i Invoice) string { return i.Status }, total),
		AverageInvoice: reportkit.Average(rows, total),
	}
}

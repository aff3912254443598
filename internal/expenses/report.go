package expenses

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Schema maps expenses onto the report pipeline.
func Schema() reportkit.Schema[Expense] {
	return reportkit.Schema[Expense]{
		SearchFields: []func(Expense) string{
			func(e Expense) string { return e.ID },
			func(e Expense) string { return e.Vendor },
			func(e Expense) string { return e.Notes },
		},
		Category: func(e Expense) string { return e.Category },
		Status:   func(e Expense) string { return e.PaymentStatus },
		Date:     func(e Expense) time.Time { return e.Date },
		SortKeys: map[string]reportkit.KeyFunc[Expense]{
			"id":     func(e Expense) reportkit.Key { return reportkit.StrKey(e.ID) },
			"date":   func(e Expense) reportkit.Key { return reportkit.TimeKey(e.Date) },
			"vendor": func(e Expense) reportkit.Key { return reportkit.StrKey(e.Vendor) },
			"amount": func(e Expense) reportkit.Key { return reportkit.NumKey(e.Amount) },
		},
	}
}

// Summary aggregates an expense report.
type Summary struct {
	TotalExpenses int                `json:"total_expenses"`
	TotalAmount   float64            `json:"total_amount"`
	PendingAmount float64            `json:"pending_amount"`
	ByCategory    []reportkit.Bucket `json:"by_category"`
	AverageAmount float64            `json:"average_amount"`
}

// Summarize computes the expense summary over the given rows.
func Summarize(rows []Expense) Summary {
	amount := func(e Expense) float64 { return e.Amount }
	return Summary{
		TotalExpenses: len(rows),
		TotalAmount:   reportkit.Sum(rows, amount),
		PendingAmount: reportkit.Sum(rows, func(e Expense) float64 {
			if e.PaymentStatus == PaymentPending {
				return e.Amount
			}
			return 0
		}),
		ByCategory:    reportkit.Buckets(rows, func(e Expense) string { return e.Category }, amount),
		AverageAmount: reportkit.Average(rows, amount),
	}
}

package procurement

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Schema maps purchase orders onto the report pipeline.
func Schema() reportkit.Schema[PurchaseOrder] {
	return reportkit.Schema[PurchaseOrder]{
		SearchFields: []func(PurchaseOrder) string{
			func(o PurchaseOrder) string { return o.ID },
			func(o PurchaseOrder) string { return o.Supplier },
		},
		Category: func(o PurchaseOrder) string { return o.Category },
		Status:   func(o PurchaseOrder) string { return o.Status },
		Supplier: func(o PurchaseOrder) string { return o.Supplier },
		Date:     func(o PurchaseOrder) time.Time { return o.Date },
		SortKeys: map[string]reportkit.KeyFunc[PurchaseOrder]{
			"id":       func(o PurchaseOrder) reportkit.Key { return reportkit.StrKey(o.ID) },
			"supplier": func(o PurchaseOrder) reportkit.Key { return reportkit.StrKey(o.Supplier) },
			"date":     func(o PurchaseOrder) reportkit.Key { return reportkit.TimeKey(o.Date) },
			"total":    func(o PurchaseOrder) reportkit.Key { return reportkit.NumKey(o.Total) },
			"status":   func(o PurchaseOrder) reportkit.Key { return reportkit.StrKey(o.Status) },
			"days_late": func(o PurchaseOrder) reportkit.Key {
				return reportkit.IntKey(o.DaysLate)
			},
		},
	}
}

// Summary aggregates a purchase-order report.
type Summary struct {
	TotalOrders  int                `json:"total_orders"`
	TotalValue   float64            `json:"total_value"`
	PendingValue float64            `json:"pending_value"`
	ByStatus     []reportkit.Bucket `json:"by_status"`
	ByCategory   []reportkit.Bucket `json:"by_category"`
	AverageOrder float64            `json:"average_order"`
}

func open(o PurchaseOrder) bool {
	switch o.Status {
	case StatusPending, StatusOverdue, StatusPartial:
		return true
	}
	return false
}

// Summarize computes the summary cards over the given rows. The rows are
// whatever the current criteria selected; an empty report yields zeroes.
func Summarize(orders []PurchaseOrder) Summary {
	total := func(o PurchaseOrder) float64 { return o.Total }
	return Summary{
		TotalOrders: len(orders),
		TotalValue:  reportkit.Sum(orders, total),
		PendingValue: reportkit.Sum(orders, func(o PurchaseOrder) float64 {
			if open(o) {
				return o.Total
			}
			return 0
		}),
		ByStatus:     reportkit.Buckets(orders, func(o PurchaseOrder) string { return o.Status }, total),
		ByCategory:   reportkit.Buckets(orders, func(o PurchaseOrder) string { return o.Category }, total),
		AverageOrder: reportkit.Average(orders, total),
	}
}

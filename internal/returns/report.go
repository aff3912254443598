package returns

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Schema maps returns onto the report pipeline. The category slot carries the
// return reason.
func Schema() reportkit.Schema[ReturnedItem] {
	return reportkit.Schema[ReturnedItem]{
		SearchFields: []func(ReturnedItem) string{
			func(r ReturnedItem) string { return r.ID },
			func(r ReturnedItem) string { return r.OrderRef },
			func(r ReturnedItem) string { return r.Customer },
			func(r ReturnedItem) string { return r.Item },
		},
		Category: func(r ReturnedItem) string { return r.Reason },
		Status:   func(r ReturnedItem) string { return r.Status },
		Date:     func(r ReturnedItem) time.Time { return r.Date },
		SortKeys: map[string]reportkit.KeyFunc[ReturnedItem]{
			"id":       func(r ReturnedItem) reportkit.Key { return reportkit.StrKey(r.ID) },
			"date":     func(r ReturnedItem) reportkit.Key { return reportkit.TimeKey(r.Date) },
			"customer": func(r ReturnedItem) reportkit.Key { return reportkit.StrKey(r.Customer) },
			"value":    func(r ReturnedItem) reportkit.Key { return reportkit.NumKey(r.TotalValue) },
			"quantity": func(r ReturnedItem) reportkit.Key { return reportkit.IntKey(r.Quantity) },
		},
	}
}

// Summary aggregates a returns report.
type Summary struct {
	TotalReturns int                `json:"total_returns"`
	TotalValue   float64            `json:"total_value"`
	PendingCount int                `json:"pending_count"`
	ByReason     []reportkit.Bucket `json:"by_reason"`
	ByAction     []reportkit.Bucket `json:"by_action"`
}

// Summarize computes the returns summary over the given rows.
func Summarize(rows []ReturnedItem) Summary {
	value := func(r ReturnedItem) float64 { return r.TotalValue }
	return Summary{
		TotalReturns: len(rows),
		TotalValue:   reportkit.Sum(rows, value),
		PendingCount: reportkit.Count(rows, func(r ReturnedItem) bool { return r.Status == StatusPending }),
		ByReason:     reportkit.Buckets(rows, func(r ReturnedItem) string { return r.Reason }, value),
		ByAction:     reportkit.Buckets(rows, func(r ReturnedItem) string { return r.Action }, value),
	}
}

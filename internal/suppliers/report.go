package suppliers

import (
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Schema maps supplier scorecards onto the report pipeline. The category slot
// carries the price trend so ?category=up narrows to rising-price suppliers.
func Schema() reportkit.Schema[PerformanceRecord] {
	return reportkit.Schema[PerformanceRecord]{
		SearchFields: []func(PerformanceRecord) string{
			func(r PerformanceRecord) string { return r.Name },
		},
		Category: func(r PerformanceRecord) string { return r.PriceTrend },
		Status:   func(r PerformanceRecord) string { return r.Status },
		Date:     func(r PerformanceRecord) time.Time { return r.LastOrder },
		SortKeys: map[string]reportkit.KeyFunc[PerformanceRecord]{
			"name":     func(r PerformanceRecord) reportkit.Key { return reportkit.StrKey(r.Name) },
			"delivery": func(r PerformanceRecord) reportkit.Key { return reportkit.IntKey(r.DeliveryRating) },
			"quality":  func(r PerformanceRecord) reportkit.Key { return reportkit.IntKey(r.QualityRating) },
			"pricing":  func(r PerformanceRecord) reportkit.Key { return reportkit.IntKey(r.PricingRating) },
			"overall":  func(r PerformanceRecord) reportkit.Key { return reportkit.NumKey(r.OverallScore()) },
			"orders":   func(r PerformanceRecord) reportkit.Key { return reportkit.IntKey(r.TotalOrders) },
			"last_order": func(r PerformanceRecord) reportkit.Key {
				return reportkit.TimeKey(r.LastOrder)
			},
		},
	}
}

// Summary aggregates a supplier performance report.
type Summary struct {
	TotalSuppliers  int                `json:"total_suppliers"`
	AverageDelivery float64            `json:"average_delivery"`
	AverageQuality  float64            `json:"average_quality"`
	AveragePricing  float64            `json:"average_pricing"`
	ByStatus        []reportkit.Bucket `json:"by_status"`
	ByTrend         []reportkit.Bucket `json:"by_trend"`
}

// Summarize computes the scorecard summary over the given rows.
func Summarize(records []PerformanceRecord) Summary {
	return Summary{
		TotalSuppliers:  len(records),
		AverageDelivery: reportkit.Average(records, func(r PerformanceRecord) float64 { return float64(r.DeliveryRating) }),
		AverageQuality:  reportkit.Average(records, func(r PerformanceRecord) float64 { return float64(r.QualityRating) }),
		AveragePricing:  reportkit.Average(records, func(r PerformanceRecord) float64 { return float64(r.PricingRating) }),
		ByStatus: reportkit.Buckets(records,
			func(r PerformanceRecord) string { return r.Status },
			func(r PerformanceRecord) float64 { return r.OverallScore() },
		),
		ByTrend: reportkit.Buckets(records,
			func(r PerformanceRecord) string { return r.PriceTrend },
			func(r PerformanceRecord) float64 { return float64(r.TotalOrders) },
		),
	}
}

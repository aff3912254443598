package suppliers

import "time"

// Price trend indicators, used for icon selection only.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Overall performance statuses.
const (
	StatusExcellent        = "Excellent"
	StatusGood             = "Good"
	StatusAverage          = "Average"
	StatusNeedsImprovement = "Needs Improvement"
)

// PerformanceRecord is one supplier's scorecard. Every score is supplied as
// static data; nothing ties the on-time percentage to the order counts.
type PerformanceRecord struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DeliveryRating int       `json:"delivery_rating"`
	QualityRating  int       `json:"quality_rating"`
	PricingRating  int       `json:"pricing_rating"`
	OnTimePct      float64   `json:"on_time_pct"`
	DefectPct      float64   `json:"defect_pct"`
	ResponseHours  int       `json:"response_hours"`
	LastOrder      time.Time `json:"last_order"`
	TotalOrders    int       `json:"total_orders"`
	ReturnPct      float64   `json:"return_pct"`
	PriceTrend     string    `json:"price_trend"`
	Status         string    `json:"status"`
}

// OverallScore averages the three ratings for the sortable score column.
func (r PerformanceRecord) OverallScore() float64 {
	return float64(r.DeliveryRating+r.QualityRating+r.PricingRating) / 3
}

package suppliers

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleRecords returns the demo supplier scorecards, a fresh slice per call.
func SampleRecords() []PerformanceRecord {
	return []PerformanceRecord{
		{
			ID: 1, Name: "Auto Parts Inc.",
			DeliveryRating: 92, QualityRating: 90, PricingRating: 85,
			OnTimePct: 93, DefectPct: 2.1, ResponseHours: 24,
			LastOrder: day(2023, time.December, 10), TotalOrders: 24, ReturnPct: 1.8,
			PriceTrend: TrendStable, Status: StatusExcellent,
		},
		{
			ID: 2, Name: "Brake Systems Ltd.",
			DeliveryRating: 84, QualityRating: 88, PricingRating: 80,
			OnTimePct: 85, DefectPct: 3.0, ResponseHours: 36,
			LastOrder: day(2023, time.December, 5), TotalOrders: 18, ReturnPct: 2.5,
			PriceTrend: TrendUp, Status: StatusGood,
		},
		{
			ID: 3, Name: "Engine Components Co.",
			DeliveryRating: 75, QualityRating: 80, PricingRating: 90,
			OnTimePct: 78, DefectPct: 4.2, ResponseHours: 48,
			LastOrder: day(2023, time.November, 28), TotalOrders: 15, ReturnPct: 3.1,
			PriceTrend: TrendDown, Status: StatusAverage,
		},
		{
			ID: 4, Name: "Electrical Parts Suppliers",
			DeliveryRating: 88, QualityRating: 85, PricingRating: 78,
			OnTimePct: 90, DefectPct: 2.8, ResponseHours: 24,
			LastOrder: day(2023, time.December, 8), TotalOrders: 20, ReturnPct: 2.3,
			PriceTrend: TrendStable, Status: StatusGood,
		},
		{
			ID: 5, Name: "Filter Manufacturers",
			DeliveryRating: 94, QualityRating: 92, PricingRating: 82,
			OnTimePct: 96, DefectPct: 1.5, ResponseHours: 12,
			LastOrder: day(2023, time.December, 12), TotalOrders: 22, ReturnPct: 1.2,
			PriceTrend: TrendStable, Status: StatusExcellent,
		},
		{
			ID: 6, Name: "Auto Lighting Solutions",
			DeliveryRating: 78, QualityRating: 82, PricingRating: 88,
			OnTimePct: 80, DefectPct: 3.5, ResponseHours: 36,
			LastOrder: day(2023, time.December, 2), TotalOrders: 16, ReturnPct: 2.7,
			PriceTrend: TrendUp, Status: StatusAverage,
		},
		{
			ID: 7, Name: "Glass & Mirrors Co.",
			DeliveryRating: 72, QualityRating: 75, PricingRating: 92,
			OnTimePct: 70, DefectPct: 4.8, ResponseHours: 72,
			LastOrder: day(2023, time.November, 25), TotalOrders: 10, ReturnPct: 3.9,
			PriceTrend: TrendDown, Status: StatusNeedsImprovement,
		},
	}
}

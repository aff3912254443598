package reportkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateOverEmptyIsZero(t *testing.T) {
	var rows []order
	amount := func(o order) float64 { return o.Amount }

	require.Zero(t, Sum(rows, amount))
	require.Zero(t, Average(rows, amount))
	require.Zero(t, Count(rows, nil))
	require.Empty(t, Buckets(rows, func(o order) string { return o.Status }, nil))
}

func TestSumCountAverage(t *testing.T) {
	rows := sampleOrders()
	amount := func(o order) float64 { return o.Amount }

	require.InDelta(t, 725, Sum(rows, amount), 0.0001)
	require.InDelta(t, 145, Average(rows, amount), 0.0001)
	require.Equal(t, 3, Count(rows, func(o order) bool { return o.Status == "Pending" }))
	require.Equal(t, 5, Count(rows, nil))
}

func TestBucketsFirstSeenOrderAndPalette(t *testing.T) {
	rows := sampleOrders()
	buckets := Buckets(rows, func(o order) string { return o.Status }, func(o order) float64 { return o.Amount })

	require.Len(t, buckets, 3)
	require.Equal(t, "Pending", buckets[0].Label)
	require.Equal(t, 3, buckets[0].Count)
	require.InDelta(t, 600, buckets[0].Value, 0.0001)
	require.Equal(t, "Completed", buckets[1].Label)
	require.Equal(t, "Approved", buckets[2].Label)

	for i, b := range buckets {
		require.Equal(t, chartPalette[i%len(chartPalette)], b.Color)
	}
}

func TestPercentageGuardsZeroWhole(t *testing.T) {
	require.Zero(t, Percentage(5, 0))
	require.InDelta(t, 60, Percentage(3, 5), 0.0001)
}

func TestClassifyRatioBands(t *testing.T) {
	require.Equal(t, BandCritical, ClassifyRatio(0, 5))
	require.Equal(t, BandCritical, ClassifyRatio(1.5, 5)) // ratio 0.3
	require.Equal(t, BandWarning, ClassifyRatio(2.5, 5))  // ratio 0.5
	require.Equal(t, BandGood, ClassifyRatio(3, 5))       // ratio 0.6
	require.Equal(t, BandGood, ClassifyRatio(8, 5))
	require.Equal(t, BandGood, ClassifyRatio(3, 0))
}

func TestClassifyRatioIsMonotonic(t *testing.T) {
	// A lower ratio must never classify better than a higher one.
	const threshold = 5.0
	prev := ClassifyRatio(0, threshold)
	for qty := 0.5; qty <= 10; qty += 0.5 {
		band := ClassifyRatio(qty, threshold)
		require.GreaterOrEqual(t, band.Rank(), prev.Rank(), "qty %v", qty)
		prev = band
	}
}

func TestClassifyDaysBands(t *testing.T) {
	require.Equal(t, BandCritical, ClassifyDays(0))
	require.Equal(t, BandCritical, ClassifyDays(29))
	require.Equal(t, BandWarning, ClassifyDays(30))
	require.Equal(t, BandWarning, ClassifyDays(60))
	require.Equal(t, BandGood, ClassifyDays(61))
}

func TestBelowThresholdScenario(t *testing.T) {
	type item struct {
		ID        string
		Qty       float64
		Threshold float64
	}
	items := []item{
		{ID: "A", Qty: 3, Threshold: 5},
		{ID: "B", Qty: 8, Threshold: 5},
		{ID: "C", Qty: 0, Threshold: 5},
	}
	var below []item
	for _, it := range items {
		if it.Qty < it.Threshold {
			below = append(below, it)
		}
	}
	require.Len(t, below, 2)
	require.Equal(t, "A", below[0].ID)
	require.Equal(t, "C", below[1].ID)

	require.Equal(t, BandGood, ClassifyRatio(3, 5))
	require.Equal(t, BandCritical, ClassifyRatio(0, 5))
}

package expenses

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

func TestFilterByCategory(t *testing.T) {
	criteria := reportkit.ParseCriteria(url.Values{"category": {"Inventory"}})
	rows := reportkit.Run(SampleExpenses(), Schema(), criteria)
	require.Len(t, rows, 3)
	for _, e := range rows {
		require.Equal(t, "Inventory", e.Category)
	}
}

func TestFilterByDateRange(t *testing.T) {
	criteria := reportkit.ParseCriteria(url.Values{
		"date_from": {"2023-11-01"},
		"date_to":   {"2023-11-05"},
	})
	rows := reportkit.Run(SampleExpenses(), Schema(), criteria)
	require.Len(t, rows, 3, "bounds are inclusive")
}

func TestWorkingCopyIsReplacedPerFilterChange(t *testing.T) {
	// A narrow filter followed by a wider one must restore rows the narrow
	// pass removed; each run starts from the authoritative ledger.
	narrow := reportkit.Run(SampleExpenses(), Schema(), reportkit.Criteria{Category: "Office"})
	require.Len(t, narrow, 1)

	wide := reportkit.Run(SampleExpenses(), Schema(), reportkit.Criteria{})
	require.Len(t, wide, 10)
}

func TestSortByAmount(t *testing.T) {
	criteria := reportkit.Criteria{SortField: "amount", SortDir: reportkit.Desc}
	rows := reportkit.Run(SampleExpenses(), Schema(), criteria)
	require.Equal(t, "EXP-010", rows[0].ID)
	require.Equal(t, 125.00, rows[len(rows)-1].Amount)
}

func TestSummarize(t *testing.T) {
	rows := SampleExpenses()
	summary := Summarize(rows)
	require.Equal(t, 10, summary.TotalExpenses)
	require.InDelta(t, 11316.70, summary.TotalAmount, 0.001)
	require.InDelta(t, 1250+780.50+1200+3500, summary.PendingAmount, 0.001)
	require.Len(t, summary.ByCategory, 7)
	require.Equal(t, "Inventory", summary.ByCategory[0].Label)
	require.InDelta(t, 2850+1250+3500, summary.ByCategory[0].Value, 0.001)

	empty := Summarize(nil)
	require.Zero(t, empty.TotalAmount)
	require.Zero(t, empty.AverageAmount)
}

func TestNormalizeCategory(t *testing.T) {
	require.Equal(t, "Utilities", NormalizeCategory("Utilities"))
	require.Equal(t, "Other", NormalizeCategory("Snacks"))
}

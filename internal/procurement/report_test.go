package procurement

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

func TestSampleOrdersAreIsolated(t *testing.T) {
	first := SampleOrders()
	first[0].Total = -1
	first[0].Items[0].Quantity = -1

	second := SampleOrders()
	require.Equal(t, 12500.0, second[0].Total)
	require.Equal(t, 25, second[0].Items[0].Quantity)
}

func TestReportFilterByStatus(t *testing.T) {
	criteria := reportkit.ParseCriteria(url.Values{"status": {"Completed"}})
	orders := reportkit.Run(SampleOrders(), Schema(), criteria)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.Equal(t, StatusCompleted, o.Status)
	}
}

func TestReportSearchMatchesIDAndSupplier(t *testing.T) {
	byID := reportkit.Run(SampleOrders(), Schema(), reportkit.Criteria{Search: "po-2023-003"})
	require.Len(t, byID, 1)
	require.Equal(t, "Engine Components Co.", byID[0].Supplier)

	bySupplier := reportkit.Run(SampleOrders(), Schema(), reportkit.Criteria{Search: "brake systems"})
	require.Len(t, bySupplier, 2)
}

func TestReportSortByTotal(t *testing.T) {
	criteria := reportkit.Criteria{SortField: "total", SortDir: reportkit.Desc}
	orders := reportkit.Run(SampleOrders(), Schema(), criteria)
	require.Equal(t, "PO-2023-003", orders[0].ID)
	require.Equal(t, 15200.0, orders[0].Total)
	require.Equal(t, 4200.0, orders[len(orders)-1].Total)
}

func TestSummarize(t *testing.T) {
	orders := SampleOrders()
	summary := Summarize(orders)

	require.Equal(t, 9, summary.TotalOrders)
	require.InDelta(t, 83550, summary.TotalValue, 0.001)
	// Pending, Overdue and Partial orders are still open.
	require.InDelta(t, 15200+9800+7500+12800+6500, summary.PendingValue, 0.001)
	require.Len(t, summary.ByStatus, 5)
	require.Equal(t, StatusCompleted, summary.ByStatus[0].Label, "buckets keep first-seen order")
}

func TestSummarizeEmptyReport(t *testing.T) {
	summary := Summarize(nil)
	require.Zero(t, summary.TotalOrders)
	require.Zero(t, summary.TotalValue)
	require.Zero(t, summary.AverageOrder)
	require.Empty(t, summary.ByStatus)
}

func TestStoredTotalIsNotRecomputed(t *testing.T) {
	orders := SampleOrders()
	// PO-2023-001 line items sum to 25*250 + 50*120 = 12250 while the stored
	// total says 12500. The report trusts the stored figure.
	var lineSum float64
	for _, item := range orders[0].Items {
		lineSum += float64(item.Quantity) * item.UnitPrice
	}
	require.NotEqual(t, lineSum, orders[0].Total)
	require.InDelta(t, 12500, Summarize(orders[:1]).TotalValue, 0.001)
}

func TestItemCounts(t *testing.T) {
	orders := SampleOrders()
	require.Equal(t, 75, orders[0].ItemCount())
	require.Equal(t, 75, orders[0].ReceivedCount())
	require.Equal(t, 60, orders[2].ItemCount())
	require.Zero(t, orders[2].ReceivedCount())
}

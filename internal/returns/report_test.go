package returns

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

func TestFilterByReason(t *testing.T) {
	criteria := reportkit.ParseCriteria(url.Values{"category": {ReasonDefective}})
	rows := reportkit.Run(SampleReturns(), Schema(), criteria)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Equal(t, ReasonDefective, r.Reason)
	}
}

func TestFilterByStatus(t *testing.T) {
	criteria := reportkit.ParseCriteria(url.Values{"status": {StatusPending}})
	rows := reportkit.Run(SampleReturns(), Schema(), criteria)
	require.Len(t, rows, 2)
}

func TestSearchMatchesOrderRef(t *testing.T) {
	rows := reportkit.Run(SampleReturns(), Schema(), reportkit.Criteria{Search: "so-2023-449"})
	require.Len(t, rows, 1)
	require.Equal(t, "Singh Mechanics", rows[0].Customer)
}

func TestSortByValue(t *testing.T) {
	criteria := reportkit.Criteria{SortField: "value", SortDir: reportkit.Desc}
	rows := reportkit.Run(SampleReturns(), Schema(), criteria)
	require.Equal(t, "RET-2023-005", rows[0].ID)
	require.Equal(t, 450.0, rows[len(rows)-1].TotalValue)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(SampleReturns())
	require.Equal(t, 6, summary.TotalReturns)
	require.InDelta(t, 900+1900+1200+960+2000+450, summary.TotalValue, 0.001)
	require.Equal(t, 2, summary.PendingCount)

	require.Len(t, summary.ByReason, 5)
	require.Equal(t, ReasonDefective, summary.ByReason[0].Label)
	require.Equal(t, 2, summary.ByReason[0].Count)
	require.InDelta(t, 2100, summary.ByReason[0].Value, 0.001)

	require.Len(t, summary.ByAction, 2)
	require.InDelta(t, 900+1200+960, summary.ByAction[0].Value, 0.001, "refund bucket")
	require.InDelta(t, 1900+2000+450, summary.ByAction[1].Value, 0.001, "replacement bucket")
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	require.Zero(t, summary.TotalReturns)
	require.Empty(t, summary.ByReason)
}

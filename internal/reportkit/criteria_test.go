package reportkit

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("search", "  brake pads ")
	q.Set("category", "Brakes")
	q.Set("status", "Pending")
	q.Set("supplier", "all")
	q.Set("date_from", "2023-12-01")
	q.Set("date_to", "2023-12-15")
	q.Set("sort", "amount")
	q.Set("dir", "desc")

	c := ParseCriteria(q)
	require.Equal(t, "brake pads", c.Search)
	require.Equal(t, "Brakes", c.Category)
	require.Equal(t, "Pending", c.Status)
	require.Equal(t, "all", c.Supplier)
	require.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), c.DateFrom)
	// Upper bound covers the whole final day.
	require.True(t, c.DateTo.After(time.Date(2023, 12, 15, 23, 59, 59, 0, time.UTC)))
	require.Equal(t, "amount", c.SortField)
	require.Equal(t, Desc, c.SortDir)
}

func TestParseCriteriaWidensMalformedDates(t *testing.T) {
	q := url.Values{}
	q.Set("date_from", "12/01/2023")
	q.Set("date_to", "not a date")

	c := ParseCriteria(q)
	require.True(t, c.DateFrom.IsZero())
	require.True(t, c.DateTo.IsZero())

	// Widened criteria still match the full dataset.
	got := Filter(sampleOrders(), orderSchema(), c)
	require.Len(t, got, 5)
}

func TestParseCriteriaDefaultsDirectionToAscending(t *testing.T) {
	q := url.Values{}
	q.Set("dir", "sideways")
	require.Equal(t, Asc, ParseCriteria(q).SortDir)
}

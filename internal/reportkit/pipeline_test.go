package reportkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type order struct {
	ID       string
	Supplier string
	Status   string
	Amount   float64
	Date     time.Time
}

func orderSchema() Schema[order] {
	return Schema[order]{
		SearchFields: []func(order) string{
			func(o order) string { return o.ID },
			func(o order) string { return o.Supplier },
		},
		Status:   func(o order) string { return o.Status },
		Supplier: func(o order) string { return o.Supplier },
		Date:     func(o order) time.Time { return o.Date },
		SortKeys: map[string]KeyFunc[order]{
			"id":     func(o order) Key { return StrKey(o.ID) },
			"amount": func(o order) Key { return NumKey(o.Amount) },
			"date":   func(o order) Key { return TimeKey(o.Date) },
		},
	}
}

func sampleOrders() []order {
	day := func(d int) time.Time { return time.Date(2023, 12, d, 0, 0, 0, 0, time.UTC) }
	return []order{
		{ID: "PO-001", Supplier: "Auto Parts Inc.", Status: "Pending", Amount: 100, Date: day(1)},
		{ID: "PO-002", Supplier: "Auto Parts Inc.", Status: "Completed", Amount: 50, Date: day(5)},
		{ID: "PO-003", Supplier: "Brake Systems Ltd.", Status: "Pending", Amount: 200, Date: day(8)},
		{ID: "PO-004", Supplier: "Brake Systems Ltd.", Status: "Approved", Amount: 75, Date: day(12)},
		{ID: "PO-005", Supplier: "Filter Manufacturers", Status: "Pending", Amount: 300, Date: day(15)},
	}
}

func TestIdentityFilterReturnsAllInOrder(t *testing.T) {
	rows := sampleOrders()
	got := Run(rows, orderSchema(), Criteria{})
	require.Equal(t, rows, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	schema := orderSchema()
	c := Criteria{Supplier: "Auto Parts Inc.", Status: "Pending"}
	once := Filter(sampleOrders(), schema, c)
	twice := Filter(once, schema, c)
	require.Equal(t, once, twice)
}

func TestConjunctiveNarrowing(t *testing.T) {
	schema := orderSchema()
	rows := sampleOrders()

	bySupplier := Filter(rows, schema, Criteria{Supplier: "Auto Parts Inc."})
	require.Len(t, bySupplier, 2)

	both := Filter(rows, schema, Criteria{Supplier: "Auto Parts Inc.", Status: "Pending"})
	require.Subset(t, bySupplier, both)
	require.Len(t, both, 1)
	require.Equal(t, "PO-001", both[0].ID)
}

func TestAllSentinelMatchesEverything(t *testing.T) {
	got := Filter(sampleOrders(), orderSchema(), Criteria{Supplier: All, Status: "ALL"})
	require.Len(t, got, 5)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(sampleOrders(), orderSchema(), Criteria{Search: "brake SYSTEMS"})
	require.Len(t, got, 2)

	got = Filter(sampleOrders(), orderSchema(), Criteria{Search: "po-00"})
	require.Len(t, got, 5)

	got = Filter(sampleOrders(), orderSchema(), Criteria{Search: "no such vendor"})
	require.Empty(t, got)
}

func TestDateRangeInclusiveWithDefaultBounds(t *testing.T) {
	schema := orderSchema()
	rows := sampleOrders()

	c := Criteria{
		DateFrom: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC),
	}
	got := Filter(rows, schema, c)
	require.Len(t, got, 3)
	require.Equal(t, "PO-002", got[0].ID)
	require.Equal(t, "PO-004", got[2].ID)

	// Missing lower bound widens to the epoch.
	got = Filter(rows, schema, Criteria{DateTo: time.Date(2023, 12, 8, 0, 0, 0, 0, time.UTC)})
	require.Len(t, got, 3)

	// Missing upper bound widens to now.
	got = Filter(rows, schema, Criteria{DateFrom: time.Date(2023, 12, 8, 0, 0, 0, 0, time.UTC)})
	require.Len(t, got, 3)
}

func TestRunRecomputesFromAuthoritativeDataset(t *testing.T) {
	schema := orderSchema()
	rows := sampleOrders()

	narrowed := Run(rows, schema, Criteria{Supplier: "Filter Manufacturers"})
	require.Len(t, narrowed, 1)

	// A later, broader criteria over the same authoritative dataset must not
	// be constrained by the earlier narrow result.
	broad := Run(rows, schema, Criteria{Status: "Pending"})
	require.Len(t, broad, 3)
}

func TestResetRestoresFullDataset(t *testing.T) {
	schema := orderSchema()
	rows := sampleOrders()
	c := Criteria{Supplier: "Auto Parts Inc.", Search: "PO-001"}
	require.Len(t, Run(rows, schema, c), 1)
	require.Equal(t, rows, Run(rows, schema, c.Reset()))
}

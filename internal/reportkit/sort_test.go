package reportkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortNumericAscendingAndDescending(t *testing.T) {
	schema := Schema[order]{SortKeys: map[string]KeyFunc[order]{
		"amount": func(o order) Key { return NumKey(o.Amount) },
	}}
	rows := []order{{ID: "a", Amount: 100}, {ID: "b", Amount: 50}, {ID: "c", Amount: 200}}

	asc := Sort(rows, schema, "amount", Asc)
	require.Equal(t, []float64{50, 100, 200}, amounts(asc))

	desc := Sort(rows, schema, "amount", Desc)
	require.Equal(t, []float64{200, 100, 50}, amounts(desc))
}

func TestDirectionToggleReversesExactly(t *testing.T) {
	schema := orderSchema()
	rows := sampleOrders() // amounts are all distinct

	asc := Sort(rows, schema, "amount", Asc)
	desc := Sort(rows, schema, "amount", Desc)
	for i := range asc {
		require.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortIsStableUnderTies(t *testing.T) {
	schema := Schema[order]{SortKeys: map[string]KeyFunc[order]{
		"status": func(o order) Key { return StrKey(o.Status) },
	}}
	rows := []order{
		{ID: "first", Status: "Pending"},
		{ID: "second", Status: "Pending"},
		{ID: "third", Status: "Pending"},
	}
	sorted := Sort(rows, schema, "status", Asc)
	require.Equal(t, []order(rows), sorted)
}

func TestSortDatesAsEpochMillis(t *testing.T) {
	schema := orderSchema()
	rows := []order{
		{ID: "newest", Date: time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "oldest", Date: time.Date(2023, 2, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "middle", Date: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	// A lexicographic comparison of "2023-2-2" style values would misorder
	// these; the epoch-millisecond key must not.
	sorted := Sort(rows, schema, "date", Asc)
	require.Equal(t, "oldest", sorted[0].ID)
	require.Equal(t, "middle", sorted[1].ID)
	require.Equal(t, "newest", sorted[2].ID)
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	rows := sampleOrders()
	sorted := Sort(rows, orderSchema(), "no_such_field", Desc)
	require.Equal(t, rows, sorted)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []order{{ID: "b", Amount: 2}, {ID: "a", Amount: 1}}
	_ = Sort(rows, orderSchema(), "amount", Asc)
	require.Equal(t, "b", rows[0].ID)
}

func TestCriteriaToggle(t *testing.T) {
	c := Criteria{SortField: "amount", SortDir: Asc}

	c = c.Toggle("amount")
	require.Equal(t, Desc, c.SortDir)

	c = c.Toggle("amount")
	require.Equal(t, Asc, c.SortDir)

	c.SortDir = Desc
	c = c.Toggle("date")
	require.Equal(t, "date", c.SortField)
	require.Equal(t, Asc, c.SortDir)
}

func amounts(rows []order) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Amount
	}
	return out
}

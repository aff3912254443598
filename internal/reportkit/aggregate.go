package reportkit

// Sum totals a numeric field over the rows.
func Sum[T any](rows []T, f func(T) float64) float64 {
	var total float64
	for _, row := range rows {
		total += f(row)
	}
	return total
}

// Count reports how many rows satisfy the predicate. A nil predicate counts
// every row.
func Count[T any](rows []T, pred func(T) bool) int {
	if pred == nil {
		return len(rows)
	}
	n := 0
	for _, row := range rows {
		if pred(row) {
			n++
		}
	}
	return n
}

// Average returns the mean of a numeric field, or 0 over an empty set. The
// empty guard matters: summary cards must never show NaN.
func Average[T any](rows []T, f func(T) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	return Sum(rows, f) / float64(len(rows))
}

// Bucket is one categorical group-by result, ready for chart bindings.
type Bucket struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// chartPalette is indexed by bucket position modulo its length. Colors are
// positional, not content-addressed: reordering buckets reassigns colors.
var chartPalette = []string{
	"#2563eb", "#16a34a", "#f59e0b", "#dc2626", "#7c3aed", "#0891b2",
}

// Buckets groups rows by label in first-seen order, counting members and
// summing the optional value field. A nil value function leaves Value at 0.
func Buckets[T any](rows []T, label func(T) string, value func(T) float64) []Bucket {
	index := make(map[string]int)
	var out []Bucket
	for _, row := range rows {
		l := label(row)
		i, ok := index[l]
		if !ok {
			i = len(out)
			index[l] = i
			out = append(out, Bucket{Label: l, Color: chartPalette[i%len(chartPalette)]})
		}
		out[i].Count++
		if value != nil {
			out[i].Value += value(row)
		}
	}
	return out
}

// Percentage returns part/whole as a percentage, guarding division by zero.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

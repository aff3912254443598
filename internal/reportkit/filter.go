package reportkit

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Schema declares how a record type exposes its filterable and sortable
// fields. Nil accessors mean the record does not carry that dimension and the
// corresponding criterion is ignored.
type Schema[T any] struct {
	// SearchFields are the text fields scanned by substring search.
	SearchFields []func(T) string
	Category     func(T) string
	Status       func(T) string
	Supplier     func(T) string
	Date         func(T) time.Time

	// SortKeys maps a sort field name to its key extractor.
	SortKeys map[string]KeyFunc[T]
}

// Filter returns the subsequence of rows satisfying the conjunction of all
// set criteria, preserving input order. The input slice is never mutated.
func Filter[T any](rows []T, s Schema[T], c Criteria) []T {
	preds := buildPredicates(s, c)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, preds) {
			out = append(out, row)
		}
	}
	return out
}

type predicate[T any] func(T) bool

func matchesAll[T any](row T, preds []predicate[T]) bool {
	for _, p := range preds {
		if !p(row) {
			return false
		}
	}
	return true
}

func buildPredicates[T any](s Schema[T], c Criteria) []predicate[T] {
	var preds []predicate[T]
	if c.Search != "" && len(s.SearchFields) > 0 {
		needle := fold(c.Search)
		fields := s.SearchFields
		preds = append(preds, func(row T) bool {
			for _, f := range fields {
				if strings.Contains(fold(f(row)), needle) {
					return true
				}
			}
			return false
		})
	}
	if !unset(c.Category) && s.Category != nil {
		preds = append(preds, equalsFold(s.Category, c.Category))
	}
	if !unset(c.Status) && s.Status != nil {
		preds = append(preds, equalsFold(s.Status, c.Status))
	}
	if !unset(c.Supplier) && s.Supplier != nil {
		preds = append(preds, equalsFold(s.Supplier, c.Supplier))
	}
	if s.Date != nil && (!c.DateFrom.IsZero() || !c.DateTo.IsZero()) {
		from := c.DateFrom
		if from.IsZero() {
			from = time.Unix(0, 0)
		}
		to := c.DateTo
		if to.IsZero() {
			to = time.Now()
		}
		date := s.Date
		preds = append(preds, func(row T) bool {
			d := date(row)
			return !d.Before(from) && !d.After(to)
		})
	}
	return preds
}

func equalsFold[T any](get func(T) string, want string) predicate[T] {
	folded := fold(want)
	return func(row T) bool {
		return fold(get(row)) == folded
	}
}

// fold lowercases with full Unicode case folding so search behaves the same
// for vendor names regardless of input script.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Package reportkit implements the shared filter/sort/aggregate pipeline
// behind the report pages. Every page supplies a Schema describing how its
// records expose searchable text, categorical fields, dates and sort keys;
// reportkit owns the mechanics so pages stay thin configuration.
package reportkit

import (
	"net/url"
	"strings"
	"time"
)

// Direction selects sort order.
type Direction string

const (
	// Asc sorts ascending.
	Asc Direction = "asc"
	// Desc sorts descending.
	Desc Direction = "desc"
)

// All is the sentinel dropdown value meaning "no constraint".
const All = "all"

// Criteria carries the filter state of a report page. Empty or "all" string
// fields and zero time bounds are identity filters.
type Criteria struct {
	Search   string
	Category string
	Status   string
	Supplier string
	DateFrom time.Time
	DateTo   time.Time

	SortField string
	SortDir   Direction
}

// DateLayout is the wire format for date-range bounds.
const DateLayout = "2006-01-02"

// ParseCriteria reads filter state from query parameters. Malformed dates
// widen to an unset bound instead of failing: a typo in a date box must never
// hide the whole dataset.
func ParseCriteria(q url.Values) Criteria {
	c := Criteria{
		Search:    strings.TrimSpace(q.Get("search")),
		Category:  strings.TrimSpace(q.Get("category")),
		Status:    strings.TrimSpace(q.Get("status")),
		Supplier:  strings.TrimSpace(q.Get("supplier")),
		SortField: strings.TrimSpace(q.Get("sort")),
	}
	if from := q.Get("date_from"); from != "" {
		if t, err := time.Parse(DateLayout, from); err == nil {
			c.DateFrom = t
		}
	}
	if to := q.Get("date_to"); to != "" {
		if t, err := time.Parse(DateLayout, to); err == nil {
			// Inclusive upper bound: cover the whole day.
			c.DateTo = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	switch Direction(q.Get("dir")) {
	case Desc:
		c.SortDir = Desc
	default:
		c.SortDir = Asc
	}
	return c
}

// Toggle returns the criteria after the user clicks a column header: the same
// field flips direction, a new field resets to ascending.
func (c Criteria) Toggle(field string) Criteria {
	if c.SortField == field {
		if c.SortDir == Asc {
			c.SortDir = Desc
		} else {
			c.SortDir = Asc
		}
		return c
	}
	c.SortField = field
	c.SortDir = Asc
	return c
}

// Reset clears every criterion, restoring the identity filter.
func (c Criteria) Reset() Criteria {
	return Criteria{SortDir: Asc}
}

func unset(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

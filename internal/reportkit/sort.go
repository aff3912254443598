package reportkit

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Key is a sort key. Two numeric keys compare as numbers, anything else
// compares as case-sensitive strings. Temporal fields must go through TimeKey
// so they always compare as epoch milliseconds.
type Key struct {
	num     float64
	str     string
	numeric bool
}

// KeyFunc extracts the sort key for a field from a record.
type KeyFunc[T any] func(T) Key

// NumKey builds a numeric key.
func NumKey(v float64) Key {
	return Key{num: v, numeric: true}
}

// IntKey builds a numeric key from an integer.
func IntKey(v int) Key {
	return NumKey(float64(v))
}

// StrKey builds a lexicographic key.
func StrKey(s string) Key {
	return Key{str: s}
}

// TimeKey normalises a timestamp to a numeric epoch-millisecond key.
func TimeKey(t time.Time) Key {
	return NumKey(float64(t.UnixMilli()))
}

func compareKeys(a, b Key) int {
	if a.numeric && b.numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.text(), b.text())
}

func (k Key) text() string {
	if k.numeric {
		return strconv.FormatFloat(k.num, 'f', -1, 64)
	}
	return k.str
}

// Sort returns rows ordered by the named field. The sort is stable so rows
// with equal keys keep their input order. An unknown field returns the rows
// unchanged. The input slice is never mutated.
func Sort[T any](rows []T, s Schema[T], field string, dir Direction) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	key, ok := s.SortKeys[field]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		cmp := compareKeys(key(a), key(b))
		if dir == Desc {
			return -cmp
		}
		return cmp
	})
	return out
}

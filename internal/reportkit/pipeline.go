package reportkit

// Run executes the full report pipeline: filter the authoritative dataset by
// the criteria, then sort. The pipeline always starts from the full dataset,
// never from a previously filtered result, so repeated filter changes cannot
// compound into over-narrowing.
func Run[T any](rows []T, s Schema[T], c Criteria) []T {
	filtered := Filter(rows, s, c)
	if c.SortField == "" {
		return filtered
	}
	dir := c.SortDir
	if dir != Desc {
		dir = Asc
	}
	return Sort(filtered, s, c.SortField, dir)
}

package reportkit

// Band classifies a record into a three-step severity label for stock and
// expiry summary cards.
type Band string

const (
	// BandCritical is the worst band.
	BandCritical Band = "Critical"
	// BandWarning is the middle band.
	BandWarning Band = "Warning"
	// BandGood is the healthy band.
	BandGood Band = "Good"
)

// ClassifyRatio bands a quantity against its threshold by ratio:
// ratio <= 0.3 is Critical, <= 0.5 is Warning, else Good. A non-positive
// threshold means the item carries no reorder point and is always Good.
func ClassifyRatio(qty, threshold float64) Band {
	if threshold <= 0 {
		return BandGood
	}
	ratio := qty / threshold
	switch {
	case ratio <= 0.3:
		return BandCritical
	case ratio <= 0.5:
		return BandWarning
	default:
		return BandGood
	}
}

// ClassifyDays bands a days-remaining figure by absolute thresholds:
// under 30 days is Critical, up to 60 is Warning, else Good. This rule takes
// absolute days, not a ratio; the two classifiers are distinct on purpose.
func ClassifyDays(days int) Band {
	switch {
	case days < 30:
		return BandCritical
	case days <= 60:
		return BandWarning
	default:
		return BandGood
	}
}

// Rank orders bands worst-first so callers can assert that a lower input
// never classifies better than a higher one.
func (b Band) Rank() int {
	switch b {
	case BandCritical:
		return 0
	case BandWarning:
		return 1
	default:
		return 2
	}
}

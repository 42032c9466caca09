package bias

// Level represents a bias classification shown as a badge in the UI.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Thresholds are closed on the lower bound: exactly 0.10 is Medium and
// exactly 0.20 is High.
const (
	mediumThreshold = 0.10
	highThreshold   = 0.20
)

// Classify maps a bias score to its level. It is total over all finite
// inputs; anything below the medium threshold, including negative scores,
// is Low. Out-of-range values are normalized earlier, at fixture ingestion
// (see Clamp).
func Classify(score float64) Level {
	switch {
	case score >= highThreshold:
		return High
	case score >= mediumThreshold:
		return Medium
	default:
		return Low
	}
}

// Label returns the badge text for the level, e.g. "Low Bias".
func (l Level) Label() string {
	return string(l) + " Bias"
}

// Color returns the hex color token for the level's badge. Views wrap it in
// their own styles; this is the single source of truth for badge colors.
func (l Level) Color() string {
	switch l {
	case High:
		return "#E0245E"
	case Medium:
		return "#F5A623"
	default:
		return "#25D366"
	}
}

// Clamp bounds a raw score to [0,1]. Applied at the data-ingestion boundary
// so out-of-range values never reach a view.
func Clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

package matchgo

// Confidence is the discrete bucket derived from a match score.
// Buckets are ordered: ConfidenceLow < ConfidenceMedium < ConfidenceHigh.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

// String returns a string representation of the Confidence.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// Thresholds maps a score to a Confidence. Scores at or above High classify
// high, at or above Medium classify medium, anything below classifies low.
type Thresholds struct {
	High   float64
	Medium float64
}

// Default thresholds per scoring mode. Semantic thresholds sit higher
// because the embedding similarities push absolute scores up.
var (
	DefaultLexicalThresholds  = Thresholds{High: 65, Medium: 40}
	DefaultSemanticThresholds = Thresholds{High: 75, Medium: 50}
)

// Classify maps score to its Confidence bucket. Classification is monotonic
// non-decreasing in score.
func (t Thresholds) Classify(score float64) Confidence {
	switch {
	case score >= t.High:
		return ConfidenceHigh
	case score >= t.Medium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

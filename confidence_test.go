package matchgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholds_Classify(t *testing.T) {
	tests := []struct {
		name       string
		thresholds Thresholds
		score      float64
		expected   Confidence
	}{
		{"LexicalHigh", DefaultLexicalThresholds, 65, ConfidenceHigh},
		{"LexicalHighAbove", DefaultLexicalThresholds, 100, ConfidenceHigh},
		{"LexicalMedium", DefaultLexicalThresholds, 40, ConfidenceMedium},
		{"LexicalMediumBelowHigh", DefaultLexicalThresholds, 64.9, ConfidenceMedium},
		{"LexicalLow", DefaultLexicalThresholds, 39.9, ConfidenceLow},
		{"LexicalZero", DefaultLexicalThresholds, 0, ConfidenceLow},
		{"SemanticHigh", DefaultSemanticThresholds, 75, ConfidenceHigh},
		{"SemanticMedium", DefaultSemanticThresholds, 50, ConfidenceMedium},
		{"SemanticLow", DefaultSemanticThresholds, 49.9, ConfidenceLow},
		// A 70 classifies high under lexical thresholds but only medium
		// under semantic ones.
		{"ModeDependent", DefaultSemanticThresholds, 70, ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.thresholds.Classify(tt.score))
		})
	}
}

func TestThresholds_Monotonic(t *testing.T) {
	for _, thresholds := range []Thresholds{DefaultLexicalThresholds, DefaultSemanticThresholds} {
		prev := ConfidenceLow
		for score := 0.0; score <= 100; score += 0.5 {
			c := thresholds.Classify(score)
			assert.GreaterOrEqual(t, c, prev, "classification must be monotonic at score %v", score)
			prev = c
		}
	}
}

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
}

package lexical

import (
	"strings"

	"github.com/hupe1980/matchgo/item"
)

// Weights holds the point values awarded per factor. Zero values are valid;
// use DefaultWeights as the starting point for adjustments.
type Weights struct {
	// Category is awarded on exact category equality.
	Category float64
	// Location is awarded on exact location equality.
	Location float64

	// Date proximity buckets, evaluated first-match-wins on the absolute
	// day difference between the two records.
	SameDay        float64 // < 1 day
	WithinThreeDay float64 // < 3 days
	WithinWeek     float64 // < 7 days
	WithinTwoWeeks float64 // < 14 days

	// TitleContainment is awarded when either lowercased title contains
	// the other as a substring.
	TitleContainment float64

	// TokenMatch is awarded per lost-description token with at least one
	// substring-related match in the found description, capped at TokenCap.
	TokenMatch float64
	TokenCap   float64

	// MinTokenLen is the exclusive length cutoff for description tokens;
	// tokens of this length or shorter are discarded.
	MinTokenLen int
}

// DefaultWeights are the platform's production point values.
// Maximum attainable score: 30+20+20+15+15 = 100.
var DefaultWeights = Weights{
	Category:         30,
	Location:         20,
	SameDay:          20,
	WithinThreeDay:   15,
	WithinWeek:       10,
	WithinTwoWeeks:   5,
	TitleContainment: 15,
	TokenMatch:       2,
	TokenCap:         15,
	MinTokenLen:      3,
}

// Breakdown is the per-factor decomposition of a lexical score.
type Breakdown struct {
	Category    float64
	Location    float64
	Date        float64
	Title       float64
	Description float64
}

// Total returns the summed score.
func (b Breakdown) Total() float64 {
	return b.Category + b.Location + b.Date + b.Title + b.Description
}

// Scorer computes deterministic match scores from field comparisons and
// token overlap. It is pure and safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with DefaultWeights, optionally adjusted.
func NewScorer(optFns ...func(*Weights)) *Scorer {
	w := DefaultWeights
	for _, fn := range optFns {
		if fn != nil {
			fn(&w)
		}
	}
	return &Scorer{weights: w}
}

// Score computes the match score between a lost and a found record.
// The arithmetic is symmetric; the lost-then-found order is a reading
// convention.
func (s *Scorer) Score(lost, found item.Item) float64 {
	return s.Breakdown(lost, found).Total()
}

// Breakdown computes the match score with its per-factor decomposition.
func (s *Scorer) Breakdown(lost, found item.Item) Breakdown {
	var b Breakdown

	if lost.Category == found.Category {
		b.Category = s.weights.Category
	}

	if lost.Location == found.Location {
		b.Location = s.weights.Location
	}

	b.Date = s.dateProximity(lost, found)

	lostTitle := strings.ToLower(lost.Title)
	foundTitle := strings.ToLower(found.Title)
	if strings.Contains(lostTitle, foundTitle) || strings.Contains(foundTitle, lostTitle) {
		b.Title = s.weights.TitleContainment
	}

	b.Description = s.descriptionOverlap(lost.Description, found.Description)

	return b
}

// dateProximity awards points based on how close the two dates are.
// A zero date on either side fails open: no bucket matches.
func (s *Scorer) dateProximity(lost, found item.Item) float64 {
	days, ok := item.DaysApart(lost.Date, found.Date)
	if !ok {
		return 0
	}

	switch {
	case days < 1:
		return s.weights.SameDay
	case days < 3:
		return s.weights.WithinThreeDay
	case days < 7:
		return s.weights.WithinWeek
	case days < 14:
		return s.weights.WithinTwoWeeks
	default:
		return 0
	}
}

func (s *Scorer) descriptionOverlap(lostDesc, foundDesc string) float64 {
	lostTokens := s.tokenize(lostDesc)
	foundTokens := s.tokenize(foundDesc)

	var matching int
	for _, lt := range lostTokens {
		for _, ft := range foundTokens {
			if strings.Contains(ft, lt) || strings.Contains(lt, ft) {
				matching++
				break
			}
		}
	}

	return min(float64(matching)*s.weights.TokenMatch, s.weights.TokenCap)
}

// tokenize lowercases, splits on whitespace and discards short tokens.
func (s *Scorer) tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > s.weights.MinTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

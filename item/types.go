package item

import (
	"math"
	"strings"
	"time"
)

// Kind discriminates lost reports from found reports.
//
// The discriminant is explicit and stored on the record. It is never inferred
// from the textual form of an ID; use KindFromID only when importing legacy
// data that still encodes the variant in the identifier prefix.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindLost
	KindFound
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLost:
		return "lost"
	case KindFound:
		return "found"
	default:
		return "unknown"
	}
}

// Opposite returns the kind a record of kind k is matched against.
// Lost records match found records and vice versa.
func (k Kind) Opposite() Kind {
	switch k {
	case KindLost:
		return KindFound
	case KindFound:
		return KindLost
	default:
		return KindUnknown
	}
}

// KindFromID derives the Kind from a legacy identifier prefix ("lost..." or
// "found...").
//
// Legacy datasets encoded the record variant in the ID. Any ID that does not
// follow the prefix convention maps to KindUnknown instead of silently
// mis-classifying.
func KindFromID(id string) Kind {
	switch {
	case strings.HasPrefix(id, "lost"):
		return KindLost
	case strings.HasPrefix(id, "found"):
		return KindFound
	default:
		return KindUnknown
	}
}

// Category is the closed set of item categories used by the platform.
// Scoring treats it as an opaque token.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryBooksNotes  Category = "Books/Notes"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryIDCards     Category = "ID/Cards"
	CategoryKeys        Category = "Keys"
	CategoryOther       Category = "Other"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryBooksNotes,
	CategoryClothing,
	CategoryAccessories,
	CategoryIDCards,
	CategoryKeys,
	CategoryOther,
}

// Status is the moderation lifecycle state of a report.
// It is owned by the surrounding CRUD layer and not consumed by scoring.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusClaimed  Status = "claimed"
	StatusResolved Status = "resolved"
)

// Item is a lost or found report as loaded by the caller.
//
// The matching engine borrows Items read-only for the duration of a call and
// performs no validation; Title, Description, Category, Location and Date are
// expected to be populated before scoring.
type Item struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image,omitempty"`
	Status      Status    `json:"status,omitempty"`

	// Lost-only fields.
	LastSeen string `json:"last_seen,omitempty"`
	Reward   string `json:"reward,omitempty"`

	// Found-only fields.
	WhereFound     string `json:"where_found,omitempty"`
	StoredLocation string `json:"stored_location,omitempty"`
}

// Text returns the combined title and description used for text embedding.
func (it Item) Text() string {
	return it.Title + " " + it.Description
}

// DaysApart returns the absolute difference between two dates in days.
// ok is false if either date is the zero time; callers treat that as
// "no date signal" rather than an error.
func DaysApart(a, b time.Time) (days float64, ok bool) {
	if a.IsZero() || b.IsZero() {
		return 0, false
	}
	return math.Abs(a.Sub(b).Hours()) / 24, true
}

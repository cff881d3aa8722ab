package domain

import "time"

// Listing represents a single marketplace entry.
//
// The JSON field names are the persisted wire format and must stay stable:
// every stored collection is a JSON array of these documents.
type Listing struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, assigned at insert time.
	// It is a UUID v4 and never changes afterwards.
	ID string `json:"id"`

	// ─────────────────────────────
	// Seller-supplied content
	// (replaceable by the edit flow)
	// ─────────────────────────────

	// Title is the short headline of the listing. Required.
	Title string `json:"title"`

	// Description is the free-form body text. Required.
	Description string `json:"description"`

	// Price is the asking price. Any numeric value is accepted,
	// zero and negative included.
	Price float64 `json:"price"`

	// Category is one of the closed set returned by Categories.
	Category string `json:"category"`

	// Image is an optional inline data URI. Empty means no image.
	Image string `json:"image,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is set once at insert time and never mutated.
	CreatedAt time.Time `json:"createdAt"`
}

// Draft holds the seller-supplied fields of a listing before the store
// assigns an ID and creation timestamp.
type Draft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
}

// Patch carries replacement values for the mutable fields of a listing.
// ID and CreatedAt are never touched by a patch.
type Patch struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
}

// categories is the closed category set, in display order.
// The first entry is the default.
var categories = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Books",
	"Others",
}

// CategoryAll is the wildcard accepted by Search to match every category.
const CategoryAll = "All"

// Categories returns the closed category set in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// DefaultCategory returns the category used when a draft leaves it empty.
func DefaultCategory() string {
	return categories[0]
}

// ValidCategory reports whether cat belongs to the closed category set.
func ValidCategory(cat string) bool {
	for _, c := range categories {
		if c == cat {
			return true
		}
	}
	return false
}

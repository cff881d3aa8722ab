package catalog

import (
	"github.com/dastodo/market/internal/domain"
)

// Mapper converts seed entries to store drafts.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapDrafts converts a parsed seed file into drafts ready for insertion.
// Entries without a title or description are skipped rather than failing the
// whole file; the store would reject them anyway.
func (m *Mapper) MapDrafts(seed *SeedFile) []domain.Draft {
	if seed == nil {
		return nil
	}

	drafts := make([]domain.Draft, 0, len(seed.Listings))
	for _, entry := range seed.Listings {
		if entry.Title == "" || entry.Description == "" {
			continue
		}

		category := entry.Category
		if category == "" {
			category = domain.DefaultCategory()
		}
		if !domain.ValidCategory(category) {
			continue
		}

		drafts = append(drafts, domain.Draft{
			Title:       entry.Title,
			Description: entry.Description,
			Price:       entry.Price,
			Category:    category,
			Image:       entry.Image,
		})
	}

	return drafts
}

package catalog

import (
	"testing"

	"github.com/dastodo/market/internal/domain"
)

func TestMapperMapDrafts(t *testing.T) {
	seed := &SeedFile{
		Listings: []SeedListing{
			{Title: "Oak Chair", Description: "Solid oak", Price: 40, Category: "Furniture"},
			{Title: "Paperback", Description: "Go programming", Price: 12},
		},
	}

	mapper := NewMapper()
	drafts := mapper.MapDrafts(seed)

	if len(drafts) != 2 {
		t.Fatalf("MapDrafts() returned %v drafts, want 2", len(drafts))
	}
	if drafts[0].Category != "Furniture" {
		t.Errorf("first draft Category = %v, want Furniture", drafts[0].Category)
	}
	// Missing category falls back to the default.
	if drafts[1].Category != domain.DefaultCategory() {
		t.Errorf("second draft Category = %v, want default %v", drafts[1].Category, domain.DefaultCategory())
	}
}

func TestMapperSkipsBadEntries(t *testing.T) {
	seed := &SeedFile{
		Listings: []SeedListing{
			{Title: "", Description: "no title", Price: 1},
			{Title: "no description", Description: "", Price: 1},
			{Title: "bad category", Description: "d", Price: 1, Category: "Vehicles"},
			{Title: "Good", Description: "kept", Price: 1, Category: "Books"},
		},
	}

	drafts := NewMapper().MapDrafts(seed)

	if len(drafts) != 1 {
		t.Fatalf("MapDrafts() returned %v drafts, want 1", len(drafts))
	}
	if drafts[0].Title != "Good" {
		t.Errorf("kept draft Title = %v, want Good", drafts[0].Title)
	}
}

func TestMapperNilSeed(t *testing.T) {
	if drafts := NewMapper().MapDrafts(nil); len(drafts) != 0 {
		t.Errorf("MapDrafts(nil) returned %v drafts, want 0", len(drafts))
	}
}

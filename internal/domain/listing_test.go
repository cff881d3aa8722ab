package domain

import "testing"

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("Categories() returned %v entries, want 5", len(cats))
	}
	if cats[0] != DefaultCategory() {
		t.Errorf("DefaultCategory() = %v, want first category %v", DefaultCategory(), cats[0])
	}

	// Returned slice must be a copy, not the backing array.
	cats[0] = "Mutated"
	if Categories()[0] == "Mutated" {
		t.Error("Categories() exposes internal state")
	}
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name string
		cat  string
		want bool
	}{
		{name: "known category", cat: "Books", want: true},
		{name: "default category", cat: "Electronics", want: true},
		{name: "unknown category", cat: "Vehicles", want: false},
		{name: "wildcard is not a category", cat: CategoryAll, want: false},
		{name: "case sensitive", cat: "books", want: false},
		{name: "empty", cat: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCategory(tt.cat); got != tt.want {
				t.Errorf("ValidCategory(%q) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

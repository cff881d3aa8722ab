package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dastodo/market/internal/domain"
	"github.com/dastodo/market/internal/logger"
	"github.com/dastodo/market/internal/storage"
	"github.com/dastodo/market/internal/store"
)

const seedYAML = `---
listings:
  - title: Oak Chair
    description: Solid oak, barely used
    price: 40
    category: Furniture
  - title: Desk Lamp
    description: Warm light
    price: 15
    category: Electronics
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestReloadSeedsEmptyStore(t *testing.T) {
	st := store.New(storage.NewMemory())
	sr := NewSeedReloader(writeSeedFile(t, seedYAML), st, logger.New("error", false), time.Hour, make(chan struct{}, 1))

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	listings, err := st.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("ListAll() returned %v listings, want 2", len(listings))
	}
	if listings[0].Title != "Oak Chair" || listings[1].Title != "Desk Lamp" {
		t.Errorf("seeded titles = %v, %v", listings[0].Title, listings[1].Title)
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	st := store.New(storage.NewMemory())
	sr := NewSeedReloader(writeSeedFile(t, seedYAML), st, logger.New("error", false), time.Hour, make(chan struct{}, 1))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := sr.Reload(ctx); err != nil {
			t.Fatalf("Reload() #%d error = %v", i, err)
		}
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() after repeated reloads = %v, want 2", count)
	}
}

func TestReloadKeepsUserEdits(t *testing.T) {
	st := store.New(storage.NewMemory())
	sr := NewSeedReloader(writeSeedFile(t, seedYAML), st, logger.New("error", false), time.Hour, make(chan struct{}, 1))
	ctx := context.Background()

	if err := sr.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	listings, err := st.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	chair := listings[0]
	if _, err := st.Update(ctx, chair.ID, domain.Patch{
		Title:       chair.Title,
		Description: "Repainted last week",
		Price:       99,
		Category:    chair.Category,
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := sr.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	got, err := st.GetByID(ctx, chair.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Price != 99 || got.Description != "Repainted last week" {
		t.Errorf("reload clobbered user edit: %+v", got)
	}
}

func TestReloadMissingFile(t *testing.T) {
	st := store.New(storage.NewMemory())
	sr := NewSeedReloader("/nonexistent/seed.yaml", st, logger.New("error", false), time.Hour, make(chan struct{}, 1))

	if err := sr.Reload(context.Background()); err == nil {
		t.Error("Reload() with missing file should return error")
	}
}

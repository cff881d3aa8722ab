// Package store owns the persisted listing collection. Every operation is a
// full read-decode-mutate-encode-write cycle against the one storage key;
// nothing else in the program touches the raw medium.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dastodo/market/internal/domain"
	"github.com/dastodo/market/internal/storage"
)

// Store is the sole owner of the persisted collection.
type Store struct {
	medium storage.Medium
	now    func() time.Time
	newID  func() string
}

// New creates a store over the given medium.
func New(medium storage.Medium) *Store {
	return &Store{
		medium: medium,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// ListAll decodes and returns the full collection in insertion order.
// An empty store yields an empty collection.
func (s *Store) ListAll(ctx context.Context) ([]*domain.Listing, error) {
	return s.load(ctx)
}

// GetByID returns the listing with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Insert validates the draft, assigns a fresh id and creation timestamp,
// appends the new listing and persists the full collection. The stored
// listing is returned.
func (s *Store) Insert(ctx context.Context, draft domain.Draft) (*domain.Listing, error) {
	category, err := checkFields(draft.Title, draft.Description, draft.Category)
	if err != nil {
		return nil, err
	}

	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    category,
		Image:       draft.Image,
		// Millisecond precision matches what browsers persisted here before.
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	listings = append(listings, listing)
	if err := s.save(ctx, listings); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update validates the patch and replaces the mutable fields of the listing
// with the given id. ID and CreatedAt are never touched. Returns the updated
// listing, or ErrNotFound.
func (s *Store) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Listing, error) {
	category, err := checkFields(patch.Title, patch.Description, patch.Category)
	if err != nil {
		return nil, err
	}

	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, l := range listings {
		if l.ID != id {
			continue
		}
		l.Title = patch.Title
		l.Description = patch.Description
		l.Price = patch.Price
		l.Category = category
		l.Image = patch.Image

		if err := s.save(ctx, listings); err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes the listing with the given id and reports whether a
// removal occurred. Nothing is written when the id matched no listing.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(listings) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of stored listings.
func (s *Store) Count(ctx context.Context) (int, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(listings), nil
}

func (s *Store) load(ctx context.Context) ([]*domain.Listing, error) {
	data, ok, err := s.medium.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*domain.Listing{}, nil
	}
	return Decode(data)
}

func (s *Store) save(ctx context.Context, listings []*domain.Listing) error {
	data, err := Encode(listings)
	if err != nil {
		return err
	}
	return s.medium.Write(ctx, data)
}

// checkFields enforces the write-side contract: title and description must
// be non-empty and the category must come from the closed set. An empty
// category falls back to the default. The resolved category is returned.
func checkFields(title, description, category string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(description) == "" {
		return "", &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if category == "" {
		return domain.DefaultCategory(), nil
	}
	if !domain.ValidCategory(category) {
		return "", &ValidationError{Field: "category", Reason: "is not a known category"}
	}
	return category, nil
}

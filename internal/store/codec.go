package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dastodo/market/internal/domain"
)

// Encode serializes a collection to its persisted form: a JSON array of
// listing documents. A nil collection encodes as an empty array, never as
// JSON null.
func Encode(listings []*domain.Listing) ([]byte, error) {
	if listings == nil {
		listings = []*domain.Listing{}
	}
	data, err := json.Marshal(listings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// Decode parses a persisted payload back into a collection, preserving
// order. An empty payload decodes to an empty collection. A payload that is
// present but does not hold a valid collection fails with ErrCorrupt.
func Decode(data []byte) ([]*domain.Listing, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Listing{}, nil
	}

	var listings []*domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if listings == nil {
		// "null" parses fine but is not a collection.
		return nil, fmt.Errorf("%w: payload is not an array", ErrCorrupt)
	}

	seen := make(map[string]bool, len(listings))
	for i, l := range listings {
		if l == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrCorrupt, i)
		}
		if l.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrCorrupt, i)
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrCorrupt, l.ID)
		}
		seen[l.ID] = true
	}

	return listings, nil
}

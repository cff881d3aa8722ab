package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dastodo/market/internal/domain"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	listings := []*domain.Listing{
		{
			ID:          "a1",
			Title:       "Oak Chair",
			Description: "Solid oak, barely used",
			Price:       40,
			Category:    "Furniture",
			CreatedAt:   created,
		},
		{
			ID:          "b2",
			Title:       "Paperback",
			Description: "Go programming",
			Price:       12.5,
			Category:    "Books",
			Image:       "data:image/png;base64,aGVsbG8=",
			CreatedAt:   created.Add(time.Minute),
		},
	}

	data, err := Encode(listings)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded) != len(listings) {
		t.Fatalf("Decode() returned %v listings, want %v", len(decoded), len(listings))
	}
	for i, want := range listings {
		got := decoded[i]
		if got.ID != want.ID || got.Title != want.Title || got.Description != want.Description {
			t.Errorf("record %d = %+v, want %+v", i, got, want)
		}
		if got.Price != want.Price || got.Category != want.Category || got.Image != want.Image {
			t.Errorf("record %d fields = %+v, want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("record %d CreatedAt = %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestEncodeNilCollection(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %q, want %q", data, "[]")
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "whitespace", data: []byte("  \n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(listings) != 0 {
				t.Errorf("Decode() returned %v listings, want 0", len(listings))
			}
		})
	}
}

func TestDecodeCorruptPayload(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "truncated array", data: `[{"id":"a"`},
		{name: "json null", data: "null"},
		{name: "object instead of array", data: `{"id":"a"}`},
		{name: "null record", data: `[null]`},
		{name: "record without id", data: `[{"title":"Lamp"}]`},
		{name: "duplicate ids", data: `[{"id":"a"},{"id":"a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Decode(%q) error = %v, want ErrCorrupt", tt.data, err)
			}
		})
	}
}

func TestDecodeOmitsAbsentImage(t *testing.T) {
	data, err := Encode([]*domain.Listing{{ID: "a", Title: "Lamp", Description: "d"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// image is optional on the wire: it must not appear when absent.
	if strings.Contains(string(data), `"image"`) {
		t.Errorf("Encode() emitted an image field for a listing without one: %s", data)
	}
}

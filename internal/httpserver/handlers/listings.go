package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dastodo/market/internal/domain"
	"github.com/dastodo/market/internal/httpserver/deps"
	"github.com/dastodo/market/internal/logger"
)

// ListListings returns the catalog, optionally filtered by the q (substring
// over title+description, case-insensitive) and category query parameters.
func ListListings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")
		if category == "" {
			category = domain.CategoryAll
		}

		listings, err := d.Store.ListAll(r.Context())
		if err != nil {
			writeStoreError(w, d, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.Search(listings, term, category))
	}
}

// GetListing returns a single listing by id.
func GetListing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		listing, err := d.Store.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, d, err)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// CreateListing inserts a new listing from the posted draft.
func CreateListing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		listing, err := d.Store.Insert(r.Context(), draft)
		if err != nil {
			writeStoreError(w, d, err)
			return
		}

		d.Logger.Info("listing created",
			logger.String("id", listing.ID),
			logger.String("title", listing.Title),
			logger.String("category", listing.Category),
			logger.Float64("price", listing.Price))

		writeJSON(w, http.StatusCreated, listing)
	}
}

// UpdateListing replaces the mutable fields of a listing.
func UpdateListing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		listing, err := d.Store.Update(r.Context(), id, patch)
		if err != nil {
			writeStoreError(w, d, err)
			return
		}

		d.Logger.Info("listing updated",
			logger.String("id", listing.ID))

		writeJSON(w, http.StatusOK, listing)
	}
}

// DeleteListing removes a listing by id.
func DeleteListing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		removed, err := d.Store.Delete(r.Context(), id)
		if err != nil {
			writeStoreError(w, d, err)
			return
		}
		if !removed {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}

		d.Logger.Info("listing deleted",
			logger.String("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
}

// Categories serves the closed category set so the front-end does not have
// to hardcode it.
func Categories(deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, categoriesResponse{
			Categories: domain.Categories(),
			Default:    domain.DefaultCategory(),
		})
	}
}

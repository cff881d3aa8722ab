package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dastodo/market/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	Backend       string `json:"backend,omitempty"`
	ListingsCount *int   `json:"listings_count,omitempty"`
	SeedFile      string `json:"seed_file,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// pinger is implemented by media with a connection to probe (Redis).
type pinger interface {
	Ping(ctx context.Context) error
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storageStatus := checkStorage(r.Context(), d)

		catalogStatus := componentStatus{}
		count, err := d.Store.Count(r.Context())
		if err != nil {
			catalogStatus.Error = err.Error()
		} else {
			catalogStatus.OK = true
			catalogStatus.ListingsCount = &count
		}

		seedStatus := componentStatus{
			OK:       true,
			SeedFile: d.SeedFile,
		}
		if d.SeedFile == "" {
			seedStatus.SeedFile = "disabled"
		}

		components := map[string]componentStatus{
			"storage": storageStatus,
			"catalog": catalogStatus,
			"seed":    seedStatus,
		}

		status := "ok"
		for _, c := range components {
			if !c.OK {
				status = "degraded"
				break
			}
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     status,
			Components: components,
		})
	}
}

func checkStorage(ctx context.Context, d deps.Deps) componentStatus {
	status := componentStatus{Backend: d.StorageBackend}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if p, ok := d.Medium.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			status.Error = err.Error()
			return status
		}
		status.OK = true
		return status
	}

	// Media without a connection to probe are answered with a read.
	if _, _, err := d.Medium.Read(ctx); err != nil {
		status.Error = err.Error()
		return status
	}
	status.OK = true
	return status
}

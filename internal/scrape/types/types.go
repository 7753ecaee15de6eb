package types

import (
	"context"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

// Site is one listing website. Fetch returns whatever properties it could
// pull for a location; a trawl run treats per-site failures as
// best-effort and keeps going.
type Site interface {
	Name() string
	Fetch(ctx context.Context, location string) ([]domain.Property, error)
}

// TrawlStatus is the published state of the background trawler.
type TrawlStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	Running   bool   `json:"running"`
}

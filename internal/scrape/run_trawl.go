package scrape

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jgirolamo/house-trawler/internal/config"
	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/scrape/sites"
	"github.com/jgirolamo/house-trawler/internal/scrape/types"
	"github.com/jgirolamo/house-trawler/internal/scrape/util"
	"github.com/jgirolamo/house-trawler/internal/store"
)

type trawlResult struct {
	source     string
	properties []domain.Property
}

// TrawlOnce searches every enabled site for every configured location,
// deduplicates by canonical URL and inserts what is new. onNew fires once
// per newly stored record; sites failing individually do not abort the run.
func TrawlOnce(db *sql.DB, cfg config.Config, onNew func(domain.Property)) (added int, err error) {
	parent := context.Background()

	limiter := util.NewHostLimiter(cfg.Trawl.HostRPS, cfg.Trawl.HostBurst)
	scrapers := enabledSites(cfg, limiter)
	locations := cfg.Trawl.Locations

	var g errgroup.Group
	g.SetLimit(4)

	results := make(chan trawlResult, len(scrapers)*len(locations))

	for _, s := range scrapers {
		for _, loc := range locations {
			s, loc := s, loc

			g.Go(func() error {
				fctx, cancel := context.WithTimeout(parent, 2*time.Minute)
				defer cancel()

				log.Printf("[%s] searching %q...", s.Name(), loc)
				props, err := s.Fetch(fctx, loc)
				if err != nil {
					log.Printf("[site:%s] error: %v", s.Name(), err)
					return nil // best-effort: don't cancel siblings
				}
				results <- trawlResult{source: s.Name(), properties: props}
				return nil
			})
		}
	}

	_ = g.Wait()
	close(results)

	seen := make(map[string]bool)
	totalAdded := 0

	for res := range results {
		log.Printf("[trawl] got source=%s listings=%d", res.source, len(res.properties))
		for _, p := range res.properties {
			if p.URL == "" || seen[p.URL] {
				continue
			}
			seen[p.URL] = true

			ok, err := store.InsertPropertyIfNew(db, p)
			if err != nil {
				log.Printf("[trawl] insert: %v", err)
				continue
			}
			if ok {
				totalAdded++
				if onNew != nil {
					onNew(p)
				}
			}
		}
	}

	return totalAdded, nil
}

func enabledSites(cfg config.Config, limiter *util.HostLimiter) []types.Site {
	opts := sites.Options{
		Limiter:     limiter,
		MaxListings: cfg.Trawl.MaxListings,
		Query:       cfg.Search,
	}

	want := make(map[string]bool, len(cfg.Trawl.Sites))
	for _, name := range cfg.Trawl.Sites {
		want[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var out []types.Site
	for _, s := range sites.All(opts) {
		if len(want) == 0 || want[strings.ToLower(s.Name())] {
			out = append(out, s)
		}
	}
	return out
}

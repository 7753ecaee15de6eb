// Package poll runs the periodic background trawl.
package poll

import (
	"context"
	"database/sql"
	"log"
	"sync/atomic"
	"time"

	"github.com/jgirolamo/house-trawler/internal/config"
	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/events"
	"github.com/jgirolamo/house-trawler/internal/scheduler"
	"github.com/jgirolamo/house-trawler/internal/scrape"
	"github.com/jgirolamo/house-trawler/internal/scrape/types"
	"github.com/jgirolamo/house-trawler/internal/store"
)

const defaultInterval = 30 * time.Minute

// StartPoller trawls on a fixed schedule until ctx is cancelled. The
// interval comes from the config present at startup; changing it later
// needs a restart, manual runs via the API do not.
func StartPoller(ctx context.Context, db *sql.DB, cfgVal *atomic.Value, trawlStatus *atomic.Value, hub *events.Hub) {
	interval := defaultInterval
	if cfgAny := cfgVal.Load(); cfgAny != nil {
		if s := cfgAny.(config.Config).Trawl.IntervalSeconds; s > 0 {
			interval = time.Duration(s) * time.Second
		}
	}

	go scheduler.Every(ctx, interval, "trawl", func(ctx context.Context) error {
		cfgAny := cfgVal.Load()
		if cfgAny == nil {
			return nil
		}
		cfg := cfgAny.(config.Config)
		if len(cfg.Trawl.Locations) == 0 {
			return nil
		}

		// skip if a manual run is in flight
		if st, ok := trawlStatus.Load().(types.TrawlStatus); ok && st.Running {
			return nil
		}

		markRunning(trawlStatus)
		added, err := scrape.TrawlOnce(db, cfg, func(p domain.Property) {
			hub.Publish(events.PropertyAdded(p))
		})
		markDone(trawlStatus, added, err)
		hub.Publish(events.TrawlFinished(added, err))

		if err != nil {
			log.Printf("[trawl] error: %v", err)
			return nil
		}
		log.Printf("[trawl] ok added=%d", added)

		if dir := cfg.App.OutputDir; dir != "" {
			exportAll(ctx, db, dir)
		}
		return nil
	})
}

func markRunning(trawlStatus *atomic.Value) {
	st, _ := trawlStatus.Load().(types.TrawlStatus)
	st.Running = true
	st.LastRunAt = time.Now().Format(time.RFC3339)
	trawlStatus.Store(st)
}

func markDone(trawlStatus *atomic.Value, added int, err error) {
	st, _ := trawlStatus.Load().(types.TrawlStatus)
	st.Running = false
	st.LastAdded = added
	if err != nil {
		st.LastError = err.Error()
	} else {
		st.LastError = ""
		st.LastOkAt = time.Now().Format(time.RFC3339)
	}
	trawlStatus.Store(st)
}

func exportAll(ctx context.Context, db *sql.DB, dir string) {
	props, err := store.ListProperties(ctx, db, store.ListOpts{})
	if err != nil {
		log.Printf("[trawl] export list: %v", err)
		return
	}
	if err := store.ExportDir(dir, props); err != nil {
		log.Printf("[trawl] export: %v", err)
	}
}

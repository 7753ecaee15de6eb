package httpapi

import (
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/jgirolamo/house-trawler/internal/config"
	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/events"
	"github.com/jgirolamo/house-trawler/internal/scrape/types"
)

type TrawlHandler struct {
	DB          *sql.DB
	CfgVal      *atomic.Value // config.Config
	TrawlStatus *atomic.Value // types.TrawlStatus
	Hub         *events.Hub
	RunTrawl    func(db *sql.DB, cfg config.Config, onNew func(domain.Property)) (added int, err error)
}

func (h TrawlHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.TrawlStatus.Load().(types.TrawlStatus)
	writeJSON(w, st)
}

func (h TrawlHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.TrawlStatus.Load().(types.TrawlStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.TrawlStatus.Store(types.TrawlStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastError: "",
		LastAdded: 0,
		LastOkAt:  st.LastOkAt,
	})
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeTrawlStarted, 1, nil))

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		added, err := h.RunTrawl(h.DB, cfg, func(p domain.Property) {
			h.Hub.Publish(events.PropertyAdded(p))
		})

		now := time.Now().Format(time.RFC3339)
		next := h.TrawlStatus.Load().(types.TrawlStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = added
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.TrawlStatus.Store(next)
		h.Hub.Publish(events.TrawlFinished(added, err))
	}()

	writeJSON(w, map[string]any{"ok": true})
}

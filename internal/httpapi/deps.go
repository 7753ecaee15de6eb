package httpapi

import (
	"database/sql"
	"sync/atomic"

	"github.com/jgirolamo/house-trawler/internal/config"
	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/events"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal      *atomic.Value // stores config.Config
	TrawlStatus *atomic.Value // stores types.TrawlStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Trawl entrypoint (inject for testability)
	RunTrawl func(db *sql.DB, cfg config.Config, onNew func(domain.Property)) (added int, err error)
}

// Package events fans SSE payloads out to connected API clients.
package events

import (
	"encoding/json"
	"time"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

const (
	TypePropertyAdded = "property_added"
	TypeTrawlStarted  = "trawl_started"
	TypeTrawlFinished = "trawl_finished"
	TypeConfigUpdated = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// PropertyAdded announces one newly stored listing.
func PropertyAdded(p domain.Property) string {
	return MakeEvent("", TypePropertyAdded, 1, p)
}

// TrawlFinished announces a completed run and how many records it added.
func TrawlFinished(added int, runErr error) string {
	data := map[string]any{"added": added}
	if runErr != nil {
		data["error"] = runErr.Error()
	}
	return MakeEvent("", TypeTrawlFinished, 1, data)
}

package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

func TestPropertyAddedEnvelope(t *testing.T) {
	raw := PropertyAdded(domain.Property{Title: "2 bed flat", Source: "OpenRent"})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypePropertyAdded, e.Type)
	assert.Equal(t, 1, e.Version)

	var p domain.Property
	require.NoError(t, json.Unmarshal(e.Data, &p))
	assert.Equal(t, "2 bed flat", p.Title)
}

func TestHubDropsSlowSubscribers(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < 20; i++ {
		h.Publish(TrawlFinished(i, nil))
	}

	// buffer is 10; the rest were dropped rather than blocking
	assert.Len(t, ch, 10)
}

package poll

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgirolamo/house-trawler/internal/scrape/types"
)

func TestStatusTransitions(t *testing.T) {
	var st atomic.Value
	st.Store(types.TrawlStatus{})

	markRunning(&st)
	got := st.Load().(types.TrawlStatus)
	assert.True(t, got.Running)
	assert.NotEmpty(t, got.LastRunAt)

	markDone(&st, 7, nil)
	got = st.Load().(types.TrawlStatus)
	assert.False(t, got.Running)
	assert.Equal(t, 7, got.LastAdded)
	assert.Empty(t, got.LastError)
	require.NotEmpty(t, got.LastOkAt)
	okAt := got.LastOkAt

	markRunning(&st)
	markDone(&st, 0, errors.New("boom"))
	got = st.Load().(types.TrawlStatus)
	assert.Equal(t, "boom", got.LastError)
	// a failed run never advances the last-ok marker
	assert.Equal(t, okAt, got.LastOkAt)
}

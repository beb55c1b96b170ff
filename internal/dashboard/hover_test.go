package dashboard_test

import (
	"testing"

	"github.com/nfrund/ecoshare/internal/dashboard"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandedCount(h dashboard.HoverState) int {
	n := 0
	for _, tile := range domain.Tiles() {
		if h.Expanded(tile.ID) {
			n++
		}
	}
	return n
}

func TestHoverState(t *testing.T) {
	var h dashboard.HoverState
	assert.Equal(t, 0, expandedCount(h), "nothing is expanded initially")

	h, err := h.Enter(2)
	require.NoError(t, err)
	assert.True(t, h.Expanded(2))
	assert.Equal(t, 1, expandedCount(h))

	h, err = h.Enter(5)
	require.NoError(t, err)
	assert.False(t, h.Expanded(2), "entering another tile collapses the previous one")
	assert.True(t, h.Expanded(5))
	assert.Equal(t, 1, expandedCount(h))

	h = h.Leave()
	assert.Equal(t, 0, expandedCount(h))
}

func TestHoverState_UnknownTile(t *testing.T) {
	h, err := dashboard.HoverState{}.Enter(99)
	assert.ErrorIs(t, err, domain.ErrUnknownTile)
	assert.Equal(t, 0, expandedCount(h))
}

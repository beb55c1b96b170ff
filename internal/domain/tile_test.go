package domain_test

import (
	"testing"

	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiles(t *testing.T) {
	tiles := domain.Tiles()
	require.Len(t, tiles, 6)

	seenIDs := map[int]bool{}
	seenPaths := map[string]bool{}
	for _, tile := range tiles {
		assert.False(t, seenIDs[tile.ID], "duplicate id %d", tile.ID)
		assert.False(t, seenPaths[tile.DestinationPath], "duplicate path %s", tile.DestinationPath)
		seenIDs[tile.ID] = true
		seenPaths[tile.DestinationPath] = true

		assert.NotEmpty(t, tile.Title)
		assert.NotEmpty(t, tile.Description)
		assert.NotEmpty(t, tile.StatLabel)
	}
}

func TestTiles_ReturnsCopy(t *testing.T) {
	tiles := domain.Tiles()
	tiles[0].Title = "Changed"

	assert.Equal(t, "Resource Exchange", domain.Tiles()[0].Title)
}

func TestTileByID(t *testing.T) {
	tile, err := domain.TileByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Recycling Hub", tile.Title)
	assert.Equal(t, "/recycling", tile.DestinationPath)

	_, err = domain.TileByID(42)
	assert.ErrorIs(t, err, domain.ErrUnknownTile)
}

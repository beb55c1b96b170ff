// Package dashboard holds the only piece of dashboard state: which tile is hovered.
package dashboard

import "github.com/nfrund/ecoshare/internal/domain"

// HoverState records the expanded tile. The zero value means no tile is expanded.
type HoverState struct {
	tileID int
}

// Enter expands the tile with the given id, collapsing any other.
func (h HoverState) Enter(id int) (HoverState, error) {
	if _, err := domain.TileByID(id); err != nil {
		return h, err
	}
	return HoverState{tileID: id}, nil
}

// Leave collapses every tile.
func (h HoverState) Leave() HoverState {
	return HoverState{}
}

// Expanded reports whether the tile with the given id shows its description and stat.
func (h HoverState) Expanded(id int) bool {
	return h.tileID != 0 && h.tileID == id
}

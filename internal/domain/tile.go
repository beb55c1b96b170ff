package domain

import "fmt"

// DashboardTile is one entry of the dashboard grid.
type DashboardTile struct {
	ID              int
	Title           string
	Description     string
	DestinationPath string
	StatLabel       string
}

var tiles = [...]DashboardTile{
	{
		ID:              1,
		Title:           "Resource Exchange",
		Description:     "Share and request sustainable resources within the community. Track your contributions and impact.",
		DestinationPath: "/resources",
		StatLabel:       "150+ Active Listings",
	},
	{
		ID:              2,
		Title:           "Community Events",
		Description:     "Join local sustainability events, workshops, and meetups. Create and manage your own events.",
		DestinationPath: "/events",
		StatLabel:       "12 Upcoming Events",
	},
	{
		ID:              3,
		Title:           "Recycling Hub",
		Description:     "Find recycling points, track waste reduction, and learn about proper recycling practices.",
		DestinationPath: "/recycling",
		StatLabel:       "500kg Waste Saved",
	},
	{
		ID:              4,
		Title:           "Community Chat",
		Description:     "Connect with other members, share tips, and discuss sustainable practices.",
		DestinationPath: "/chat",
		StatLabel:       "Active Discussions",
	},
	{
		ID:              5,
		Title:           "Impact Metrics",
		Description:     "Track your environmental impact and community contributions through detailed analytics.",
		DestinationPath: "/metrics",
		StatLabel:       "View Your Impact",
	},
	{
		ID:              6,
		Title:           "Global Initiatives",
		Description:     "Participate in worldwide sustainability projects and track global impact.",
		DestinationPath: "/global",
		StatLabel:       "15 Active Projects",
	},
}

// Tiles returns a copy of the fixed dashboard tiles, in display order.
func Tiles() []DashboardTile {
	out := make([]DashboardTile, len(tiles))
	copy(out, tiles[:])
	return out
}

// TileByID looks up a tile. It returns ErrUnknownTile for ids outside the list.
func TileByID(id int) (DashboardTile, error) {
	for _, t := range tiles {
		if t.ID == id {
			return t, nil
		}
	}
	return DashboardTile{}, fmt.Errorf("%w: %d", ErrUnknownTile, id)
}
